// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/keepsake/internal/platform/apperr"
	"github.com/taibuivan/keepsake/internal/platform/sec"
	"github.com/taibuivan/keepsake/internal/users"
)

// memoryRepository is an in-memory users.Repository for service tests.
type memoryRepository struct {
	accounts []*users.User
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*users.User, error) {
	for _, account := range r.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryRepository) FindByName(_ context.Context, name string) (*users.User, error) {
	for _, account := range r.accounts {
		if account.Name == name {
			return account, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*users.User, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryRepository) Insert(_ context.Context, user *users.User) error {
	r.accounts = append(r.accounts, user)
	return nil
}

func (r *memoryRepository) List(_ context.Context, offset, limit int) ([]*users.User, int, error) {
	total := len(r.accounts)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return r.accounts[offset:end], total, nil
}

func newTestService(t *testing.T) (*users.Service, *memoryRepository) {
	t.Helper()

	repo := &memoryRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return users.NewService(repo, logger), repo
}

func validInput() users.RegisterInput {
	return users.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "open-sesame",
	}
}

/*
TestService_Register verifies the happy path: the stored account carries a
bcrypt digest (never the plaintext), starts active, and gets a UUID.
*/
func TestService_Register(t *testing.T) {
	service, repo := newTestService(t)

	user, err := service.Register(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.True(t, user.IsActive)

	assert.NotEqual(t, "open-sesame", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("open-sesame", user.PasswordHash))

	require.Len(t, repo.accounts, 1)
}

/*
TestService_Register_NameNormalization verifies that login names are folded
to a canonical form before storage: whitespace trimmed, case lowered, and
fullwidth compatibility characters flattened.
*/
func TestService_Register_NameNormalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed_case", "Alice", "alice"},
		{"surrounding_space", "  alice  ", "alice"},
		{"fullwidth", "ａｌｉｃｅ", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			input := validInput()
			input.Name = tt.input

			user, err := service.Register(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, user.Name)
		})
	}
}

/*
TestService_Register_Validation verifies each field-level rejection.
*/
func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*users.RegisterInput)
	}{
		{"empty_name", func(in *users.RegisterInput) { in.Name = "" }},
		{"short_name", func(in *users.RegisterInput) { in.Name = "ab" }},
		{"empty_email", func(in *users.RegisterInput) { in.Email = "" }},
		{"bad_email", func(in *users.RegisterInput) { in.Email = "not-an-email" }},
		{"short_password", func(in *users.RegisterInput) { in.Password = "1234567" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)

			input := validInput()
			tt.mutate(&input)

			user, err := service.Register(context.Background(), input)
			assert.Nil(t, user)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.HTTPStatus)

			// Nothing persisted on a validation failure.
			assert.Empty(t, repo.accounts)
		})
	}
}

/*
TestService_Register_Duplicates verifies that a taken name or email is
rejected with a 409, including names that only collide after normalization.
*/
func TestService_Register_Duplicates(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("same_name", func(t *testing.T) {
		input := validInput()
		input.Email = "other@example.com"

		_, err := service.Register(context.Background(), input)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 409, appErr.HTTPStatus)
	})

	t.Run("name_collides_after_folding", func(t *testing.T) {
		input := validInput()
		input.Name = "ALICE"
		input.Email = "other@example.com"

		_, err := service.Register(context.Background(), input)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 409, appErr.HTTPStatus)
	})

	t.Run("same_email", func(t *testing.T) {
		input := validInput()
		input.Name = "alice2"

		_, err := service.Register(context.Background(), input)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 409, appErr.HTTPStatus)
	})
}

/*
TestService_Get verifies ID validation and the not-found path.
*/
func TestService_Get(t *testing.T) {
	service, _ := newTestService(t)

	registered, err := service.Register(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		user, err := service.Get(context.Background(), registered.ID)
		require.NoError(t, err)
		assert.Equal(t, registered.Name, user.Name)
	})

	t.Run("malformed_id", func(t *testing.T) {
		user, err := service.Get(context.Background(), "not-a-uuid")
		assert.Nil(t, user)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})

	t.Run("unknown_id", func(t *testing.T) {
		user, err := service.Get(context.Background(), "0191e9a0-0000-7000-8000-00000000ffff")
		assert.Nil(t, user)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}
