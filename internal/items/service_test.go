// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package items_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/keepsake/internal/items"
	"github.com/taibuivan/keepsake/internal/platform/apperr"
)

// memoryRepository is an in-memory items.Repository for service tests.
type memoryRepository struct {
	stored []*items.Item
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*items.Item, error) {
	for _, item := range r.stored {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, apperr.NotFound("Item")
}

func (r *memoryRepository) Insert(_ context.Context, item *items.Item) error {
	r.stored = append(r.stored, item)
	return nil
}

func (r *memoryRepository) List(_ context.Context, offset, limit int) ([]*items.Item, int, error) {
	total := len(r.stored)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return r.stored[offset:end], total, nil
}

func newTestService(t *testing.T) (*items.Service, *memoryRepository) {
	t.Helper()

	repo := &memoryRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return items.NewService(repo, logger), repo
}

const ownerID = "0191e9a0-0000-7000-8000-000000000001"

/*
TestService_Create verifies the happy path and owner attribution.
*/
func TestService_Create(t *testing.T) {
	service, repo := newTestService(t)

	description := "a keepsake worth keeping"
	item, err := service.Create(context.Background(), items.CreateInput{
		Name:        "Pocket Watch",
		Description: &description,
		OwnerID:     ownerID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Pocket Watch", item.Name)
	assert.Equal(t, ownerID, item.OwnerID)
	require.Len(t, repo.stored, 1)
}

/*
TestService_Create_Validation verifies field-level rejections.
*/
func TestService_Create_Validation(t *testing.T) {
	longDescription := make([]byte, 2001)
	for i := range longDescription {
		longDescription[i] = 'x'
	}
	tooLong := string(longDescription)

	tests := []struct {
		name  string
		input items.CreateInput
	}{
		{"empty_name", items.CreateInput{Name: "", OwnerID: ownerID}},
		{"bad_owner_id", items.CreateInput{Name: "Watch", OwnerID: "not-a-uuid"}},
		{"long_description", items.CreateInput{Name: "Watch", Description: &tooLong, OwnerID: ownerID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)

			item, err := service.Create(context.Background(), tt.input)
			assert.Nil(t, item)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.HTTPStatus)
			assert.Empty(t, repo.stored)
		})
	}
}

/*
TestService_Get verifies ID validation and lookups.
*/
func TestService_Get(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.Create(context.Background(), items.CreateInput{
		Name:    "Locket",
		OwnerID: ownerID,
	})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		item, err := service.Get(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Locket", item.Name)
	})

	t.Run("malformed_id", func(t *testing.T) {
		_, err := service.Get(context.Background(), "nope")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})

	t.Run("unknown_id", func(t *testing.T) {
		_, err := service.Get(context.Background(), "0191e9a0-0000-7000-8000-00000000ffff")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}
