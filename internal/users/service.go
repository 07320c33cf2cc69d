// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/keepsake/internal/platform/apperr"
	"github.com/taibuivan/keepsake/internal/platform/sec"
	"github.com/taibuivan/keepsake/internal/platform/validate"
	"github.com/taibuivan/keepsake/pkg/normalize"
	"github.com/taibuivan/keepsake/pkg/uuidv7"
)

// Service implements account use cases.
//
// # Review Process
//
// Registration hashes credentials; any change to this file must be reviewed
// by the security owner together with internal/auth.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Address     *string
	PhoneNumber *string
}

// Register validates, hashes, and persists a brand new user account.
//
// # Business Rules
//   - Login names are normalized (NFKC, lowercased) before storage.
//   - Names and emails must be unique; violations surface as 409 Conflict.
//   - Accounts start active.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	name := normalize.Username(input.Name)

	// ── 1. Validation ─────────────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MinLen(FieldName, name, 3).MaxLen(FieldName, name, 64)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, 8)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 2. Uniqueness Checks ──────────────────────────────────────────────

	// Fast-fail with client-safe Conflict errors. The database unique
	// constraints remain the authoritative guard against races.
	if _, err := service.repo.FindByName(ctx, name); err == nil {
		return nil, apperr.Conflict("Name is already taken")
	}
	if _, err := service.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// ── 3. Security ───────────────────────────────────────────────────────

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("users_service_hash_failed: %w", err)
	}

	// ── 4. Entity Construction & Persistence ──────────────────────────────

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Name:         name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		Address:      input.Address,
		PhoneNumber:  input.PhoneNumber,
	}

	if err := service.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID))
	return user, nil
}

// Get returns the account with the given ID.
func (service *Service) Get(ctx context.Context, id string) (*User, error) {
	validator := &validate.Validator{}
	if err := validator.UUID("user_id", id).Err(); err != nil {
		return nil, err
	}

	return service.repo.FindByID(ctx, id)
}

// List returns one page of accounts plus the total count.
func (service *Service) List(ctx context.Context, offset, limit int) ([]*User, int, error) {
	return service.repo.List(ctx, offset, limit)
}
