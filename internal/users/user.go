// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package users defines the account entity and its use cases.
//
// # Architecture
//
// The User entity is the stored principal record ("identity") against which
// credentials and bearer tokens are resolved. It has no dependencies on outer
// layers; storage and HTTP concerns live behind the [Repository] interface
// and the [Handler] respectively.
package users

import (
	"context"
	"time"

	"github.com/taibuivan/keepsake/internal/platform/ctxkey"
)

// User represents a registered account.
//
// # Rules
//   - Name is the unique login identifier, stored in normalized form.
//   - Email is unique.
//   - PasswordHash is produced exclusively via bcrypt in the service layer;
//     the plaintext is never persisted or logged.
//   - IsActive gates every authenticated request: a valid token for a
//     deactivated account is rejected after authorization, not during it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	IsActive     bool      `json:"is_active"`
	Address      *string   `json:"address,omitempty"`
	PhoneNumber  *string   `json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal returns the unique login name. It satisfies the identity
// contract the authorization middleware operates on.
func (u *User) Principal() string { return u.Name }

// Active reports whether the account may use authenticated endpoints.
func (u *User) Active() bool { return u.IsActive }

// Global field names for validation
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// # Request Context

// WithIdentity returns a new context carrying the resolved account.
func WithIdentity(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ctxkey.KeyIdentity, user)
}

// FromContext retrieves the resolved account from the context.
// Returns nil for anonymous requests.
func FromContext(ctx context.Context) *User {
	user, ok := ctx.Value(ctxkey.KeyIdentity).(*User)
	if !ok {
		return nil
	}
	return user
}
