// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import "context"

// Repository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresRepository]); tests
// substitute in-memory fakes.
type Repository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByName returns the account with the given normalized login name.
	//
	// Returns [apperr.NotFound] if the name is unregistered. The auth core
	// treats that result as "not authenticated" without echoing the
	// distinction to the caller.
	FindByName(ctx context.Context, name string) (*User, error)

	// FindByEmail returns the account with the given email.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Insert persists a brand-new user account.
	//
	// Returns a wrapped error if a unique constraint (email/name) fails.
	Insert(ctx context.Context, user *User) error

	// List returns a page of accounts ordered by creation time, plus the
	// total count for pagination metadata.
	List(ctx context.Context, offset, limit int) ([]*User, int, error)
}
