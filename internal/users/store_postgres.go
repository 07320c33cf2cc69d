// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/keepsake/internal/platform/apperr"
)

// PostgresRepository implements the [Repository] interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, unique-violation SQLSTATEs) are
// mapped to domain-friendly [apperr.AppError] values to avoid leaking storage
// implementation details.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const userColumns = "id, name, email, passwordhash, isactive, address, phonenumber, createdat"

// Insert persists a new user record into the users.account table.
func (repository *PostgresRepository) Insert(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, name, email, passwordhash, isactive, address, phonenumber, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.Address,
		user.PhoneNumber,
		user.CreatedAt,
	)

	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
			return apperr.Conflict("Name or email is already registered")
		}
		return fmt.Errorf("postgres_user_repo_insert_failed: %w", err)
	}

	return nil
}

// FindByID retrieves a user record by its unique ID.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users.account
		WHERE id = $1`

	return repository.scanOne(ctx, query, id)
}

// FindByName retrieves a user record by its unique normalized login name.
func (repository *PostgresRepository) FindByName(ctx context.Context, name string) (*User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users.account
		WHERE name = $1`

	return repository.scanOne(ctx, query, name)
}

// FindByEmail retrieves a user record by its unique email address.
func (repository *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users.account
		WHERE email = $1`

	return repository.scanOne(ctx, query, email)
}

// List returns one page of accounts plus the total row count.
func (repository *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*User, int, error) {
	const query = `
		SELECT ` + userColumns + `, COUNT(*) OVER() AS total
		FROM users.account
		ORDER BY createdat, id
		OFFSET $1 LIMIT $2`

	rows, err := repository.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_user_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var (
		accounts []*User
		total    int
	)
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.IsActive,
			&user.Address,
			&user.PhoneNumber,
			&user.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_user_repo_list_scan_failed: %w", err)
		}
		accounts = append(accounts, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_user_repo_list_rows_failed: %w", err)
	}

	return accounts, total, nil
}

// scanOne runs a single-row lookup and maps pgx.ErrNoRows to [apperr.NotFound].
func (repository *PostgresRepository) scanOne(ctx context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := repository.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.Address,
		&user.PhoneNumber,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_failed: %w", err)
	}

	return user, nil
}
