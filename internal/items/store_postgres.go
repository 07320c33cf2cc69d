// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package items

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
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert persists a new item record into the core.item table.
func (repository *PostgresRepository) Insert(ctx context.Context, item *Item) error {
	const query = `
		INSERT INTO core.item (
			id, name, description, datecreated, ownerid
		) VALUES ($1, $2, $3, $4, $5)`

	if item.DateCreated.IsZero() {
		item.DateCreated = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.DateCreated,
		item.OwnerID,
	)

	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == pgerrcode.ForeignKeyViolation {
			return apperr.NotFound("Owner")
		}
		return fmt.Errorf("postgres_item_repo_insert_failed: %w", err)
	}

	return nil
}

// FindByID retrieves an item record by its unique ID.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Item, error) {
	const query = `
		SELECT id, name, description, datecreated, ownerid
		FROM core.item
		WHERE id = $1`

	item := &Item{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.DateCreated,
		&item.OwnerID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Item")
		}
		return nil, fmt.Errorf("postgres_item_repo_find_failed: %w", err)
	}

	return item, nil
}

// List returns one page of items plus the total row count.
func (repository *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*Item, int, error) {
	const query = `
		SELECT id, name, description, datecreated, ownerid, COUNT(*) OVER() AS total
		FROM core.item
		ORDER BY datecreated, id
		OFFSET $1 LIMIT $2`

	rows, err := repository.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_item_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var (
		records []*Item
		total   int
	)
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.DateCreated,
			&item.OwnerID,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_item_repo_list_scan_failed: %w", err)
		}
		records = append(records, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_item_repo_list_rows_failed: %w", err)
	}

	return records, total, nil
}
