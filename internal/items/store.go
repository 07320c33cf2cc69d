// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package items

import "context"

// Repository defines the data access contract for items.
type Repository interface {
	// FindByID returns the item with the given ID.
	//
	// Returns [apperr.NotFound] if the item does not exist.
	FindByID(ctx context.Context, id string) (*Item, error)

	// Insert persists a brand-new item.
	//
	// Returns a wrapped error if the owner foreign key fails.
	Insert(ctx context.Context, item *Item) error

	// List returns a page of items ordered by creation time, plus the total
	// count for pagination metadata.
	List(ctx context.Context, offset, limit int) ([]*Item, int, error)
}
