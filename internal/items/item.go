// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package items defines the item entity and its use cases.
//
// Items are plain owned records: no business rules apply beyond shape
// validation and owner attribution.
package items

import "time"

// Item represents a record owned by a user account.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	DateCreated time.Time `json:"date_created"`
	OwnerID     string    `json:"owner_id"`
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldOwnerID     = "owner_id"
)
