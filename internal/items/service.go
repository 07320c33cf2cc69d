// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package items

import (
	"context"
	"log/slog"

	"github.com/taibuivan/keepsake/internal/platform/validate"
	"github.com/taibuivan/keepsake/pkg/uuidv7"
)

// Service implements item use cases.
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

// CreateInput holds the data required to create an item.
type CreateInput struct {
	Name        string
	Description *string
	OwnerID     string
}

// Create validates and persists a new item attributed to its owner.
//
// An unknown owner surfaces as 404 via the store's foreign-key mapping.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Item, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.UUID(FieldOwnerID, input.OwnerID)
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, 2000)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	item := &Item{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
	}

	if err := service.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	service.logger.Info("item_created",
		slog.String("item_id", item.ID),
		slog.String("owner_id", item.OwnerID),
	)
	return item, nil
}

// Get returns the item with the given ID.
func (service *Service) Get(ctx context.Context, id string) (*Item, error) {
	validator := &validate.Validator{}
	if err := validator.UUID("item_id", id).Err(); err != nil {
		return nil, err
	}

	return service.repo.FindByID(ctx, id)
}

// List returns one page of items plus the total count.
func (service *Service) List(ctx context.Context, offset, limit int) ([]*Item, int, error) {
	return service.repo.List(ctx, offset, limit)
}
