package repository

import (
	"context"

	"ecobrands/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages: airtable for brand records, postgres for suggestions.

// BrandRepository reads and writes brand records in the hosted table database.
// No business logic here: filtering, scoring and caching belong to the service layer.
type BrandRepository interface {
	// List returns every brand with retailer links resolved, in table order.
	List(ctx context.Context) ([]model.Brand, error)

	// Create inserts a brand record and returns its record ID.
	Create(ctx context.Context, in model.BrandInput) (string, error)

	// Update writes only the fields set in the patch.
	Update(ctx context.Context, id string, patch model.BrandPatch) error

	// Delete destroys a brand record.
	Delete(ctx context.Context, id string) error

	// Ping fetches at most one record to verify credentials and table access.
	// It returns the number of records seen.
	Ping(ctx context.Context) (int, error)
}

// SuggestionRepository persists brand suggestions using SQL queries only.
type SuggestionRepository interface {
	// Create inserts a suggestion row and returns the stored record.
	Create(ctx context.Context, s *model.Suggestion) (*model.Suggestion, error)

	// List returns a page of suggestions, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Suggestion], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
