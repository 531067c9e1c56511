package repository

import (
	"context"

	"bookshelf-backend/internal/domains/catalog/model"
)

type RepositoryInterface interface {
	Count(ctx context.Context) (int, error)
	// List returns up to limit books starting at offset, newest first.
	List(ctx context.Context, offset, limit int) ([]model.CatalogBook, error)
	// InsertMany inserts books in one transaction.
	InsertMany(ctx context.Context, books []model.CatalogBook) error
}
