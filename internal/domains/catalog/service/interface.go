package service

import (
	"context"

	"bookshelf-backend/internal/domains/catalog/model"
	"bookshelf-backend/internal/shared/utils"
)

// Page is one page of the catalog.
type Page struct {
	Books      []model.CatalogBook
	Pagination utils.Pagination
}

type ServiceInterface interface {
	// Page returns the requested page, newest books first. Pages below 1
	// are treated as 1.
	Page(ctx context.Context, page int) (*Page, error)
	// SeedIfEmpty inserts the demo books when the catalog has none and
	// returns how many were inserted.
	SeedIfEmpty(ctx context.Context) (int, error)
}
