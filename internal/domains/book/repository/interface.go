package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/book/model"
)

// RepositoryInterface is the record store contract for tracker books.
// Callers apply the entity rules before Create, Replace and CreateMany.
type RepositoryInterface interface {
	// Create inserts b and fills in the store-assigned id and timestamps.
	Create(ctx context.Context, b *model.Book) error
	// List returns every book ordered by title, then id.
	List(ctx context.Context) ([]model.Book, error)
	// GetByID returns model.ErrBookNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	// Replace overwrites every editable column of the book with b.ID.
	Replace(ctx context.Context, b *model.Book) error
	// Delete returns model.ErrBookNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
	// CreateMany inserts all books in one transaction.
	CreateMany(ctx context.Context, books []*model.Book) error
	Stats(ctx context.Context) (*model.Stats, error)
}
