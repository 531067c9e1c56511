package service

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
)

// ServiceInterface is the tracker's business layer. Every write goes through
// validation and the finish policy before it reaches the store.
type ServiceInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (*model.Book, error)
	CreateBook(ctx context.Context, req model.BookRequest) (*model.Book, error)
	ReplaceBook(ctx context.Context, id string, req model.BookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ImportBooks(ctx context.Context, reqs []model.BookRequest) ([]*model.Book, error)
	Stats(ctx context.Context) (*model.Stats, error)
}
