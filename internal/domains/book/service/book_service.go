package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/repository"
	"bookshelf-backend/pkg/logger"
)

type BookService struct {
	repo   repository.RepositoryInterface
	policy model.FinishPolicy
}

func NewService(repo repository.RepositoryInterface, policy model.FinishPolicy) ServiceInterface {
	return &BookService{repo: repo, policy: policy}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, model.ErrInvalidBookID
	}
	return parsed, nil
}

// prepare validates req and turns it into a book ready to persist.
func (s *BookService) prepare(req model.BookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	b := req.ToBook()
	s.policy.Apply(b)
	return b, nil
}

func (s *BookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}

func (s *BookService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	bookID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, bookID)
}

func (s *BookService) CreateBook(ctx context.Context, req model.BookRequest) (*model.Book, error) {
	b, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{
		"book_id":  b.ID.String(),
		"finished": b.Finished,
	})
	return b, nil
}

func (s *BookService) ReplaceBook(ctx context.Context, id string, req model.BookRequest) (*model.Book, error) {
	bookID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	b, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	b.ID = bookID

	if err := s.repo.Replace(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	bookID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, bookID); err != nil {
		return err
	}

	logger.Info("book deleted", map[string]interface{}{"book_id": bookID.String()})
	return nil
}

// ImportBooks validates every request before inserting anything, so a bad
// entry leaves the store untouched.
func (s *BookService) ImportBooks(ctx context.Context, reqs []model.BookRequest) ([]*model.Book, error) {
	books := make([]*model.Book, 0, len(reqs))
	for i, req := range reqs {
		b, err := s.prepare(req)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		books = append(books, b)
	}

	if err := s.repo.CreateMany(ctx, books); err != nil {
		return nil, err
	}

	logger.Info("books imported", map[string]interface{}{"count": len(books)})
	return books, nil
}

func (s *BookService) Stats(ctx context.Context) (*model.Stats, error) {
	return s.repo.Stats(ctx)
}
