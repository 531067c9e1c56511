package service

import (
	"context"
	"fmt"

	"bookshelf-backend/internal/domains/catalog/model"
	"bookshelf-backend/internal/domains/catalog/repository"
	"bookshelf-backend/internal/shared/utils"
	"bookshelf-backend/pkg/logger"
)

// Options controls catalog pagination.
type Options struct {
	PageSize int
	// ClampPage moves requests past the last page back to the last page.
	ClampPage bool
}

type CatalogService struct {
	repo repository.RepositoryInterface
	opts Options
}

func NewService(repo repository.RepositoryInterface, opts Options) ServiceInterface {
	if opts.PageSize < 1 {
		opts.PageSize = 10
	}
	return &CatalogService{repo: repo, opts: opts}
}

func (s *CatalogService) Page(ctx context.Context, page int) (*Page, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	p := utils.Paginate(page, s.opts.PageSize, total, s.opts.ClampPage)

	books, err := s.repo.List(ctx, p.Offset, p.Limit)
	if err != nil {
		return nil, err
	}

	return &Page{Books: books, Pagination: p}, nil
}

func (s *CatalogService) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	if count > 0 {
		logger.Info("catalog already contains data, skipping seeding", map[string]interface{}{"count": count})
		return 0, nil
	}

	books := model.SeedBooks()
	for _, b := range books {
		if err := b.Validate(); err != nil {
			return 0, fmt.Errorf("seed %q: %w", b.Name, err)
		}
	}

	if err := s.repo.InsertMany(ctx, books); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}

	logger.Info("seeded catalog", map[string]interface{}{"count": len(books)})
	return len(books), nil
}
