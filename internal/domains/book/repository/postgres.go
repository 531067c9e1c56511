package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/pkg/database"
)

const bookColumns = `id, title, author, pages_total, pages_read, status, format,
	price, suggested_by, finished, created_at, updated_at`

// postgresRepository - raw SQL over pgxpool
type postgresRepository struct {
	pool database.Querier
}

func NewPostgresRepository(pool database.Querier) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.PagesTotal, &b.PagesRead, &b.Status, &b.Format,
		&b.Price, &b.SuggestedBy, &b.Finished, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Completion = model.CompletionPercentage(b.PagesRead, b.PagesTotal)
	return &b, nil
}

const insertBookQuery = `
	INSERT INTO books (title, author, pages_total, pages_read, status, format, price, suggested_by, finished)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at, updated_at
`

func insertArgs(b *model.Book) []any {
	return []any{
		b.Title, b.Author, b.PagesTotal, b.PagesRead, b.Status, b.Format,
		b.Price, b.SuggestedBy, b.Finished,
	}
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	err := r.pool.QueryRow(ctx, insertBookQuery, insertArgs(b)...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY title ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) Replace(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, pages_total = $3, pages_read = $4, status = $5, format = $6,
		    price = $7, suggested_by = $8, finished = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at
	`

	args := append(insertArgs(b), b.ID)
	err := r.pool.QueryRow(ctx, query, args...).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrBookNotFound
		}
		return fmt.Errorf("failed to replace book: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) CreateMany(ctx context.Context, books []*model.Book) error {
	if len(books) == 0 {
		return nil
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for i, b := range books {
			err := tx.QueryRow(ctx, insertBookQuery, insertArgs(b)...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert book %d (%q): %w", i+1, b.Title, err)
			}
		}
		return nil
	})
}

func (r *postgresRepository) Stats(ctx context.Context) (*model.Stats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE finished),
		       COALESCE(SUM(pages_read), 0)
		FROM books
	`

	var s model.Stats
	if err := r.pool.QueryRow(ctx, query).Scan(&s.TotalBooks, &s.TotalBooksRead, &s.TotalPagesRead); err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &s, nil
}
