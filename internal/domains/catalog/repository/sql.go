package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bookshelf-backend/internal/domains/catalog/model"
)

// sqlRepository runs on database/sql so it works with both the pgx stdlib
// adapter and lib/pq.
type sqlRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) RepositoryInterface {
	return &sqlRepository{db: db}
}

func (r *sqlRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_books`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count catalog books: %w", err)
	}
	return n, nil
}

func (r *sqlRepository) List(ctx context.Context, offset, limit int) ([]model.CatalogBook, error) {
	query := `
		SELECT id, name, author, category, published
		FROM catalog_books
		ORDER BY published DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog books: %w", err)
	}
	defer rows.Close()

	books := make([]model.CatalogBook, 0, limit)
	for rows.Next() {
		var b model.CatalogBook
		if err := rows.Scan(&b.ID, &b.Name, &b.Author, &b.Category, &b.Published); err != nil {
			return nil, fmt.Errorf("failed to scan catalog book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog books: %w", err)
	}

	return books, nil
}

func (r *sqlRepository) InsertMany(ctx context.Context, books []model.CatalogBook) (err error) {
	if len(books) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO catalog_books (name, author, category, published) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range books {
		if _, err = stmt.ExecContext(ctx, b.Name, b.Author, b.Category, b.Published); err != nil {
			return fmt.Errorf("failed to insert %q: %w", b.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
