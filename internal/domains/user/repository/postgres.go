package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	user "bookshelf-backend/internal/domains/user"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/database"
	"bookshelf-backend/pkg/logger"
)

const (
	uniqueViolation = "23505"
	userCacheTTL    = 10 * time.Minute
)

type postgresRepository struct {
	pool  database.Querier
	cache cache.Cache
}

// NewPostgresRepository returns a user.Repository over pool. FindByID is
// cached since the session guard calls it on every page view.
func NewPostgresRepository(pool database.Querier, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, u.Username, u.Email, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrUsernameOrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// FindByID uses cache-aside: a cache miss or cache failure falls through to
// the database.
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	found, err := r.cache.Get(ctx, cacheKey(id), &u)
	if err != nil {
		logger.Warn("user cache read failed", map[string]interface{}{"user_id": id.String(), "error": err.Error()})
	}
	if found {
		return &u, nil
	}

	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1`
	if err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey(id), u, userCacheTTL); err != nil {
		logger.Warn("user cache write failed", map[string]interface{}{"user_id": id.String(), "error": err.Error()})
	}
	return &u, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`

	var u user.User
	if err := r.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
