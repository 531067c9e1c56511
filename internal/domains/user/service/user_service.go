package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookshelf-backend/internal/domains/user"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/logger"
)

// Options tunes hashing and login throttling.
type Options struct {
	BcryptCost        int
	MaxFailedAttempts int
	LockoutWindow     time.Duration
}

type userService struct {
	repo  user.Repository
	cache cache.Cache
	opts  Options
}

func NewUserService(repo user.Repository, cache cache.Cache, opts Options) user.Service {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		repo:  repo,
		cache: cache,
		opts:  opts,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameOrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrUsernameOrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user registered", map[string]interface{}{"user_id": u.ID.String()})
	return u, nil
}

func attemptsKey(username string) string {
	return "login_attempts:" + strings.ToLower(username)
}

// Authenticate checks the credentials. Failed attempts are counted per
// username; once MaxFailedAttempts is reached every attempt fails with
// ErrTooManyAttempts until LockoutWindow has passed since the first failure.
func (s *userService) Authenticate(ctx context.Context, req user.LoginRequest) (*user.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, user.ErrMissingFields
	}

	if s.lockedOut(ctx, username) {
		return nil, user.ErrTooManyAttempts
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return nil, user.ErrIncorrectUsername
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, username)
		return nil, user.ErrIncorrectPassword
	}

	if err := s.cache.Delete(ctx, attemptsKey(username)); err != nil {
		logger.Warn("failed to reset login attempts", map[string]interface{}{"error": err.Error()})
	}
	return u, nil
}

func (s *userService) lockedOut(ctx context.Context, username string) bool {
	if s.opts.MaxFailedAttempts <= 0 {
		return false
	}

	var attempts int64
	found, err := s.cache.Get(ctx, attemptsKey(username), &attempts)
	if err != nil {
		// Throttling is best effort; a cache outage must not block logins.
		logger.Warn("failed to read login attempts", map[string]interface{}{"error": err.Error()})
		return false
	}
	return found && attempts >= int64(s.opts.MaxFailedAttempts)
}

func (s *userService) recordFailure(ctx context.Context, username string) {
	if s.opts.MaxFailedAttempts <= 0 {
		return
	}

	key := attemptsKey(username)
	n, err := s.cache.Increment(ctx, key)
	if err != nil {
		logger.Warn("failed to count login attempt", map[string]interface{}{"error": err.Error()})
		return
	}
	if n == 1 {
		if err := s.cache.Expire(ctx, key, s.opts.LockoutWindow); err != nil {
			logger.Warn("failed to set login attempts window", map[string]interface{}{"error": err.Error()})
		}
	}
	if n == int64(s.opts.MaxFailedAttempts) {
		logger.Warn("login locked out", map[string]interface{}{"username": username})
	}
}

func (s *userService) GetByID(ctx context.Context, id string) (*user.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, user.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, userID)
}
