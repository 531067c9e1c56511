// Package session issues and resolves login sessions. Session state lives in
// the cache (Redis in production); the browser only holds a signed token
// naming the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/jwt"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrInvalidSession = errors.New("invalid session token")
)

const keyPrefix = "session:"

// Data is what is stored per session.
type Data struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Manager struct {
	store  cache.Cache
	tokens *jwt.Manager
	ttl    time.Duration
}

func NewManager(store cache.Cache, tokens *jwt.Manager, ttl time.Duration) *Manager {
	return &Manager{store: store, tokens: tokens, ttl: ttl}
}

// TTL is the lifetime of a session and of its cookie.
func (m *Manager) TTL() time.Duration { return m.ttl }

func key(sessionID string) string { return keyPrefix + sessionID }

// Issue starts a session for userID and returns the token to put in the cookie.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.NewString()

	data := Data{UserID: userID, CreatedAt: time.Now().UTC()}
	if err := m.store.Set(ctx, key(sessionID), data, m.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	token, err := m.tokens.GenerateSessionToken(userID, sessionID, m.ttl)
	if err != nil {
		_ = m.store.Delete(ctx, key(sessionID))
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Resolve returns the user id bound to token.
// ErrInvalidSession means the token itself is bad, ErrNoSession that it was
// valid but the session has ended (logout or expiry).
func (m *Manager) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}

	claims, err := m.tokens.ValidateSessionToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	var data Data
	found, err := m.store.Get(ctx, key(claims.SessionID), &data)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if !found || data.UserID != claims.UserID {
		return "", ErrNoSession
	}
	return data.UserID, nil
}

// Destroy ends the session named by token. Unknown or invalid tokens are ignored.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := m.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil
	}
	if err := m.store.Delete(ctx, key(claims.SessionID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
