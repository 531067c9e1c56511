package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/jwt"
)

func newTestManager() (*Manager, *cache.MemoryCache) {
	store := cache.NewMemoryCache()
	return NewManager(store, jwt.NewManager("test-secret"), time.Hour), store
}

func TestIssueAndResolve(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager()

	token, err := m.Issue(ctx, "user-42")
	require.NoError(t, err)

	userID, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestDestroyEndsSession(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager()

	token, err := m.Issue(ctx, "user-42")
	require.NoError(t, err)
	require.NoError(t, m.Destroy(ctx, token))

	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestResolveRejectsForgedToken(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager()

	forged, err := jwt.NewManager("other-secret").GenerateSessionToken("user-42", "sess", time.Hour)
	require.NoError(t, err)

	_, err = m.Resolve(ctx, forged)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = m.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestResolveRequiresStoredSession(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager()

	// Correctly signed, but the session was never stored.
	token, err := jwt.NewManager("test-secret").GenerateSessionToken("user-42", "ghost", time.Hour)
	require.NoError(t, err)

	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDestroyIgnoresGarbage(t *testing.T) {
	m, _ := newTestManager()
	assert.NoError(t, m.Destroy(context.Background(), "not-a-token"))
	assert.NoError(t, m.Destroy(context.Background(), ""))
}
