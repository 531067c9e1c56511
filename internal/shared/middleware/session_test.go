package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/jwt"
	"bookshelf-backend/pkg/session"
)

const testCookie = "bookshelf_session"

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter(sessions SessionResolver, load UserLoader) *gin.Engine {
	r := gin.New()
	r.GET("/books", RequireSession(sessions, testCookie, "/login", load), func(c *gin.Context) {
		c.String(http.StatusOK, "hello %s", c.GetString(UserIDKey))
	})
	return r
}

func loadAny(_ context.Context, id string) (interface{}, error) { return id, nil }

func TestRequireSessionRedirectsWithoutCookie(t *testing.T) {
	sessions := session.NewManager(cache.NewMemoryCache(), jwt.NewManager("s"), time.Hour)
	r := guardedRouter(sessions, loadAny)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSessionAllowsLiveSession(t *testing.T) {
	sessions := session.NewManager(cache.NewMemoryCache(), jwt.NewManager("s"), time.Hour)
	token, err := sessions.Issue(context.Background(), "u-1")
	require.NoError(t, err)

	r := guardedRouter(sessions, loadAny)
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello u-1", w.Body.String())
}

func TestRequireSessionRedirectsAfterLogout(t *testing.T) {
	sessions := session.NewManager(cache.NewMemoryCache(), jwt.NewManager("s"), time.Hour)
	token, err := sessions.Issue(context.Background(), "u-1")
	require.NoError(t, err)
	require.NoError(t, sessions.Destroy(context.Background(), token))

	r := guardedRouter(sessions, loadAny)
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSessionRedirectsWhenUserIsGone(t *testing.T) {
	sessions := session.NewManager(cache.NewMemoryCache(), jwt.NewManager("s"), time.Hour)
	token, err := sessions.Issue(context.Background(), "u-1")
	require.NoError(t, err)

	r := guardedRouter(sessions, func(context.Context, string) (interface{}, error) {
		return nil, fmt.Errorf("load user: %w", ErrSessionUserGone)
	})
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSessionUserStoreFailureKeepsSession(t *testing.T) {
	sessions := session.NewManager(cache.NewMemoryCache(), jwt.NewManager("s"), time.Hour)
	token, err := sessions.Issue(context.Background(), "u-1")
	require.NoError(t, err)

	r := guardedRouter(sessions, func(context.Context, string) (interface{}, error) {
		return nil, errors.New("failed to find user: connection refused")
	})
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Empty(t, w.Header().Get("Set-Cookie"))

	userID, err := sessions.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}

type brokenStore struct{}

func (brokenStore) Resolve(context.Context, string) (string, error) {
	return "", errors.New("redis: connection refused")
}

func TestRequireSessionStoreFailure(t *testing.T) {
	r := guardedRouter(brokenStore{}, loadAny)
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "x"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
