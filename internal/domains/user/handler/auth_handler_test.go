package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/user"
	"bookshelf-backend/web"
)

type stubUsers struct {
	registerErr error
	authUser    *user.User
	authErr     error
	lastReg     user.RegisterRequest
}

func (s *stubUsers) Register(_ context.Context, req user.RegisterRequest) (*user.User, error) {
	s.lastReg = req
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &user.User{ID: uuid.New(), Username: req.Username}, nil
}

func (s *stubUsers) Authenticate(context.Context, user.LoginRequest) (*user.User, error) {
	return s.authUser, s.authErr
}

func (s *stubUsers) GetByID(context.Context, string) (*user.User, error) {
	return s.authUser, nil
}

type stubSessions struct {
	issued    string
	destroyed string
}

func (s *stubSessions) Issue(_ context.Context, userID string) (string, error) {
	s.issued = userID
	return "token-for-" + userID, nil
}

func (s *stubSessions) Destroy(_ context.Context, token string) error {
	s.destroyed = token
	return nil
}

func (s *stubSessions) TTL() time.Duration { return time.Hour }

func setupRouter(t *testing.T, users *stubUsers, sessions *stubSessions) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	NewAuthHandler(users, sessions, CookieConfig{Name: "bookshelf_session"}).RegisterRoutes(r)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRedirectsToLogin(t *testing.T) {
	users := &stubUsers{}
	r := setupRouter(t, users, &stubSessions{})

	w := postForm(r, "/register", url.Values{
		"username": {"alice"}, "email": {"alice@example.com"},
		"password": {"pw"}, "confirmPassword": {"pw"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "pw", users.lastReg.ConfirmPassword)
}

func TestRegisterRendersFormErrors(t *testing.T) {
	for _, err := range []error{user.ErrMissingFields, user.ErrPasswordMismatch, user.ErrUsernameOrEmailTaken} {
		r := setupRouter(t, &stubUsers{registerErr: err}, &stubSessions{})

		w := postForm(r, "/register", url.Values{"username": {"alice"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), err.Error())
	}
}

func TestRegisterHidesInternalErrors(t *testing.T) {
	r := setupRouter(t, &stubUsers{registerErr: errors.New("pq: connection refused")}, &stubSessions{})

	w := postForm(r, "/register", url.Values{"username": {"alice"}})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestLoginSetsSessionCookie(t *testing.T) {
	u := &user.User{ID: uuid.New(), Username: "alice"}
	sessions := &stubSessions{}
	r := setupRouter(t, &stubUsers{authUser: u}, sessions)

	w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"pw"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/books", w.Header().Get("Location"))
	assert.Equal(t, u.ID.String(), sessions.issued)

	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "bookshelf_session=token-for-"+u.ID.String())
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "Max-Age=3600")
}

func TestLoginRendersCredentialErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{user.ErrIncorrectUsername, http.StatusUnauthorized},
		{user.ErrIncorrectPassword, http.StatusUnauthorized},
		{user.ErrTooManyAttempts, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		r := setupRouter(t, &stubUsers{authErr: tt.err}, &stubSessions{})

		w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"pw"}})
		assert.Equal(t, tt.status, w.Code)
		assert.Contains(t, w.Body.String(), tt.err.Error())
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	sessions := &stubSessions{}
	r := setupRouter(t, &stubUsers{}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "bookshelf_session", Value: "tok"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "tok", sessions.destroyed)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestShowPages(t *testing.T) {
	r := setupRouter(t, &stubUsers{}, &stubSessions{})

	for _, path := range []string{"/login", "/register"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<form")
	}
}
