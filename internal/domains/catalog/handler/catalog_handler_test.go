package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/catalog/model"
	"bookshelf-backend/internal/domains/catalog/service"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/internal/shared/utils"
	"bookshelf-backend/web"
)

type stubService struct {
	requested int
	err       error
}

func (s *stubService) Page(_ context.Context, page int) (*service.Page, error) {
	s.requested = page
	if s.err != nil {
		return nil, s.err
	}
	return &service.Page{
		Books: []model.CatalogBook{{
			Name: "Dune", Author: "Frank Herbert", Category: "Science Fiction",
			Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC),
		}},
		Pagination: utils.Paginate(page, 10, 25, false),
	}, nil
}

func (s *stubService) SeedIfEmpty(context.Context) (int, error) { return 0, nil }

type viewer struct{ Username string }

func setupRouter(t *testing.T, svc service.ServiceInterface) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/books", func(c *gin.Context) {
		c.Set(middleware.UserKey, viewer{Username: "alice"})
	}, NewHandler(svc, 10).ListBooks)
	return r
}

func TestListBooksRendersPage(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books?page=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.requested)
	body := w.Body.String()
	assert.Contains(t, body, "Welcome, alice")
	assert.Contains(t, body, "Dune")
	assert.Contains(t, body, "Page 2 of 3")
	assert.Contains(t, body, `href="/books?page=1"`)
	assert.Contains(t, body, `href="/books?page=3"`)
}

func TestListBooksBadPageParam(t *testing.T) {
	for _, q := range []string{"", "?page=abc", "?page=-2", "?page=0"} {
		svc := &stubService{}
		r := setupRouter(t, svc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books"+q, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, svc.requested, q)
	}
}

func TestListBooksStoreFailure(t *testing.T) {
	r := setupRouter(t, &stubService{err: errors.New("db down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load books")
	assert.Contains(t, w.Body.String(), "Page 1 of 1")
}
