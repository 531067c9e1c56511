package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/catalog/service"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/internal/shared/utils"
)

// Handler renders the catalog page. It expects the session guard to run first.
type Handler struct {
	service  service.ServiceInterface
	pageSize int
}

func NewHandler(service service.ServiceInterface, pageSize int) *Handler {
	return &Handler{service: service, pageSize: pageSize}
}

// ListBooks - GET /books?page=N
func (h *Handler) ListBooks(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	user, _ := c.Get(middleware.UserKey)

	result, err := h.service.Page(c.Request.Context(), page)
	if err != nil {
		log.Error().Err(err).Int("page", page).Msg("failed to load catalog")
		c.HTML(http.StatusOK, "books.html", gin.H{
			"user":       user,
			"books":      nil,
			"error":      "Failed to load books",
			"pagination": utils.Paginate(1, h.pageSize, 0, false),
		})
		return
	}

	c.HTML(http.StatusOK, "books.html", gin.H{
		"user":       user,
		"books":      result.Books,
		"pagination": result.Pagination,
	})
}
