package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/service"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/internal/shared/utils"
)

// Handler serves the tracker's JSON API.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the handlers on an /api/books group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListBooks)
	rg.POST("", h.CreateBook)
	rg.GET("/stats", h.GetStats)
	rg.GET("/:id", h.GetBook)
	rg.PUT("/:id", h.ReplaceBook)
	rg.DELETE("/:id", h.DeleteBook)
}

// ListBooks - GET /api/books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, books)
}

// CreateBook - POST /api/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("invalid create book body")
		response.BadRequest(c, "Invalid request body")
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, book)
}

// GetBook - GET /api/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		model.HandleBookError(c, model.ErrInvalidBookID)
		return
	}

	book, err := h.service.GetBook(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, book)
}

// ReplaceBook - PUT /api/books/:id
// The body is a full book; omitted fields fall back to their defaults.
func (h *Handler) ReplaceBook(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		model.HandleBookError(c, model.ErrInvalidBookID)
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("invalid replace book body")
		response.BadRequest(c, "Invalid request body")
		return
	}

	book, err := h.service.ReplaceBook(c.Request.Context(), id, req)
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, book)
}

// DeleteBook - DELETE /api/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		model.HandleBookError(c, model.ErrInvalidBookID)
		return
	}

	err := h.service.DeleteBook(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}
	response.OK(c, "Book deleted")
}

// GetStats - GET /api/books/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, stats)
}
