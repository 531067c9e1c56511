package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/shared/response"
)

var (
	ErrInvalidPageRange = errors.New("pages read cannot exceed total pages")
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidBookID    = errors.New("invalid book id")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrInvalidPageRange: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_PAGE_RANGE",
		Message: "Pages read cannot exceed total pages",
	},
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "BOOK_NOT_FOUND",
		Message: "No book found.",
	},
	ErrInvalidBookID: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_ID",
		Message: "Invalid book id",
	},
}

// HandleBookError writes the response for err and reports whether it did.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for target, cfg := range bookErrorMap {
		if errors.Is(err, target) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book", verrs)
		return true
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("book request failed")
	response.InternalServerError(c, "Internal server error")
	return true
}
