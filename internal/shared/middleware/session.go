package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/pkg/session"
)

const (
	UserIDKey = "userID"
	UserKey   = "user"
)

// ErrSessionUserGone is returned by a UserLoader when the session outlived
// its user. Any other loader error is treated as a store failure.
var ErrSessionUserGone = errors.New("session user no longer exists")

// SessionResolver maps a session token to a user id.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// UserLoader fetches the user bound to a session.
type UserLoader func(ctx context.Context, userID string) (interface{}, error)

// RequireSession guards server-rendered pages. Requests without a live session
// are redirected to loginPath.
func RequireSession(sessions SessionResolver, cookieName, loginPath string, load UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) && !errors.Is(err, session.ErrInvalidSession) {
				log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("session lookup failed")
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			redirectToLogin(c, cookieName, loginPath)
			return
		}

		user, err := load(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, ErrSessionUserGone) {
				log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("session user lookup failed")
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			log.Warn().Str("user_id", userID).Msg("session user no longer exists")
			redirectToLogin(c, cookieName, loginPath)
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserKey, user)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context, cookieName, loginPath string) {
	if _, err := c.Cookie(cookieName); err == nil {
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
	}
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}
