package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/user"
)

// Sessions is the part of the session manager the auth pages need.
type Sessions interface {
	Issue(ctx context.Context, userID string) (string, error)
	Destroy(ctx context.Context, token string) error
	TTL() time.Duration
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler serves the register, login and logout pages.
type AuthHandler struct {
	users    user.Service
	sessions Sessions
	cookie   CookieConfig
}

func NewAuthHandler(users user.Service, sessions Sessions, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		cookie:   cookie,
	}
}

func (h *AuthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register - POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"error": user.ErrMissingFields.Error()})
		return
	}

	if _, err := h.users.Register(c.Request.Context(), req); err != nil {
		if user.IsFormError(err) {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"error":    err.Error(),
				"username": req.Username,
				"email":    req.Email,
			})
			return
		}
		log.Error().Err(err).Msg("registration failed")
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"error": "Something went wrong, please try again"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login - POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	_ = c.ShouldBind(&req)

	u, err := h.users.Authenticate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Something went wrong, please try again"
		switch {
		case errors.Is(err, user.ErrTooManyAttempts):
			status, message = http.StatusTooManyRequests, err.Error()
		case user.IsFormError(err):
			status, message = http.StatusUnauthorized, err.Error()
		default:
			log.Error().Err(err).Msg("login failed")
		}
		c.HTML(status, "login.html", gin.H{"error": message, "username": req.Username})
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), u.ID.String())
	if err != nil {
		log.Error().Err(err).Str("user_id", u.ID.String()).Msg("failed to start session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Something went wrong, please try again"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.sessions.TTL().Seconds()), "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/books")
}

// Logout - GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			log.Warn().Err(err).Msg("failed to destroy session")
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}
