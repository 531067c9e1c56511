package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/pkg/container"
	"bookshelf-backend/web"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		c.Metrics.Middleware(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", c.Metrics.Handler())
	router.StaticFS("/tracker", web.Static())

	setupBookRoutes(router, c)
	setupPageRoutes(router, c)

	router.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			response.NotFound(ctx, "Route not found")
			return
		}
		ctx.String(http.StatusNotFound, "404 page not found")
	})

	return router, nil
}

// setupBookRoutes mounts the tracker JSON API.
func setupBookRoutes(router *gin.Engine, c *container.Container) {
	c.BookHandler.RegisterRoutes(router.Group("/api/books"))
}

// setupPageRoutes mounts the server-rendered catalog demo.
func setupPageRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/login")
	})

	c.AuthHandler.RegisterRoutes(router)

	guard := middleware.RequireSession(c.Sessions, c.Config.Session.CookieName, "/login", c.LoadSessionUser)
	router.GET("/books", guard, c.CatalogHandler.ListBooks)
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		dbStatus := "up"
		if appCtx.DB == nil || appCtx.DB.HealthCheck(ctx) != nil {
			dbStatus = "down"
			status = "degraded"
		}

		cacheStatus := "up"
		if appCtx.Redis == nil {
			cacheStatus = "memory"
		} else if appCtx.Redis.Ping(ctx) != nil {
			cacheStatus = "down"
			status = "degraded"
		}

		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"database": dbStatus,
				"cache":    cacheStatus,
			},
		})
	}
}
