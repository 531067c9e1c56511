package container

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"bookshelf-backend/internal/config"
	bookHandler "bookshelf-backend/internal/domains/book/handler"
	bookModel "bookshelf-backend/internal/domains/book/model"
	bookRepo "bookshelf-backend/internal/domains/book/repository"
	bookService "bookshelf-backend/internal/domains/book/service"
	catalogHandler "bookshelf-backend/internal/domains/catalog/handler"
	catalogRepo "bookshelf-backend/internal/domains/catalog/repository"
	catalogService "bookshelf-backend/internal/domains/catalog/service"
	"bookshelf-backend/internal/domains/user"
	userHandler "bookshelf-backend/internal/domains/user/handler"
	userRepo "bookshelf-backend/internal/domains/user/repository"
	userService "bookshelf-backend/internal/domains/user/service"
	infraCache "bookshelf-backend/internal/infrastructure/cache"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/jwt"
	"bookshelf-backend/pkg/logger"
	"bookshelf-backend/pkg/session"
)

// Container holds the dependency graph of the server.
// Build order: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB       *database.PostgresDB
	SQLDB    *sql.DB
	Cache    cache.Cache
	Redis    *infraCache.RedisCache // nil when running on the in-memory fallback
	Tokens   *jwt.Manager
	Sessions *session.Manager
	Registry *prometheus.Registry
	Metrics  *middleware.Metrics

	// Repositories
	BookRepo    bookRepo.RepositoryInterface
	UserRepo    user.Repository
	CatalogRepo catalogRepo.RepositoryInterface

	// Services
	BookService    bookService.ServiceInterface
	UserService    user.Service
	CatalogService catalogService.ServiceInterface

	// Handlers
	BookHandler    *bookHandler.Handler
	AuthHandler    *userHandler.AuthHandler
	CatalogHandler *catalogHandler.Handler
}

// NewContainer builds every dependency. Store outages are not fatal: the
// server starts anyway and affected requests fail on their own.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	logger.Info("configuration loaded", map[string]interface{}{"env": cfg.App.Environment})

	c := &Container{Config: cfg}

	dbReady, err := c.initDatabase()
	if err != nil {
		return nil, err
	}
	c.initCache()
	c.initMetrics()

	c.Tokens = jwt.NewManager(cfg.Session.Secret)
	c.Sessions = session.NewManager(c.Cache, c.Tokens, cfg.Session.TTL)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	if dbReady && cfg.Catalog.SeedIfEmpty {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := c.CatalogService.SeedIfEmpty(ctx); err != nil {
			logger.Error("catalog seeding failed", err)
		}
	}

	logger.Info("container initialized", nil)
	return c, nil
}

// initDatabase connects with retries. When the database stays unreachable a
// lazy pool is opened instead, and false is returned.
func (c *Container) initDatabase() (bool, error) {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return false, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	c.DB = db

	ready := true
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		logger.Error("database unavailable, starting without it", err)
		ready = false
		if err := db.OpenLazy(); err != nil {
			return false, fmt.Errorf("failed to open database pool: %w", err)
		}
	}

	if ready {
		if err := db.EnsureSchema(ctx); err != nil {
			logger.Error("failed to apply schema", err)
			ready = false
		}
	}

	sqlDB, err := db.SQLDB()
	if err != nil {
		return false, err
	}
	c.SQLDB = sqlDB

	return ready, nil
}

// initCache prefers Redis and falls back to an in-memory store, which keeps
// logins working on a single instance.
func (c *Container) initCache() {
	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, using in-memory session store", map[string]interface{}{"error": err.Error()})
		_ = rc.Close()
		c.Cache = cache.NewMemoryCache()
		return
	}

	c.Redis = rc
	c.Cache = rc
}

func (c *Container) initMetrics() {
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = middleware.NewMetrics(c.Registry)
}

func (c *Container) initRepositories() {
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CatalogRepo = catalogRepo.NewSQLRepository(c.SQLDB)
}

func (c *Container) initServices() {
	c.BookService = bookService.NewService(c.BookRepo, bookModel.FinishPolicy{
		AutoPromoteStatusOnFinish: c.Config.Books.AutoPromoteStatusOnFinish,
	})
	c.UserService = userService.NewUserService(c.UserRepo, c.Cache, userService.Options{
		BcryptCost:        c.Config.Auth.BcryptCost,
		MaxFailedAttempts: c.Config.Auth.MaxFailedAttempts,
		LockoutWindow:     c.Config.Auth.LockoutWindow,
	})
	c.CatalogService = catalogService.NewService(c.CatalogRepo, catalogService.Options{
		PageSize:  c.Config.Catalog.PageSize,
		ClampPage: c.Config.Catalog.ClampPage,
	})
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService, c.Sessions, userHandler.CookieConfig{
		Name:   c.Config.Session.CookieName,
		Secure: c.Config.Session.Secure,
	})
	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService, c.Config.Catalog.PageSize)
}

// LoadSessionUser resolves the user bound to a session for the guard middleware.
func (c *Container) LoadSessionUser(ctx context.Context, userID string) (interface{}, error) {
	u, err := c.UserService.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", middleware.ErrSessionUserGone, userID)
		}
		return nil, err
	}
	return u, nil
}

// Cleanup releases connections. Called after the server has shut down.
func (c *Container) Cleanup() {
	if c.SQLDB != nil {
		_ = c.SQLDB.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("failed to close redis", map[string]interface{}{"error": err.Error()})
		}
	}
	logger.Info("container cleanup completed", nil)
}
