package container

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"alexandria-backend/internal/config"
	infraCache "alexandria-backend/internal/infrastructure/cache"
	"alexandria-backend/internal/infrastructure/database"
	"alexandria-backend/pkg/cache"
	"alexandria-backend/pkg/logger"

	bookHandler "alexandria-backend/internal/domains/book/handler"
	bookRepo "alexandria-backend/internal/domains/book/repository"
	bookService "alexandria-backend/internal/domains/book/service"
	publisherHandler "alexandria-backend/internal/domains/publisher/handler"
	publisherRepo "alexandria-backend/internal/domains/publisher/repository"
	publisherService "alexandria-backend/internal/domains/publisher/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
// Initialization order: config, infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB // set when STORAGE_DRIVER=postgres
	SQLite *sql.DB              // set when STORAGE_DRIVER=sqlite
	Cache  cache.Cache          // nil unless CACHE_ENABLED

	// Repositories
	PublisherRepo  publisherRepo.RepositoryInterface
	BookRepo       bookRepo.RepositoryInterface
	BookDetailRepo bookRepo.DetailRepositoryInterface

	// Services
	PublisherService publisherService.ServiceInterface
	BookService      bookService.ServiceInterface

	// Handlers
	PublisherHandler *publisherHandler.PublisherHandler
	BookHandler      *bookHandler.BookHandler
}

// NewContainer loads the configuration from the environment and builds the graph
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return Build(ctx, cfg)
}

// Build wires the dependency graph for an already loaded configuration
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger.Info("Initializing container", map[string]interface{}{
		"environment": cfg.App.Environment,
		"storage":     cfg.Storage.Driver,
		"cache":       cfg.Cache.Enabled,
	})

	c := &Container{Config: cfg}

	if err := c.initStorage(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	if err := c.initCache(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

// ========================================
// INFRASTRUCTURE
// ========================================

func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.Storage.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, c.Config.Storage.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}
		c.SQLite = db
		return nil

	case config.DriverPostgres:
		dbCfg := c.Config.Database
		db := database.NewPostgresDB(&dbCfg)

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := db.Connect(connectCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		return nil

	default:
		return fmt.Errorf("unsupported storage driver %q", c.Config.Storage.Driver)
	}
}

func (c *Container) initCache(ctx context.Context) error {
	if !c.Config.Cache.Enabled {
		return nil
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		// the cache is optional, the app keeps serving from storage
		logger.Warn("Redis unavailable, publisher cache disabled", err)
		_ = rc.Close()
		return nil
	}

	c.Cache = rc
	return nil
}

// ========================================
// DOMAINS
// ========================================

func (c *Container) initRepositories() {
	if c.SQLite != nil {
		c.PublisherRepo = publisherRepo.NewSQLiteRepository(c.SQLite)
		c.BookRepo = bookRepo.NewSQLiteRepository(c.SQLite)
		c.BookDetailRepo = bookRepo.NewSQLiteDetailRepository(c.SQLite)
	} else {
		c.PublisherRepo = publisherRepo.NewPostgresRepository(c.DB.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
		c.BookDetailRepo = bookRepo.NewPostgresDetailRepository(c.DB.Pool)
	}

	if c.Cache != nil {
		c.PublisherRepo = publisherRepo.NewCachedRepository(c.PublisherRepo, c.Cache, c.Config.Cache.TTL)
	}
}

func (c *Container) initServices() {
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.BookDetailRepo, c.PublisherService)
}

func (c *Container) initHandlers() {
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// ========================================
// HEALTH & CLEANUP
// ========================================

// HealthCheck pings storage and, when enabled, the cache.
// The map holds "ok" or the failure message per component.
func (c *Container) HealthCheck(ctx context.Context) (map[string]string, bool) {
	status := make(map[string]string)
	healthy := true

	record := func(name string, err error) {
		if err != nil {
			status[name] = err.Error()
			healthy = false
			return
		}
		status[name] = "ok"
	}

	switch {
	case c.SQLite != nil:
		record("storage", c.SQLite.PingContext(ctx))
	case c.DB != nil:
		record("storage", c.DB.HealthCheck(ctx))
	default:
		record("storage", fmt.Errorf("storage not initialized"))
	}

	if c.Cache != nil {
		record("cache", c.Cache.Ping(ctx))
	}

	return status, healthy
}

// Cleanup releases every connection the container opened
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			logger.Warn("Failed to close sqlite", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("Failed to close Redis", err)
		}
	}

	logger.Debug("Container cleanup completed")
}
