package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/internal/infrastructure/database"
	"library-api/pkg/metrics"

	"library-api/internal/domains/author"
	authorHandler "library-api/internal/domains/author/handler"
	authorRepo "library-api/internal/domains/author/repository"
	authorService "library-api/internal/domains/author/service"

	bookHandler "library-api/internal/domains/book/handler"
	bookRepo "library-api/internal/domains/book/repository"
	bookService "library-api/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Lifecycle: singleton, built once at startup and torn down by Cleanup.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config  *config.Config
	Store   database.Store // Postgres or SQLite, chosen by db.driver
	Metrics *metrics.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	AuthorRepo author.Repository
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	AuthorService author.Service
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// New builds the container from an already loaded config.
//
// Thứ tự initialization:
// 1. Infrastructure (store, metrics)
// 2. Repositories - phụ thuộc store
// 3. Services - phụ thuộc repositories
// 4. Handlers - phụ thuộc services
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	if err := c.initRepositories(); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// ========================================
// INITIALIZATION STEPS
// ========================================

func (c *Container) initInfrastructure(ctx context.Context) error {
	var store database.Store

	switch c.Config.Database.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(c.Config.Database.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}
		store = db

	case config.DriverPostgres:
		// Connect retries with backoff; each attempt is bounded by db.connect_timeout.
		db := database.NewPostgresDB(c.Config.Database.PostgresConfig())
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		store = db

	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownDriver, c.Config.Database.Driver)
	}

	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	if c.Config.Database.AutoSchema {
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
		log.Info().Msg("Schema ensured")
	}

	c.Store = store
	c.Metrics = metrics.NewManager()
	return nil
}

func (c *Container) initRepositories() error {
	switch db := c.Store.(type) {
	case *database.PostgresDB:
		c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	case *database.SQLiteDB:
		c.AuthorRepo = authorRepo.NewSQLiteRepository(db.DB)
		c.BookRepo = bookRepo.NewSQLiteRepository(db.DB)
	default:
		return fmt.Errorf("unsupported store %T", c.Store)
	}
	return nil
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewService(c.BookRepo, c.AuthorRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.Store == nil {
		return
	}
	if err := c.Store.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close database")
		return
	}
	log.Info().Msg("Database connections closed")
}
