package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/config"
	infraCache "bookstore-catalog/internal/infrastructure/cache"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/internal/infrastructure/queue"
	"bookstore-catalog/pkg/cache"
	"bookstore-catalog/pkg/jwt"

	"bookstore-catalog/internal/domains/auth"
	authHandler "bookstore-catalog/internal/domains/auth/handler"
	authService "bookstore-catalog/internal/domains/auth/service"
	"bookstore-catalog/internal/domains/author"
	authorHandler "bookstore-catalog/internal/domains/author/handler"
	authorRepo "bookstore-catalog/internal/domains/author/repository"
	authorService "bookstore-catalog/internal/domains/author/service"
	"bookstore-catalog/internal/domains/book"
	bookHandler "bookstore-catalog/internal/domains/book/handler"
	bookRepo "bookstore-catalog/internal/domains/book/repository"
	bookService "bookstore-catalog/internal/domains/book/service"
	"bookstore-catalog/internal/domains/genre"
	genreHandler "bookstore-catalog/internal/domains/genre/handler"
	genreRepo "bookstore-catalog/internal/domains/genre/repository"
	genreService "bookstore-catalog/internal/domains/genre/service"
	"bookstore-catalog/internal/domains/user"
	userHandler "bookstore-catalog/internal/domains/user/handler"
	userRepo "bookstore-catalog/internal/domains/user/repository"
	userService "bookstore-catalog/internal/domains/user/service"
)

// Container is the root of the dependency graph. Infrastructure,
// repositories, services and handlers are all process-wide singletons
// built once at startup and shared by every request.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	AuthorRepo author.Repository
	GenreRepo  genre.Repository
	BookRepo   book.Repository
	UserRepo   user.Repository

	AuthorService author.Service
	GenreService  genre.Service
	BookService   book.Service
	UserService   user.Service
	AuthService   auth.Service

	AuthorHandler *authorHandler.AuthorHandler
	GenreHandler  *genreHandler.GenreHandler
	BookHandler   *bookHandler.BookHandler
	UserHandler   *userHandler.UserHandler
	AuthHandler   *authHandler.AuthHandler
}

// NewContainer builds the whole dependency graph in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		// A cold cache degrades reads but does not break the service.
		log.Warn().Err(err).Msg("Redis connection failed (non-critical)")
	}
	c.Cache = redisCache

	c.AsynqClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("env", cfg.App.Environment).Msg("Container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.Cache)
	c.BookService = bookService.NewBookService(
		c.BookRepo,
		c.AuthorRepo,
		c.GenreRepo,
		c.Cache,
		c.AsynqClient,
	)
	c.UserService = userService.NewUserService(c.UserRepo)
	c.AuthService = authService.NewAuthService(c.UserService, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close asynq client")
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close Redis")
			}
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("Container cleanup completed")
}
