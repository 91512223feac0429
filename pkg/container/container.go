package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"newsroom-backend/internal/config"
	infracache "newsroom-backend/internal/infrastructure/cache"
	"newsroom-backend/internal/infrastructure/database"
	"newsroom-backend/pkg/cache"

	"newsroom-backend/internal/domains/article"
	articleHandler "newsroom-backend/internal/domains/article/handler"
	articleRepo "newsroom-backend/internal/domains/article/repository"
	articleService "newsroom-backend/internal/domains/article/service"

	"newsroom-backend/internal/domains/author"
	authorHandler "newsroom-backend/internal/domains/author/handler"
	authorRepo "newsroom-backend/internal/domains/author/repository"
	authorService "newsroom-backend/internal/domains/author/service"

	"newsroom-backend/internal/domains/region"
	regionHandler "newsroom-backend/internal/domains/region/handler"
	regionRepo "newsroom-backend/internal/domains/region/repository"
	regionService "newsroom-backend/internal/domains/region/service"
)

// Container holds the full dependency graph, initialized in order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo  author.Repository
	ArticleRepo article.Repository
	RegionRepo  region.Repository

	AuthorService  author.Service
	ArticleService article.Service
	RegionService  region.Service

	AuthorHandler  *authorHandler.AuthorHandler
	ArticleHandler *articleHandler.ArticleHandler
	RegionHandler  *regionHandler.RegionHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is non-critical: repositories fall back to
	// uncached reads.
	if rc, ok := redisCache.(*infracache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis connection failed, running without cache hits")
		}
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.RegionRepo = regionRepo.NewPostgresRepository(pool, c.Cache)
	c.ArticleRepo = articleRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.RegionService = regionService.NewRegionService(c.RegionRepo)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.AuthorRepo, c.RegionRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.RegionHandler = regionHandler.NewRegionHandler(c.RegionService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infracache.RedisCache); ok {
		_ = rc.Close()
	}
}
