package bootstrap

import (
	"context"
	"fmt"
	"time"

	"stratigo-site/internal/config"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/repository/cache"
	"stratigo-site/internal/repository/implementation"
	"stratigo-site/internal/repository/memory"
	"stratigo-site/pkg/sanity"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to REDIS_URL. It returns nil when Redis is not
// configured or unreachable; callers run without the shared cache.
func NewRedisClient(url string, log logger.ILogger) *redis.Client {
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("BOOTSTRAP", "Redis unreachable, shared content cache disabled", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// NewContentRepository builds the CMS client and wraps it with the local and
// optional shared cache.
func NewContentRepository(cfg *config.Config, rdb *redis.Client, log logger.ILogger) (*cache.ContentRepository, error) {
	client, err := sanity.NewClient(sanity.Config{
		ProjectID:  cfg.CMS.ProjectID,
		Dataset:    cfg.CMS.Dataset,
		APIVersion: cfg.CMS.APIVersion,
		Token:      cfg.CMS.Token,
		UseCDN:     cfg.CMS.UseCDN,
	})
	if err != nil {
		return nil, fmt.Errorf("sanity client: %w", err)
	}

	var shared cache.L2
	if rdb != nil {
		shared = cache.NewRedisStore(rdb, cfg.Cache.TTL)
	}

	return cache.NewContentRepository(
		implementation.NewContentRepository(client, log),
		memory.NewContentCache(cfg.Cache.TTL),
		shared,
		log,
	), nil
}
