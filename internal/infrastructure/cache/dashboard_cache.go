package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Despensa-api/internal/application/dashboard"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/pkg/config"
)

const (
	viewsKeyPrefix  = "dashboard:views:"
	defaultViewsTTL = time.Minute
)

var _ dashboard.ViewsCache = (*redisViewsCache)(nil)
var _ dashboard.ViewsCache = (*noopViewsCache)(nil)

type redisViewsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopViewsCache struct{}

// NewViewsCache construye el caché de vistas del dashboard sobre Redis.
// Con el caché deshabilitado devuelve una implementación noop: el dashboard
// funciona igual, solo que recomputa en cada petición.
func NewViewsCache(cfg config.CacheConfig) (dashboard.ViewsCache, error) {
	if !cfg.Enabled {
		return &noopViewsCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := time.Duration(cfg.DashboardTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultViewsTTL
	}
	return &redisViewsCache{client: client, ttl: ttl}, nil
}

// NewNoopViewsCache devuelve un caché que nunca acierta.
func NewNoopViewsCache() dashboard.ViewsCache {
	return &noopViewsCache{}
}

func (c *redisViewsCache) Get(ctx context.Context, key string) (*dto.DashboardViewsDTO, bool, error) {
	payload, err := c.client.Get(ctx, viewsKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var views dto.DashboardViewsDTO
	if err := json.Unmarshal(payload, &views); err != nil {
		return nil, false, fmt.Errorf("decode dashboard views cache: %w", err)
	}
	return &views, true, nil
}

func (c *redisViewsCache) Set(ctx context.Context, key string, views *dto.DashboardViewsDTO) error {
	payload, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("encode dashboard views cache: %w", err)
	}
	if err := c.client.Set(ctx, viewsKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (n *noopViewsCache) Get(ctx context.Context, key string) (*dto.DashboardViewsDTO, bool, error) {
	return nil, false, nil
}

func (n *noopViewsCache) Set(ctx context.Context, key string, views *dto.DashboardViewsDTO) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis url inválida: %w", err)
		}
		return opt, nil
	}
	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}
	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}
