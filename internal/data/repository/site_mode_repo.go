package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"secure-it/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const SiteModeKey = "secure_it_site_mode"

type SiteModeRepository interface {
	Get(ctx context.Context) (entity.SiteMode, error)
	Set(ctx context.Context, mode entity.SiteMode) error
}

type redisSiteModeRepository struct {
	rdb      *redis.Client
	fallback entity.SiteMode
	log      *zap.Logger
}

// NewRedisSiteModeRepository shares the mode across every instance behind the
// load balancer. fallback is returned until someone sets a mode.
func NewRedisSiteModeRepository(rdb *redis.Client, fallback entity.SiteMode, log *zap.Logger) SiteModeRepository {
	return &redisSiteModeRepository{
		rdb:      rdb,
		fallback: fallback,
		log:      log.With(zap.String("repository", "site_mode")),
	}
}

func (r *redisSiteModeRepository) Get(ctx context.Context) (entity.SiteMode, error) {
	val, err := r.rdb.Get(ctx, SiteModeKey).Result()
	if errors.Is(err, redis.Nil) {
		return r.fallback, nil
	}
	if err != nil {
		r.log.Error("Failed to read site mode", zap.Error(err))
		return "", fmt.Errorf("get site mode: %w", err)
	}

	return entity.ParseSiteMode(val), nil
}

func (r *redisSiteModeRepository) Set(ctx context.Context, mode entity.SiteMode) error {
	if err := r.rdb.Set(ctx, SiteModeKey, string(mode), 0).Err(); err != nil {
		r.log.Error("Failed to store site mode", zap.Error(err), zap.String("mode", string(mode)))
		return fmt.Errorf("set site mode %s: %w", mode, err)
	}
	return nil
}

type memorySiteModeRepository struct {
	mu   sync.RWMutex
	mode entity.SiteMode
}

// NewMemorySiteModeRepository keeps the mode in process memory. Used when
// Redis is not configured.
func NewMemorySiteModeRepository(initial entity.SiteMode) SiteModeRepository {
	return &memorySiteModeRepository{mode: entity.ParseSiteMode(string(initial))}
}

func (r *memorySiteModeRepository) Get(_ context.Context) (entity.SiteMode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mode, nil
}

func (r *memorySiteModeRepository) Set(_ context.Context, mode entity.SiteMode) error {
	r.mu.Lock()
	r.mode = mode
	r.mu.Unlock()
	return nil
}
