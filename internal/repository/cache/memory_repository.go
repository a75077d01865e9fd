package cache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain/repository"
)

// memoryRepository - кеш в памяти процесса
type memoryRepository struct {
	store  *gocache.Cache
	logger *zap.Logger
}

// NewMemoryCacheRepository создает кеш в памяти; cleanupInterval - период удаления просроченных записей
func NewMemoryCacheRepository(defaultTTL, cleanupInterval time.Duration, logger *zap.Logger) repository.CacheRepository {
	return &memoryRepository{
		store:  gocache.New(defaultTTL, cleanupInterval),
		logger: logger,
	}
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	val, ok := r.store.Get(key)
	if !ok {
		return nil, nil
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	data := val.([]byte)
	return append([]byte(nil), data...), nil
}

func (r *memoryRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	r.store.Set(key, append([]byte(nil), value...), ttl)
	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, key string) error {
	r.store.Delete(key)
	return nil
}

func (r *memoryRepository) DeleteByPrefix(_ context.Context, prefix string) error {
	deleted := 0
	for key := range r.store.Items() {
		if strings.HasPrefix(key, prefix) {
			r.store.Delete(key)
			deleted++
		}
	}

	r.logger.Debug("Cache invalidated", zap.String("prefix", prefix), zap.Int("keys", deleted))
	return nil
}
