package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	keyPrefix     = "availability:config:"
	versionPrefix = "availability:version:"
)

// Cache кэш конфигурации доступности бизнеса в Redis.
//
// Запись хранится под ключом текущей версии бизнеса. Invalidate увеличивает версию,
// поэтому Set с версией, прочитанной до изменения расписания, пишет в ключ,
// который уже никто не читает. Старые ключи истекают по TTL.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш с указанным временем жизни записей
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key возвращает ключ Redis для конфигурации бизнеса заданной версии
func Key(businessID string, version int64) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, businessID, version)
}

// VersionKey возвращает ключ Redis со счетчиком версий бизнеса
func VersionKey(businessID string) string {
	return versionPrefix + businessID
}

// Version возвращает текущую версию конфигурации бизнеса (0, если изменений не было)
func (c *Cache) Version(ctx context.Context, businessID string) (int64, error) {
	version, err := c.client.Get(ctx, VersionKey(businessID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Version - %v", ErrCacheOperation, err)
	}
	return version, nil
}

// Get получает конфигурацию указанной версии из кэша
func (c *Cache) Get(ctx context.Context, businessID string, version int64) (*domain.BusinessAvailabilityConfig, error) {
	data, err := c.client.Get(ctx, Key(businessID, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCacheOperation, err)
	}

	var cfg domain.BusinessAvailabilityConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrDecode, err)
	}

	return &cfg, nil
}

// Set сохраняет конфигурацию под указанной версией
func (c *Cache) Set(ctx context.Context, businessID string, version int64, cfg *domain.BusinessAvailabilityConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCacheOperation, err)
	}

	if err := c.client.Set(ctx, Key(businessID, version), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCacheOperation, err)
	}

	return nil
}

// Invalidate переводит бизнес на новую версию конфигурации.
// Записи прежних версий больше не читаются.
func (c *Cache) Invalidate(ctx context.Context, businessID string) error {
	if err := c.client.Incr(ctx, VersionKey(businessID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - %v", ErrCacheOperation, err)
	}
	return nil
}
