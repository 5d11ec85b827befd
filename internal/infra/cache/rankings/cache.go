package rankings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// DefaultKey ключ, под которым хранится снимок рейтинга
const DefaultKey = "realty:rankings:snapshot"

// Cache кэш вычисленного рейтинга агентов в Redis
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
	key    string
}

// NewCache создает новый экземпляр кэша
// ttl = 0 означает хранение без срока истечения
func NewCache(client redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		key:    DefaultKey,
	}
}

// WithKey возвращает копию кэша с другим ключом
func (c *Cache) WithKey(key string) *Cache {
	cp := *c
	cp.key = key
	return &cp
}

// Get возвращает сохраненный снимок рейтинга
func (c *Cache) Get(ctx context.Context) (*domain.Rankings, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrRedis, c.key, err)
	}

	var snapshot domain.Rankings
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrDecode, c.key, err)
	}

	return &snapshot, nil
}

// Set сохраняет снимок рейтинга на время ttl
func (c *Cache) Set(ctx context.Context, rankings *domain.Rankings) error {
	raw, err := json.Marshal(rankings)
	if err != nil {
		return fmt.Errorf("%w: Set: %v", ErrEncode, err)
	}

	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrRedis, c.key, err)
	}

	return nil
}

// Invalidate удаляет снимок рейтинга
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - key=%s: %v", ErrRedis, c.key, err)
	}
	return nil
}
