package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AnshRaj112/mealtracker-backend/internal/models"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data
	CacheKeyPrefix  = "cache:"
	DefaultCacheTTL = 8 * time.Hour
	MinCacheTTL     = 6 * time.Hour
	MaxCacheTTL     = 12 * time.Hour
)

// CacheService stores JSON values in Redis.
type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{client: client}
}

// Get decodes the cached value into dest. A miss returns false with no error.
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.client.Get(ctx, CacheKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a value with DefaultCacheTTL.
func (c *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return c.SetWithTTL(ctx, key, value, DefaultCacheTTL)
}

// SetWithTTL stores a value with ttl clamped to [MinCacheTTL, MaxCacheTTL].
func (c *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, CacheKeyPrefix+key, data, clampTTL(ttl)).Err()
}

func clampTTL(ttl time.Duration) time.Duration {
	if ttl < MinCacheTTL {
		return MinCacheTTL
	}
	if ttl > MaxCacheTTL {
		return MaxCacheTTL
	}
	return ttl
}

// CacheKey generates a cache key for a specific resource
func CacheKey(resource string, identifier string) string {
	return fmt.Sprintf("%s:%s", resource, identifier)
}

// CachedUserRepository serves FindByID, the lookup behind every
// authenticated request, from Redis. Users are immutable after signup so
// entries are never invalidated. Cache failures fall through to the store.
type CachedUserRepository struct {
	UserRepository
	cache *CacheService
	log   zerolog.Logger
}

func NewCachedUserRepository(users UserRepository, cache *CacheService, log zerolog.Logger) *CachedUserRepository {
	return &CachedUserRepository{UserRepository: users, cache: cache, log: log}
}

func (r *CachedUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	key := CacheKey("user", id.Hex())

	var cached models.User
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.log.Debug().Err(err).Str("key", key).Msg("user cache read failed")
	}
	if hit {
		return &cached, nil
	}

	user, err := r.UserRepository.FindByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}
	if err := r.cache.Set(ctx, key, user.Snapshot()); err != nil {
		r.log.Debug().Err(err).Str("key", key).Msg("user cache write failed")
	}
	return user, nil
}
