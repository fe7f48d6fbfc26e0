// File: database/repository/room/cache.go
package roomRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"blueriver/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "rooms:"

const allRoomsKey = cacheKeyPrefix + "all"

func roomKey(id string) string {
	return fmt.Sprintf("%sid:%s", cacheKeyPrefix, id)
}

// Cache is the subset of the redis client used by CachedRoomRepo.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedRoomRepo is a read-through redis cache in front of another RoomRepository.
// Cache failures never fail a read; they fall through to the wrapped repository.
type CachedRoomRepo struct {
	next   RoomRepository
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRoomRepo(next RoomRepository, cache Cache, ttl time.Duration, logger *zap.Logger) RoomRepository {
	return &CachedRoomRepo{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if r.load(ctx, allRoomsKey, &rooms) {
		return rooms, nil
	}

	rooms, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, allRoomsKey, rooms)
	return rooms, nil
}

func (r *CachedRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if r.load(ctx, roomKey(id), &room) {
		return &room, nil
	}

	found, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, roomKey(id), found)
	return found, nil
}

func (r *CachedRoomRepo) load(ctx context.Context, key string, dst interface{}) bool {
	val, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("room cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		r.logger.Warn("room cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *CachedRoomRepo) store(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("room cache write failed", zap.String("key", key), zap.Error(err))
	}
}
