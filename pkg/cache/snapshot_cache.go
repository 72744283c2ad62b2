package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"venture-advisory-be/internal/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SnapshotCache keeps serialized knowledge snapshots in Redis so profile
// views don't hammer the entity store. Misses and Redis failures are both
// reported as (nil, false): the caller falls back to the store either way.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &SnapshotCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func snapshotKey(ventureId uuid.UUID) string {
	return fmt.Sprintf("kg:snapshot:%s", ventureId)
}

func (c *SnapshotCache) Get(ctx context.Context, ventureId uuid.UUID) ([]*entity.KnowledgeEntity, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, snapshotKey(ventureId)).Bytes()
	if err != nil {
		// A broken cache and a plain miss both degrade to a store read.
		return nil, false
	}
	var entities []*entity.KnowledgeEntity
	if err := json.Unmarshal(raw, &entities); err != nil {
		return nil, false
	}
	return entities, true
}

func (c *SnapshotCache) Set(ctx context.Context, ventureId uuid.UUID, entities []*entity.KnowledgeEntity) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(entities)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, snapshotKey(ventureId), raw, c.ttl)
}

func (c *SnapshotCache) Invalidate(ctx context.Context, ventureId uuid.UUID) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, snapshotKey(ventureId))
}
