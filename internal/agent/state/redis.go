package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	errx "github.com/IbalArrasyid/E-Commerce-Agent/internal/core/error"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

// RedisRepository persists conversation state as one JSON document per
// thread. The TTL is refreshed on every save so active conversations stay
// alive and idle ones expire.
type RedisRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisRepository(rdb redis.Cmdable, ttl time.Duration) *RedisRepository {
	return &RedisRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisRepository) stateKey(threadID string) string {
	return fmt.Sprintf("conversation:%s:state", threadID)
}

func (r *RedisRepository) Load(ctx context.Context, threadID string) (*model.ConversationState, error) {
	key := r.stateKey(threadID)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load conversation state from redis")
		return nil, errx.WrapRedis(err)
	}

	var s model.ConversationState
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		logx.Error().Err(err).Str("thread_id", threadID).Msg("failed to unmarshal conversation state")
		return nil, fmt.Errorf("unmarshal conversation state: %w", err)
	}
	return &s, nil
}

func (r *RedisRepository) Save(ctx context.Context, s *model.ConversationState) error {
	b, err := json.Marshal(s)
	if err != nil {
		logx.Error().Err(err).Str("thread_id", s.ThreadID).Msg("failed to marshal conversation state")
		return fmt.Errorf("marshal conversation state: %w", err)
	}

	key := r.stateKey(s.ThreadID)
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save conversation state to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, threadID string) error {
	key := r.stateKey(threadID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete conversation state from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.StateRepository = (*RedisRepository)(nil)
