package repository

import (
	"context"
	"encoding/json"
	"time"

	"fundsim/internal/simulate"

	"github.com/redis/go-redis/v9"
)

const resultKeyPrefix = "fundsim:result:"

// RedisStore keeps JSON-serialized results in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

func (r *RedisStore) Save(id string, res *simulate.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, resultKeyPrefix+id, raw, r.ttl).Err()
}

func (r *RedisStore) Get(id string) (*simulate.Result, bool) {
	raw, err := r.client.Get(r.ctx, resultKeyPrefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var res simulate.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// Ping verifies connectivity; used at startup to fall back to the in-memory
// store when Redis is unreachable.
func (r *RedisStore) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
