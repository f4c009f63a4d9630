package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis Redis 缓存
type Redis struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedis 建立 Redis 连接并验证连通性
func NewRedis(addr string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // no password
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("Redis连接失败: %v", err)
	}

	return &Redis{rdb: rdb, ctx: ctx}, nil
}

func (r *Redis) Get(key string, dest any) error {
	data, err := r.rdb.Get(r.ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (r *Redis) Set(key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.rdb.Set(r.ctx, key, data, expiration).Err()
}

// Close 关闭 Redis 连接
func (r *Redis) Close() error {
	return r.rdb.Close()
}
