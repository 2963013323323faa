package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 為會話儲存所需的最小 Redis 指令集
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

var _ Cache = (*redis.Client)(nil)

// FakeCache 測試用；未設定的指令被呼叫時 panic，Close 除外
type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	DelFn   func(ctx context.Context, keys ...string) *redis.IntCmd
	CloseFn func() error
}

func unexpected(cmd string, args ...any) {
	panic(fmt.Sprintf("cache: unexpected %s %v", cmd, args))
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn == nil {
		unexpected("GET", key)
	}
	return f.GetFn(ctx, key)
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.SetFn == nil {
		unexpected("SET", key, ttl)
	}
	return f.SetFn(ctx, key, value, ttl)
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn == nil {
		unexpected("DEL", keys)
	}
	return f.DelFn(ctx, keys...)
}

func (f *FakeCache) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
