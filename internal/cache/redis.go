package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient 是 *redis.Client 中 NewRedisClient 用到的部分
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var (
	redisNewClient = func(opt *redis.Options) redisClient {
		return redis.NewClient(opt)
	}
	pingTimeout = 5 * time.Second
)

// NewRedisClient 連線並 ping 確認可用；ping 失敗時關閉 client
func NewRedisClient(addr, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}
