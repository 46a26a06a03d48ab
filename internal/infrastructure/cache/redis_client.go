package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const maxConnectWait = 30 * time.Second

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// ConnectRedis opens a client and pings it with exponential backoff until the
// server answers or ctx/maxConnectWait runs out.
func ConnectRedis(ctx context.Context, opts RedisOptions, logger *zap.Logger) (*redis.Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxConnectWait

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return client.Ping(pingCtx).Err()
	}
	notify := func(err error, next time.Duration) {
		logger.Warn("[cache][redis] ping failed, retrying",
			zap.String("addr", opts.Addr), zap.Duration("next", next), zap.Error(err))
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}
	logger.Info("[cache][redis] connected", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return client, nil
}
