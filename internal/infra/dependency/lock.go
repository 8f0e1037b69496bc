package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/integration/lock"
)

// NewMutationLock builds the lock selected by cfg.Lock.Backend. The returned close
// function releases the Redis client, if any.
func NewMutationLock(cfg *config.Config) (adapter.MutationLock, func() error, error) {
	switch cfg.Lock.Backend {
	case "", "local":
		slog.Info("Using in-process mutation lock")
		return lock.NewLocalLock(), func() error { return nil }, nil
	case "redis":
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		if cfg.Redis.DB != 0 {
			opts.DB = cfg.Redis.DB
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
		}

		slog.Info("Using redis mutation lock", "key", cfg.Lock.Key, "ttl", cfg.Lock.TTL)
		return lock.NewRedisLock(client, cfg.Lock.Key, cfg.Lock.TTL, cfg.Lock.Retry), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported lock backend %q", cfg.Lock.Backend)
	}
}
