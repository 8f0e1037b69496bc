package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLock serialises mutations across processes with SET NX PX.
type redisLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	retry  time.Duration
}

// NewRedisLock creates a mutation lock stored under key. The ttl bounds how long a
// crashed holder can block others; retry is the polling interval while waiting.
func NewRedisLock(client *redis.Client, key string, ttl, retry time.Duration) adapter.MutationLock {
	if retry <= 0 {
		retry = 25 * time.Millisecond
	}
	return &redisLock{
		client: client,
		key:    key,
		ttl:    ttl,
		retry:  retry,
	}
}

// Lock blocks until the lock is held or ctx is done.
func (l *redisLock) Lock(ctx context.Context) (func(), error) {
	token := uuid.NewString()
	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire mutation lock: %w", err)
		}
		if ok {
			return func() { l.release(token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *redisLock) release(token string) {
	// The caller's context may already be cancelled; the release must still run.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.Error("Failed to release mutation lock", "key", l.key, "error", err)
	}
}

// Ping reports whether the Redis server holding the lock answers.
func (l *redisLock) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}
