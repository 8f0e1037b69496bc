package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func locks(t *testing.T) map[string]adapter.MutationLock {
	_, client := newRedis(t)
	return map[string]adapter.MutationLock{
		"local": NewLocalLock(),
		"redis": NewRedisLock(client, "ledger:test", time.Minute, time.Millisecond),
	}
}

func TestLock_SerialisesHolders(t *testing.T) {
	for name, l := range locks(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				holders int
				maxSeen int
			)
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					unlock, err := l.Lock(ctx)
					if !assert.NoError(t, err) {
						return
					}
					mu.Lock()
					holders++
					if holders > maxSeen {
						maxSeen = holders
					}
					mu.Unlock()

					time.Sleep(2 * time.Millisecond)

					mu.Lock()
					holders--
					mu.Unlock()
					unlock()
				}()
			}
			wg.Wait()
			assert.Equal(t, 1, maxSeen)
		})
	}
}

func TestLock_HonoursContext(t *testing.T) {
	for name, l := range locks(t) {
		t.Run(name, func(t *testing.T) {
			unlock, err := l.Lock(context.Background())
			require.NoError(t, err)
			defer unlock()

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			_, err = l.Lock(ctx)
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		})
	}
}

func TestRedisLock_ReleaseKeepsForeignToken(t *testing.T) {
	server, client := newRedis(t)
	l := NewRedisLock(client, "ledger:test", time.Minute, time.Millisecond)

	unlock, err := l.Lock(context.Background())
	require.NoError(t, err)

	// Simulate expiry followed by another holder taking the key.
	server.Set("ledger:test", "someone-else")
	unlock()

	got, err := server.Get("ledger:test")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLock_ExpiresAfterTTL(t *testing.T) {
	server, client := newRedis(t)
	l := NewRedisLock(client, "ledger:test", time.Second, time.Millisecond)

	_, err := l.Lock(context.Background())
	require.NoError(t, err)

	server.FastForward(2 * time.Second)

	unlock, err := l.Lock(context.Background())
	require.NoError(t, err)
	unlock()
	assert.False(t, server.Exists("ledger:test"))
}

func TestRedisLock_PingFollowsServer(t *testing.T) {
	server, client := newRedis(t)
	l := NewRedisLock(client, "ledger:test", time.Minute, time.Millisecond)
	pinger, ok := l.(interface{ Ping(context.Context) error })
	require.True(t, ok)

	require.NoError(t, pinger.Ping(context.Background()))

	server.Close()
	assert.Error(t, pinger.Ping(context.Background()))
}
