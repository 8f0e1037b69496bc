package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client for a process-wide miniredis server. It backs the
// distributed mutation lock in feature tests.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis drops every key, including a lock a failed scenario left behind.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
