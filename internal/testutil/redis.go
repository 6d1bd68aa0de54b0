package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
)

const redisImage = "redis:8-alpine"

// SetupRedisContainer returns a client for a fresh redis. The returned func
// closes the client and removes the container.
func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	container := runOrSkip(t, "redis", func() (*redismodule.RedisContainer, error) {
		return redismodule.Run(ctx, redisImage)
	})

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		terminate(ctx, t, "redis", container)
		t.Skipf("failed to get redis connection string: %v", err)
	}

	opts, err := redis.ParseURL(uri)
	if err != nil {
		terminate(ctx, t, "redis", container)
		t.Fatalf("invalid redis connection string %q: %v", uri, err)
	}
	client := redis.NewClient(opts)

	return client, func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}
		terminate(ctx, t, "redis", container)
	}
}
