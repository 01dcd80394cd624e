package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerTTL = 120
	startTimeout = 120 * time.Second

	redisImage   = "redis"
	redisTag     = "alpine"
	redisExposed = "6379/tcp"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// NewLogger returns a logger that discards everything, for tests that need
// no redis.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// New starts a throwaway redis container with an empty database. The test
// is skipped when docker is not reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	container := startRedis(t, pool)
	client := connectRedis(ctx, t, pool, container)

	t.Cleanup(func() {
		_ = client.Close()

		if err := pool.Purge(container); err != nil {
			t.Errorf("could not remove redis container: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Logger:  NewLogger(),
		Storage: client,
	}
}

func startRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	container, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(host *docker.HostConfig) {
		host.AutoRemove = true
		host.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	// docker kills the container after the ttl even if cleanup never runs
	_ = container.Expire(containerTTL)

	return container
}

func connectRedis(ctx context.Context, t *testing.T, pool *dockertest.Pool, container *dockertest.Resource) *redis.Client {
	t.Helper()

	addr := container.GetHostPort(redisExposed)
	pool.MaxWait = startTimeout

	var client *redis.Client
	err := pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: addr})
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = pool.Purge(container)
		t.Fatalf("redis at %s never became ready: %v", addr, err)
	}

	if err = client.FlushDB(ctx).Err(); err != nil {
		_ = pool.Purge(container)
		t.Fatalf("could not flush redis: %v", err)
	}

	return client
}
