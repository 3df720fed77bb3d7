package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBlacklistRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewBlacklistRepository(db, nil)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Add(ctx, "token-1"))
	require.NoError(t, repo.Add(ctx, "token-1"))

	exists, err = repo.Exists(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "token-2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlacklistCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewBlacklistCacheRepository(rdb, 2*time.Second)

	t.Run("Miss", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "unknown")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, repo.SetRevoked(ctx, "token-1"))

		revoked, err := repo.IsRevoked(ctx, "token-1")
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Expires", func(t *testing.T) {
		require.NoError(t, repo.SetRevoked(ctx, "token-2"))

		time.Sleep(3 * time.Second)

		revoked, err := repo.IsRevoked(ctx, "token-2")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestBlacklistKey(t *testing.T) {
	key := blacklistKey("abc")
	assert.Equal(t, "jwt_blacklist:ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", key)
	assert.NotEqual(t, key, blacklistKey("abd"))
}

func TestBlacklistCacheRepository_LogsStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = prev }()

	// Nothing listens on port 1, every command fails fast
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	repo := NewBlacklistCacheRepository(rdb, time.Second)
	ctx := context.Background()

	_, err := repo.IsRevoked(ctx, "token-1")
	assert.Error(t, err)
	assert.Error(t, repo.SetRevoked(ctx, "token-1"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "blacklist cache get", entries[0].Message)
	assert.Equal(t, "blacklist cache set", entries[1].Message)
	for _, e := range entries {
		fields := e.ContextMap()
		assert.Equal(t, blacklistKey("token-1"), fields["key"])
		assert.Contains(t, fields, "error")
	}
	assert.Zero(t, logs.FilterMessage("Ignored key without a value.").Len())
}
