package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCatalogCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
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

	repo := NewCatalogCacheRepository(rdb, 2*time.Second)

	t.Run("set and get", func(t *testing.T) {
		books := []models.CatalogBook{
			{VolumeID: "zyTCAlFPjgYC", Title: "The Google Story", Authors: []string{"David A. Vise"}},
		}
		require.NoError(t, repo.Set(ctx, "search:google", books))

		var got []models.CatalogBook
		ok, err := repo.Get(ctx, "search:google", &got)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, books, got)

		raw, err := rdb.Get(ctx, "catalog:search:google").Result()
		require.NoError(t, err)
		assert.Contains(t, raw, `"volume_id":"zyTCAlFPjgYC"`)
	})

	t.Run("miss", func(t *testing.T) {
		var got models.CatalogBook
		ok, err := repo.Get(ctx, "details:unknown", &got)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("undecodable value", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "catalog:broken", "not json", time.Minute).Err())

		var got models.CatalogBook
		ok, err := repo.Get(ctx, "broken", &got)
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "details:short", models.CatalogBook{VolumeID: "short"}))

		time.Sleep(3 * time.Second)

		var got models.CatalogBook
		ok, err := repo.Get(ctx, "details:short", &got)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
