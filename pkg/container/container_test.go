package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alexandria-backend/internal/config"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "test", Environment: "development", Port: "0"},
		Storage: config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
		Cache:   config.CacheConfig{TTL: time.Minute},
	}
}

func TestBuild_SQLite(t *testing.T) {
	ctx := context.Background()

	c, err := Build(ctx, sqliteConfig())
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	assert.NotNil(t, c.SQLite)
	assert.Nil(t, c.DB)
	assert.Nil(t, c.Cache)
	assert.NotNil(t, c.PublisherHandler)
	assert.NotNil(t, c.BookHandler)

	status, healthy := c.HealthCheck(ctx)
	assert.True(t, healthy)
	assert.Equal(t, map[string]string{"storage": "ok"}, status)
}

func TestBuild_UnreachableCacheIsSkipped(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Cache.Enabled = true
	cfg.Redis.Host = "127.0.0.1:1"

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	assert.Nil(t, c.Cache)
}

func TestBuild_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Storage.Driver = "mysql"

	_, err := Build(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported storage driver")
}

func TestHealthCheck_NoStorage(t *testing.T) {
	status, healthy := (&Container{}).HealthCheck(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "storage not initialized", status["storage"])
}
