package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisCache_Options(t *testing.T) {
	c := NewRedisCache("cache.internal:6380", "secret", 2)
	defer c.Close()

	opts := c.Client.Options()
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 10, opts.PoolSize)
}

func TestRedisCache_DeleteNoKeys(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", "", 0)
	defer c.Close()

	require.NoError(t, c.Delete(context.Background()))
}

func TestRedisCache_SetRejectsUnencodableValue(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", "", 0)
	defer c.Close()

	err := c.Set(context.Background(), "k", make(chan int), 0)
	assert.ErrorContains(t, err, "redis encode k")
}
