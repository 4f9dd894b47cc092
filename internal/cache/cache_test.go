package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"integraservicios/internal/config"
)

func TestNilClientIsAlwaysMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	c.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute)
	c.Delete(ctx, "k")

	assert.Nil(t, c.Get(ctx, "k"))
	var dst map[string]int
	assert.False(t, c.GetJSON(ctx, "k", &dst))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	c := New(config.Redis{Addr: "127.0.0.1:1"}, zap.NewNop())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	assert.Nil(t, c.Get(ctx, "k"))
	c.Delete(ctx, "k")
}
