package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	var _ Cache = c
	require.PanicsWithValue(t, "unexpected Get", func() { c.Get(context.Background(), "k") })
	require.PanicsWithValue(t, "unexpected Set", func() { c.Set(context.Background(), "k", 1, 0) })
	require.NoError(t, c.Close())

	store := map[string]string{}
	c.SetFn = func(_ context.Context, key string, val any, _ time.Duration) *redis.StatusCmd {
		store[key] = val.(string)
		return redis.NewStatusResult("OK", nil)
	}
	c.GetFn = func(_ context.Context, key string) *redis.StringCmd {
		v, ok := store[key]
		if !ok {
			return redis.NewStringResult("", redis.Nil)
		}
		return redis.NewStringResult(v, nil)
	}
	c.CloseFn = func() error { return errors.New("close") }

	require.ErrorIs(t, c.Get(context.Background(), "health").Err(), redis.Nil)
	require.Equal(t, "OK", c.Set(context.Background(), "health", "ok", time.Second).Val())
	require.Equal(t, "ok", c.Get(context.Background(), "health").Val())
	require.EqualError(t, c.Close(), "close")
}
