package common

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stats struct {
	Youth     int64            `json:"youth"`
	Districts map[string]int64 `json:"districts"`
}

func newRedisCache(t *testing.T) (*RedisCacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	svc, err := NewRedisCacheService(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc, mr
}

func TestCachedJSON_Backends(t *testing.T) {
	redisCache, _ := newRedisCache(t)
	backends := map[string]CacheInterface{
		"memory": NewCacheService(time.Minute, time.Minute),
		"redis":  redisCache,
	}

	for name, c := range backends {
		t.Run(name, func(t *testing.T) {
			calls := 0
			load := func() (*stats, error) {
				calls++
				return &stats{Youth: 12, Districts: map[string]int64{"Kasese": 3}}, nil
			}

			first, hit, err := CachedJSON(c, "DASHBOARD_stats", time.Minute, load)
			require.NoError(t, err)
			assert.False(t, hit)

			second, hit, err := CachedJSON(c, "DASHBOARD_stats", time.Minute, load)
			require.NoError(t, err)
			assert.True(t, hit)
			assert.Equal(t, first, second)
			assert.Equal(t, 1, calls)

			c.Delete("DASHBOARD_stats")
			_, hit, err = CachedJSON(c, "DASHBOARD_stats", time.Minute, load)
			require.NoError(t, err)
			assert.False(t, hit)
			assert.Equal(t, 2, calls)
		})
	}
}

func TestCachedJSON_LoaderErrorNotCached(t *testing.T) {
	c := NewCacheService(time.Minute, time.Minute)
	boom := errors.New("boom")

	_, _, err := CachedJSON(c, "k", time.Minute, func() ([]string, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	_, found := c.Get("k")
	assert.False(t, found)
}

func TestCachedJSON_NilCache(t *testing.T) {
	got, hit, err := CachedJSON[[]string](nil, "k", time.Minute, func() ([]string, error) {
		return []string{"youth:read"}, nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"youth:read"}, got)
}

func TestRedisCache_Expiry(t *testing.T) {
	c, mr := newRedisCache(t)

	c.Set("PERMS_mentor", "payload", time.Second)
	v, found := c.Get("PERMS_mentor")
	require.True(t, found)
	assert.Equal(t, "payload", v)

	mr.FastForward(2 * time.Second)
	_, found = c.Get("PERMS_mentor")
	assert.False(t, found)
}

func TestNewRedisCacheService_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisCacheService(redis.NewClient(&redis.Options{Addr: addr}))
	assert.Error(t, err)
}

func TestCache_DeleteMany(t *testing.T) {
	redisCache, _ := newRedisCache(t)
	backends := map[string]CacheInterface{
		"memory": NewCacheService(time.Minute, time.Minute),
		"redis":  redisCache,
	}

	for name, c := range backends {
		t.Run(name, func(t *testing.T) {
			c.Set("PERMS_admin", `["roles:update"]`, time.Minute)
			c.Set("PERMS_user", `["businesses:read"]`, time.Minute)
			c.Set("DASHBOARD_stats", `{}`, time.Minute)

			c.Delete("PERMS_admin", "PERMS_user")
			c.Delete()

			_, found := c.Get("PERMS_admin")
			assert.False(t, found)
			_, found = c.Get("PERMS_user")
			assert.False(t, found)

			v, found := c.Get("DASHBOARD_stats")
			require.True(t, found)
			assert.Equal(t, "{}", v)
		})
	}
}
