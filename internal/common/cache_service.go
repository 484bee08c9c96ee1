package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService is the in-process cache used when no Redis host is configured.
type CacheService struct {
	cache *cache.Cache
}

var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *CacheService) Set(key, payload string, ttl time.Duration) {
	cs.cache.Set(key, payload, ttl)
}

func (cs *CacheService) Get(key string) (string, bool) {
	v, found := cs.cache.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (cs *CacheService) Delete(keys ...string) {
	for _, k := range keys {
		cs.cache.Delete(k)
	}
}

func (cs *CacheService) Close() error {
	return nil
}
