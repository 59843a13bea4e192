package auth

import (
	"time"

	"github.com/allegro/bigcache/v3"
)

type (
	// LoginThrottle counts failed logins per client address. Counters
	// live in an eviction based cache, a quiet client is forgotten once
	// the window passes.
	LoginThrottle struct {
		cache *bigcache.BigCache
		max   int
	}
)

func NewLoginThrottle(maxFailures int, window time.Duration) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = 10
	}
	if window <= 0 {
		window = 10 * time.Minute
	}
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(window))
	return &LoginThrottle{
		cache: cache,
		max:   maxFailures,
	}
}

func (t *LoginThrottle) Blocked(addr string) bool {
	buf, err := t.cache.Get(addr)
	if err != nil {
		return false
	}
	return len(buf) > 0 && int(buf[0]) >= t.max
}

func (t *LoginThrottle) RecordFailure(addr string) {
	var count byte
	buf, err := t.cache.Get(addr)
	if err == nil && len(buf) > 0 {
		count = buf[0]
	}
	if count < 255 {
		count++
	}
	t.cache.Set(addr, []byte{count})
}

func (t *LoginThrottle) Reset(addr string) {
	t.cache.Delete(addr)
}
