package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

// KeyedLimiter hands out one token bucket per key (typically the caller's
// address), created lazily with the default config.
type KeyedLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

func NewKeyedLimiter(config Config) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func (k *KeyedLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.RLock()
	limiter, exists := k.limiters[key]
	k.mu.RUnlock()

	if exists {
		return limiter
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if limiter, exists = k.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(k.defaults.RequestsPerSecond), k.defaults.BurstSize)
	k.limiters[key] = limiter
	return limiter
}

func (k *KeyedLimiter) Allow(key string) bool {
	return k.GetLimiter(key).Allow()
}
