package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const inflightPrefix = "inflight:"

// InflightGuard rejects overlapping invocations of the same logical
// operation. Acquire returns false when the key is already held.
type InflightGuard interface {
	Acquire(key string, ttl time.Duration) (bool, error)
	Release(key string) error
}

// RedisInflightGuard implements InflightGuard with SETNX. The TTL bounds
// how long a crashed holder can block the operation.
type RedisInflightGuard struct {
	Client *redis.Client
}

func (g *RedisInflightGuard) Acquire(key string, ttl time.Duration) (bool, error) {
	ctx := context.Background()
	return g.Client.SetNX(ctx, inflightPrefix+key, "1", ttl).Result()
}

func (g *RedisInflightGuard) Release(key string) error {
	ctx := context.Background()
	return g.Client.Del(ctx, inflightPrefix+key).Err()
}

// MemoryInflightGuard is a process-local InflightGuard used in tests.
type MemoryInflightGuard struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewMemoryInflightGuard() *MemoryInflightGuard {
	return &MemoryInflightGuard{held: make(map[string]bool)}
}

func (g *MemoryInflightGuard) Acquire(key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	return true, nil
}

func (g *MemoryInflightGuard) Release(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	return nil
}
