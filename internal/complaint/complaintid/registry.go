// internal/complaint/complaintid/registry.go
package complaintid

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Registry remembers issued identifiers so none is handed out twice.
// Reserve reports false when id is already taken.
type Registry interface {
	Reserve(ctx context.Context, id string, ttl time.Duration) (bool, error)
}

// MemoryRegistry is a process-local Registry.
type MemoryRegistry struct {
	mu     sync.Mutex
	issued map[string]time.Time
	now    func() time.Time
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{issued: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryRegistry) Reserve(_ context.Context, id string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, exp := range m.issued {
		if !now.Before(exp) {
			delete(m.issued, k)
		}
	}

	if _, taken := m.issued[id]; taken {
		return false, nil
	}
	m.issued[id] = now.Add(ttl)
	return true, nil
}

func (m *MemoryRegistry) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.issued)
}

// RedisRegistry shares issued identifiers between instances with SETNX.
type RedisRegistry struct {
	client redis.Cmdable
	prefix string
}

func NewRedisRegistry(client redis.Cmdable, keyPrefix string) *RedisRegistry {
	return &RedisRegistry{client: client, prefix: keyPrefix}
}

func (r *RedisRegistry) Key(id string) string {
	return r.prefix + id
}

func (r *RedisRegistry) Reserve(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, r.Key(id), "1", ttl).Result()
}
