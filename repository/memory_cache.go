package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository. Entries expire after ttl;
// a zero ttl keeps them for the life of the process. Expired entries are
// swept on Set at most once per ttl.
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.data[key]
	if !ok || m.expired(entry, m.now()) {
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
		if now.Sub(m.lastSweep) >= m.ttl {
			m.sweep(now)
		}
	}
	m.data[key] = entry
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MemoryCache) expired(entry memoryEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}

func (m *MemoryCache) sweep(now time.Time) {
	for key, entry := range m.data {
		if m.expired(entry, now) {
			delete(m.data, key)
		}
	}
	m.lastSweep = now
}
