package cache

import (
	"context"
	"sync"
	"time"
)

// entry is a stored value together with the instant it stops being served.
type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Cache with a fixed TTL per entry. Expired entries
// are dropped lazily on read, and a background goroutine sweeps the whole
// map every TTL so that keys that are never read again do not accumulate.
// Close stops the sweeper.
type Memory struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]entry

	stopCh chan struct{}
}

// NewMemory creates a Memory cache whose entries live for ttl and starts
// its background sweeper. The ttl must be positive.
func NewMemory(ttl time.Duration) *Memory {
	m := &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
		stopCh:  make(chan struct{}),
	}

	go m.sweepLoop()

	return m
}

// Ensure Memory implements the Cache interface
var _ Cache = (*Memory)(nil)

// Get implements Cache.Get. An entry past its expiry is deleted and
// reported as absent.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set implements Cache.Set. The stored slice is not copied; callers must
// not mutate it afterwards.
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{value: value, expiresAt: time.Now().Add(m.ttl)}
	return nil
}

// Delete implements Cache.Delete.
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// Close implements Cache.Close. It stops the background sweeper. Entries
// already stored remain readable until they expire.
func (m *Memory) Close() error {
	close(m.stopCh)
	return nil
}

// Len returns the number of entries currently held, including entries that
// have expired but not yet been swept. It is intended for tests.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

func (m *Memory) sweepLoop() {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopCh:
			return
		}
	}
}

// sweep removes every expired entry in one pass under the lock.
func (m *Memory) sweep() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, key)
		}
	}
}
