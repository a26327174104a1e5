package cache

import (
	"sync"
	"sync/atomic"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
)

// Memo is an exact-match, unbounded, process-lifetime answer cache. A key
// maps to at most one stored response; entries never expire or evict.
type Memo struct {
	mu      sync.RWMutex
	entries map[string]dto.LookupResponse
	hits    atomic.Int64
	misses  atomic.Int64
}

func NewMemo() *Memo {
	return &Memo{entries: make(map[string]dto.LookupResponse)}
}

func (m *Memo) Get(key string) (dto.LookupResponse, bool) {
	m.mu.RLock()
	resp, ok := m.entries[key]
	m.mu.RUnlock()

	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	return resp, ok
}

func (m *Memo) Put(key string, resp dto.LookupResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = resp
}

func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Stats returns hit/miss counters for diagnostics.
func (m *Memo) Stats() (hits, misses int64) {
	return m.hits.Load(), m.misses.Load()
}
