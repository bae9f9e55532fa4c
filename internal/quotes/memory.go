package quotes

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps quotations in process memory (tests, demos).
type MemoryStore struct {
	mu    sync.RWMutex
	byNum map[string]Quotation
}

// NewInMemory returns an empty in-memory store.
func NewInMemory() *MemoryStore {
	return &MemoryStore{byNum: make(map[string]Quotation)}
}

func (m *MemoryStore) Insert(_ context.Context, q Quotation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byNum[q.Number] = q
	return nil
}

func (m *MemoryStore) Find(_ context.Context, number string) (Quotation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.byNum[number]
	if !ok {
		return Quotation{}, ErrNotFound
	}
	return q, nil
}

func (m *MemoryStore) List(context.Context) ([]Quotation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Quotation, 0, len(m.byNum))
	for _, q := range m.byNum {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }
