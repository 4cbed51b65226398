package documentstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"aurora_motors/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in process memory in insertion order.
// It backs local demos and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]Document
	closed      bool
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{name: name, collections: make(map[string][]Document)}
}

func (s *MemoryStore) Insert(_ context.Context, collection string, v any) (string, error) {
	doc, err := ToDocument(v)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", unavailable("insert", collection, errStoreClosed)
	}

	id := doc.ID()
	if id == "" {
		id = uuid.NewString()
		doc[IDField] = id
	}
	for _, existing := range s.collections[collection] {
		if existing.ID() == id {
			return "", fmt.Errorf("insert %s: duplicate id %q", collection, id)
		}
	}
	s.collections[collection] = append(s.collections[collection], doc)
	return id, nil
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, unavailable("find", collection, errStoreClosed)
	}

	out := make([]Document, 0)
	for _, doc := range s.collections[collection] {
		if !filter.Match(doc) {
			continue
		}
		cp, err := ToDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("copy %s document: %w", collection, err)
		}
		out = append(out, cp)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) Count(_ context.Context, collection string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, unavailable("count", collection, errStoreClosed)
	}
	return len(s.collections[collection]), nil
}

func (s *MemoryStore) Collections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, unavailable("list", "collections", errStoreClosed)
	}
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Info() interfaces.StorageInfo {
	return interfaces.StorageInfo{Driver: DriverMemory, Database: s.name, Configured: true}
}

func (s *MemoryStore) Close(_ context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
