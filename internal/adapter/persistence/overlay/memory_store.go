// Package overlay stores the per-visitor custom options layered on top of
// the base catalog.
package overlay

import (
	"context"
	"sync"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"
)

type visitorOverlay struct {
	mu    sync.Mutex
	sizes map[string]entities.RoomOptions
}

// MemoryStore keeps overlays for the lifetime of the process. Each visitor
// has its own lock, so different visitors never contend.
type MemoryStore struct {
	mu       sync.Mutex
	visitors map[string]*visitorOverlay
}

var _ interfaces.ICustomOptionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{visitors: make(map[string]*visitorOverlay)}
}

func (s *MemoryStore) visitor(key string, create bool) *visitorOverlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitors[key]
	if !ok && create {
		v = &visitorOverlay{sizes: make(map[string]entities.RoomOptions)}
		s.visitors[key] = v
	}
	return v
}

func (s *MemoryStore) List(_ context.Context, visitorKey, dwellingSize string) (entities.RoomOptions, error) {
	v := s.visitor(visitorKey, false)
	if v == nil {
		return entities.RoomOptions{}, nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if opts, ok := v.sizes[dwellingSize]; ok {
		return opts.Clone(), nil
	}
	return entities.RoomOptions{}, nil
}

func (s *MemoryStore) Add(_ context.Context, visitorKey, dwellingSize, room, item string) (bool, []string, error) {
	v := s.visitor(visitorKey, true)
	v.mu.Lock()
	defer v.mu.Unlock()

	opts, ok := v.sizes[dwellingSize]
	if !ok {
		opts = make(entities.RoomOptions)
		v.sizes[dwellingSize] = opts
	}
	current := opts[room]
	if contains(current, item) {
		return false, append([]string(nil), current...), nil
	}
	opts[room] = append(current, item)
	return true, append([]string(nil), opts[room]...), nil
}

func contains(items []string, item string) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}
