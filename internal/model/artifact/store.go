package artifact

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"
)

// Store exposes read-only catalog access shared by every session.
type Store interface {
	List() []Artifact
	FindByID(id string) (Artifact, bool)
	Sample(n int) []Artifact
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Artifact
	index map[string]int

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customises a MemoryStore.
type Option func(*MemoryStore)

// WithRand replaces the sampler's random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *MemoryStore) {
		s.rng = rng
	}
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied artifacts.
// Later entries with a duplicate ID are ignored.
func NewMemoryStore(items []Artifact, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		items: make([]Artifact, 0, len(items)),
		index: make(map[string]int, len(items)),
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
	for _, item := range items {
		if _, dup := s.index[item.ID]; dup || item.ID == "" {
			continue
		}
		s.index[item.ID] = len(s.items)
		s.items = append(s.items, item)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the catalog in load order.
func (s *MemoryStore) List() []Artifact {
	return append([]Artifact(nil), s.items...)
}

// FindByID looks up an artifact by identifier.
func (s *MemoryStore) FindByID(id string) (Artifact, bool) {
	idx, ok := s.index[id]
	if !ok {
		return Artifact{}, false
	}
	return s.items[idx], true
}

// Sample returns n distinct artifacts in random order. n <= 0 or n larger than
// the catalog yields the whole catalog shuffled.
func (s *MemoryStore) Sample(n int) []Artifact {
	out := s.List()

	s.mu.Lock()
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	s.mu.Unlock()

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// LoadFile reads a JSON array of artifacts from disk.
func LoadFile(path string) ([]Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var items []Artifact
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}
	return items, nil
}
