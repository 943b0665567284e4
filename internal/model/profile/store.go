package profile

import "strings"

// Store exposes profile retrieval for the dialogue controller and HTTP handlers.
type Store interface {
	List() []Profile
	FindByID(id string) (Profile, bool)
	FindByLabel(text string) (Profile, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Profile
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied profiles.
func NewMemoryStore(items []Profile) *MemoryStore {
	return &MemoryStore{items: append([]Profile(nil), items...)}
}

// List returns the predefined profile list.
func (s *MemoryStore) List() []Profile {
	return append([]Profile(nil), s.items...)
}

// FindByID looks up a profile by identifier.
func (s *MemoryStore) FindByID(id string) (Profile, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Profile{}, false
}

// FindByLabel returns the first profile whose label appears in text.
// Longer labels win so "초등학생" is not mistaken for a shorter match.
func (s *MemoryStore) FindByLabel(text string) (Profile, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Profile{}, false
	}
	lower := strings.ToLower(text)

	best := -1
	bestLen := 0
	for i, item := range s.items {
		for _, label := range []string{item.Label, strings.ToLower(item.LabelEn)} {
			if label == "" || !strings.Contains(lower, strings.ToLower(label)) {
				continue
			}
			if len(label) > bestLen {
				best, bestLen = i, len(label)
			}
		}
	}
	if best < 0 {
		return Profile{}, false
	}
	return s.items[best], true
}
