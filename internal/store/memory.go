package store

import (
	"context"
	"sync"

	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
)

// MemoryStore keeps encoded sessions in a map. Values are copied through
// JSON so callers never share slices with the stored state.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) SaveSession(_ context.Context, s chat.Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[s.ID] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) GetSession(_ context.Context, id string) (chat.Session, bool, error) {
	m.mu.RLock()
	data, ok := m.data[id]
	m.mu.RUnlock()
	if !ok {
		return chat.Session{}, false, nil
	}
	s, err := decode(data)
	if err != nil {
		return chat.Session{}, false, err
	}
	return s, true, nil
}

func (m *MemoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.data, id)
	m.mu.Unlock()
	return nil
}

// Len 返回当前保存的会话数量。
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MemoryStore) Close() error { return nil }
