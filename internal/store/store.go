package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
)

// ErrEmptyID 表示会话缺少标识，无法作为键写入。
var ErrEmptyID = errors.New("store: session id is empty")

// Store persists conversation sessions as one serialized value per id.
type Store interface {
	SaveSession(ctx context.Context, s chat.Session) error
	// GetSession returns found=false with a nil error when the id is unknown.
	GetSession(ctx context.Context, id string) (chat.Session, bool, error)
	DeleteSession(ctx context.Context, id string) error
	Close() error
}

func encode(s chat.Session) ([]byte, error) {
	if s.ID == "" {
		return nil, ErrEmptyID
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", s.ID, err)
	}
	return data, nil
}

func decode(data []byte) (chat.Session, error) {
	var s chat.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return chat.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}
