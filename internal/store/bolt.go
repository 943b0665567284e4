package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
)

var sessionsBucket = []byte("sessions")

// BoltStore keeps sessions in a single bbolt bucket.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database file at path.
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create bolt dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sessions bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (b *BoltStore) SaveSession(_ context.Context, s chat.Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Put([]byte(s.ID), data)
	})
}

func (b *BoltStore) GetSession(_ context.Context, id string) (chat.Session, bool, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		// bbolt 返回的切片只在事务内有效
		if v := tx.Bucket(sessionsBucket).Get([]byte(id)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return chat.Session{}, false, fmt.Errorf("read session %s: %w", id, err)
	}
	if data == nil {
		return chat.Session{}, false, nil
	}
	s, err := decode(data)
	if err != nil {
		return chat.Session{}, false, err
	}
	return s, true, nil
}

func (b *BoltStore) DeleteSession(_ context.Context, id string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete([]byte(id))
	})
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
