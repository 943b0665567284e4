package store

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/museum-guide/backend/internal/config"
)

const (
	EngineMemory = "memory"
	EngineBolt   = "bolt"
	EngineSQLite = "sqlite"
	EngineRedis  = "redis"
)

// NewByEngine builds the session store selected by configuration.
func NewByEngine(cfg config.StoreConfig) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Engine)) {
	case "", EngineMemory:
		return NewMemoryStore(), nil
	case EngineBolt:
		return NewBoltStore(cfg.Path)
	case EngineSQLite:
		return NewSQLiteStore(cfg.Path)
	case EngineRedis:
		return NewRedisStore(cfg.RedisURL, cfg.TTL)
	default:
		return nil, fmt.Errorf("unsupported session store engine: %s", cfg.Engine)
	}
}
