package mykv

import (
	"context"
	"fmt"

	"github.com/MarcGrol/grocerystore/lib/myconfig"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Store is a durable string-keyed byte store. Get reports absence through the boolean,
// not through an error.
type Store interface {
	Put(c context.Context, key string, value []byte) error
	Get(c context.Context, key string) ([]byte, bool, error)
	Delete(c context.Context, key string) error
}

// New opens the backend named in cfg. The returned cleanup releases its resources.
func New(c context.Context, cfg myconfig.StorageConfig) (Store, func(), error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), func() {}, nil
	case BackendFile:
		return NewFileStore(cfg.Directory)
	case BackendRedis:
		return NewRedisStore(c, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case BackendPostgres:
		return NewPostgresStore(c, cfg.DatabaseURL)
	default:
		return nil, func() {}, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
