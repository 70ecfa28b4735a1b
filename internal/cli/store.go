package cli

import (
	"fmt"

	"github.com/fodmaplab/reintro/internal/adapters/redis"
	"github.com/fodmaplab/reintro/internal/adapters/sqlite"
	"github.com/fodmaplab/reintro/internal/config"
	"github.com/fodmaplab/reintro/pkg/adapters/memory"
	"github.com/fodmaplab/reintro/pkg/persistence/middleware"
	"github.com/fodmaplab/reintro/pkg/ports"
)

// NewStore builds the protocol store the configuration selects, wrapped with
// note redaction when patterns are configured. The returned closer releases
// backend resources; for backends without any it is a no-op.
func NewStore(cfg config.StoreConfig) (ports.ProtocolStore, func() error, error) {
	store, closer, err := newBackend(cfg)
	if err != nil {
		return nil, nil, err
	}
	if len(cfg.RedactPatterns) > 0 {
		store = middleware.NewRedactMiddleware(cfg.RedactPatterns)(store)
	}
	return store, closer, nil
}

func newBackend(cfg config.StoreConfig) (ports.ProtocolStore, func() error, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.New(), func() error { return nil }, nil

	case config.BackendRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix))
		return store, store.Close, nil

	case config.BackendSQLite:
		store, err := sqlite.New(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
