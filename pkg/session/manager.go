package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/fodmaplab/reintro/internal/logging"
	"github.com/fodmaplab/reintro/pkg/domain"
	"github.com/fodmaplab/reintro/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu     sync.Mutex
	refs   int
	unlock ports.UnlockFunc // Function to release distributed lock (if any)
}

// Manager orchestrates protocol access, ensuring safe concurrent operations.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	store ports.ProtocolStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker ports.DistributedLocker // Optional distributed locker
	logger *slog.Logger            // Logger for internal events (like deferred errors)
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new protocol session manager with the given store.
func NewManager(store ports.ProtocolStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(userID) after unlocking.
func (m *Manager) acquire(userID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[userID]
	if !exists {
		entry = &lockEntry{}
		m.locks[userID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[userID]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, userID)
	}
}

// Load retrieves an existing protocol from the store.
func (m *Manager) Load(ctx context.Context, userID string) (*domain.ProtocolState, error) {
	var state *domain.ProtocolState
	err := m.WithLock(ctx, userID, func(ctx context.Context) error {
		var err error
		state, err = m.store.Load(ctx, userID)
		return err
	})
	return state, err
}

// LoadOrStart tries to load a protocol. If not found, it enrolls the user
// with a fresh snapshot starting at startDate.
func (m *Manager) LoadOrStart(ctx context.Context, userID string, startDate time.Time) (*domain.ProtocolState, error) {
	var state *domain.ProtocolState
	err := m.WithLock(ctx, userID, func(ctx context.Context) error {
		var err error
		state, err = m.store.Load(ctx, userID)
		if err == nil {
			return nil
		}

		if err != domain.ErrProtocolNotFound {
			return fmt.Errorf("failed to check protocol existence: %w", err)
		}

		// Not found, enroll
		state = domain.NewProtocolState(userID, startDate)

		// Persist immediately to reserve the ID
		if err := m.store.Save(ctx, userID, state); err != nil {
			return fmt.Errorf("failed to initialize protocol: %w", err)
		}
		return nil
	})
	return state, err
}

// Save persists the protocol snapshot.
func (m *Manager) Save(ctx context.Context, userID string, state *domain.ProtocolState) error {
	return m.WithLock(ctx, userID, func(ctx context.Context) error {
		return m.store.Save(ctx, userID, state)
	})
}

// Update performs a locked read-modify-write: it loads the snapshot, applies
// fn, and persists the result if fn succeeds.
func (m *Manager) Update(ctx context.Context, userID string, fn func(*domain.ProtocolState) error) error {
	return m.WithLock(ctx, userID, func(ctx context.Context) error {
		state, err := m.store.Load(ctx, userID)
		if err != nil {
			return err
		}
		if err := fn(state); err != nil {
			return err
		}
		return m.store.Save(ctx, userID, state)
	})
}

// Delete removes the protocol from the store.
func (m *Manager) Delete(ctx context.Context, userID string) error {
	return m.WithLock(ctx, userID, func(ctx context.Context) error {
		return m.store.Delete(ctx, userID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying protocol store.
func (m *Manager) Store() ports.ProtocolStore {
	return m.store
}

// WithLock executes a function while holding the lock for the user.
func (m *Manager) WithLock(ctx context.Context, userID string, fn func(context.Context) error) error {
	entry := m.acquire(userID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(userID)
	}()

	// Distributed Locking
	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, userID, 30*time.Second)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"user_id", userID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
