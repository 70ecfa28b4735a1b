package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fodmaplab/reintro/pkg/domain"
)

// Store implements ports.ProtocolStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the snapshot in memory. Snapshots are stored serialized so
// callers can never share pointers with the store.
func (s *Store) Save(ctx context.Context, userID string, state *domain.ProtocolState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal protocol state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = payload
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, userID string) (*domain.ProtocolState, error) {
	s.mu.RLock()
	payload, ok := s.data[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrProtocolNotFound
	}

	var state domain.ProtocolState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal protocol state: %w", err)
	}
	return &state, nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}

// List returns the user IDs with a stored protocol.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.data))
	for id := range s.data {
		users = append(users, id)
	}
	return users, nil
}
