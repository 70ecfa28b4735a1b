package ports

import (
	"context"

	"github.com/fodmaplab/reintro/pkg/domain"
)

// ProtocolStore defines the interface for persisting protocol snapshots.
// The engine itself never touches a store; callers load a snapshot, ask the
// engine for a decision, and persist the advanced snapshot before the next
// call.
type ProtocolStore interface {
	// Save persists the snapshot for a given user ID.
	Save(ctx context.Context, userID string, state *domain.ProtocolState) error

	// Load retrieves the snapshot for a given user ID.
	// Returns domain.ErrProtocolNotFound if no protocol exists.
	Load(ctx context.Context, userID string) (*domain.ProtocolState, error)

	// Delete removes the snapshot for a given user ID.
	Delete(ctx context.Context, userID string) error

	// List returns the user IDs with a stored protocol.
	List(ctx context.Context) ([]string, error)
}
