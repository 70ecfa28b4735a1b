package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fodmaplab/reintro/internal/adapters/sqlite"
	"github.com/fodmaplab/reintro/pkg/domain"
	"github.com/fodmaplab/reintro/pkg/ports"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "protocols.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_Contract(t *testing.T) {
	ports.RunProtocolStoreContract(t, newTestStore(t))
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protocols.db")
	ctx := context.Background()

	store, err := sqlite.New(path)
	require.NoError(t, err)

	state := domain.NewProtocolState("persisted-user", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, "persisted-user", state))
	require.NoError(t, store.Close())

	// A fresh store over the same file must still see the protocol.
	reopened, err := sqlite.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx, "persisted-user")
	require.NoError(t, err)
	require.Equal(t, "persisted-user", loaded.UserID)
	require.Equal(t, domain.PhaseTesting, loaded.Phase)
}
