package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fodmaplab/reintro/pkg/domain"
)

// RunProtocolStoreContract runs a suite of tests to verify that a
// ProtocolStore implementation adheres to the interface contract.
func RunProtocolStoreContract(t *testing.T, store ProtocolStore) {
	ctx := context.Background()
	userID := "contract-test-user-" + time.Now().Format("20060102150405")

	sample := func() *domain.ProtocolState {
		start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		state := domain.NewProtocolState(userID, start)
		state.CompletedTests = []domain.FoodTestResult{{
			FoodItem:            "Honey",
			FODMAPGroup:         domain.GroupFructose,
			ToleranceStatus:     domain.StatusTolerated,
			MaxToleratedPortion: "1 tbsp",
			StartDate:           start,
			Doses: []domain.DoseRecord{{
				Date:          start,
				DayNumber:     1,
				FoodItem:      "Honey",
				PortionSize:   "1 tsp",
				PortionAmount: 1,
				Symptoms:      []domain.SymptomRecord{},
			}},
		}}
		return state
	}

	t.Run("Save and Load", func(t *testing.T) {
		state := sample()

		err := store.Save(ctx, userID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state.UserID, loaded.UserID)
		assert.Equal(t, domain.PhaseTesting, loaded.Phase)
		require.Len(t, loaded.CompletedTests, 1)
		assert.Equal(t, "Honey", loaded.CompletedTests[0].FoodItem)
		assert.Equal(t, domain.StatusTolerated, loaded.CompletedTests[0].ToleranceStatus)
		assert.True(t, state.StartDate.Equal(loaded.StartDate), "start date should survive the round trip")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+userID)
		assert.ErrorIs(t, err, domain.ErrProtocolNotFound)
	})

	t.Run("Caller Mutation Is Isolated", func(t *testing.T) {
		state := sample()
		require.NoError(t, store.Save(ctx, userID, state))

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err)
		loaded.CompletedTests[0].FoodItem = "tampered"

		fresh, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Honey", fresh.CompletedTests[0].FoodItem)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, userID, sample()))

		err := store.Delete(ctx, userID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrProtocolNotFound, "Load after Delete should return ErrProtocolNotFound")
	})

	t.Run("List", func(t *testing.T) {
		first := userID + "-a"
		second := userID + "-b"
		require.NoError(t, store.Save(ctx, first, sample()))
		require.NoError(t, store.Save(ctx, second, sample()))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, first)
		assert.Contains(t, ids, second)

		require.NoError(t, store.Delete(ctx, first))
		require.NoError(t, store.Delete(ctx, second))
	})
}
