package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielstudio/nail-scheduler/internal/httperr"
)

func TestToggleBlockedSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("BlockThenUnblock", func(t *testing.T) {
		st := newFakeState()
		uc := NewToggleBlockedSlot(st, testDispatcher(), testCatalog)

		removed, err := uc.Execute(ctx, "2024-06-10", "09:00")
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.Len(t, st.Snapshot().BlockedSlots, 1)

		removed, err = uc.Execute(ctx, "2024-06-10", "09:00")
		assert.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, st.Snapshot().BlockedSlots)
	})

	t.Run("WholeDayToggle", func(t *testing.T) {
		st := newFakeState()
		uc := NewToggleBlockedSlot(st, testDispatcher(), testCatalog)

		removed, err := uc.Execute(ctx, "2024-06-11", "")
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.True(t, st.Snapshot().BlockedSlots[0].BlocksWholeDay())

		removed, err = uc.Execute(ctx, "2024-06-11", "")
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("WholeDayAndSlotAreDistinct", func(t *testing.T) {
		st := newFakeState()
		uc := NewToggleBlockedSlot(st, testDispatcher(), testCatalog)

		_, err := uc.Execute(ctx, "2024-06-12", "")
		assert.NoError(t, err)
		_, err = uc.Execute(ctx, "2024-06-12", "08:00")
		assert.NoError(t, err)

		assert.Len(t, st.Snapshot().BlockedSlots, 2)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		st := newFakeState()
		uc := NewToggleBlockedSlot(st, testDispatcher(), testCatalog)

		_, err := uc.Execute(ctx, "12/06/2024", "08:00")
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	})

	t.Run("SlotOutsideCatalog", func(t *testing.T) {
		st := newFakeState()
		uc := NewToggleBlockedSlot(st, testDispatcher(), testCatalog)

		_, err := uc.Execute(ctx, "2024-06-10", "23:00")
		assert.True(t, httperr.IsBusiness(err, "invalid_time"))
		assert.Zero(t, st.mutations)
	})
}
