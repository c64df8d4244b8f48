package store

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/arielstudio/nail-scheduler/internal/models"
)

func TestLatestByLabel(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("PicksMostRecentPerLabel", func(t *testing.T) {
		records := []models.StoreRecord{
			{ID: 1, Title: LabelServices, Content: "old", CreatedAt: base},
			{ID: 2, Title: LabelServices, Content: "new", CreatedAt: base.Add(time.Hour)},
			{ID: 3, Title: LabelConfig, Content: "cfg", CreatedAt: base},
		}

		latest := LatestByLabel(records)

		assert.Len(t, latest, 2)
		assert.Equal(t, "new", latest[LabelServices].Content)
		assert.Equal(t, "cfg", latest[LabelConfig].Content)
	})

	t.Run("TieBreaksOnHigherID", func(t *testing.T) {
		records := []models.StoreRecord{
			{ID: 7, Title: LabelBlocked, Content: "a", CreatedAt: base},
			{ID: 9, Title: LabelBlocked, Content: "b", CreatedAt: base},
			{ID: 8, Title: LabelBlocked, Content: "c", CreatedAt: base},
		}

		latest := LatestByLabel(records)
		assert.Equal(t, uint(9), latest[LabelBlocked].ID)
	})

	t.Run("OrderIndependent", func(t *testing.T) {
		records := []models.StoreRecord{
			{ID: 2, Title: LabelAppointments, Content: "new", CreatedAt: base.Add(time.Minute)},
			{ID: 1, Title: LabelAppointments, Content: "old", CreatedAt: base},
		}

		latest := LatestByLabel(records)
		assert.Equal(t, "new", latest[LabelAppointments].Content)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, LatestByLabel(nil))
	})
}

func TestClassify(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, Classify(nil))
	})

	t.Run("InsufficientPrivilege", func(t *testing.T) {
		err := Classify(&pgconn.PgError{Code: "42501"})
		assert.ErrorIs(t, err, ErrWriteForbidden)
	})

	t.Run("RowLevelSecurity", func(t *testing.T) {
		err := Classify(&pgconn.PgError{
			Code:    "P0001",
			Message: "new row violates row-level security policy",
		})
		assert.ErrorIs(t, err, ErrWriteForbidden)
	})

	t.Run("TextualPermissionDenied", func(t *testing.T) {
		err := Classify(errors.New("ERROR: permission denied for table store_records"))
		assert.ErrorIs(t, err, ErrWriteForbidden)
	})

	t.Run("GenericErrorPassesThrough", func(t *testing.T) {
		cause := errors.New("connection refused")
		assert.Equal(t, cause, Classify(cause))
	})
}

func TestIsForbidden(t *testing.T) {
	assert.True(t, IsForbidden(ErrWriteForbidden))
	assert.False(t, IsForbidden(errors.New("timeout")))
	assert.False(t, IsForbidden(nil))
}
