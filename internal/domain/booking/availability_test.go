package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arielstudio/nail-scheduler/internal/models"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Bahia")
	assert.NoError(t, err)
	return loc
}

func at(t *testing.T, loc *time.Location, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	assert.NoError(t, err)
	return ts
}

func TestAvailableSlots(t *testing.T) {
	loc := mustLoc(t)
	catalog := []string{"08:00", "09:00", "10:00"}

	t.Run("EmptyDay", func(t *testing.T) {
		slots := AvailableSlots("2024-06-10", catalog, nil, nil, loc)
		assert.Equal(t, []string{"08:00", "09:00", "10:00"}, slots)
	})

	t.Run("ConfirmedAppointmentTakesSlot", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "a1", Date: at(t, loc, "2024-06-10 09:00"), Status: string(StatusConfirmed)},
		}

		slots := AvailableSlots("2024-06-10", catalog, appointments, nil, loc)
		assert.Equal(t, []string{"08:00", "10:00"}, slots)
	})

	t.Run("PendingAppointmentTakesSlot", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "a1", Date: at(t, loc, "2024-06-10 08:00"), Status: string(StatusPending)},
		}

		slots := AvailableSlots("2024-06-10", catalog, appointments, nil, loc)
		assert.Equal(t, []string{"09:00", "10:00"}, slots)
	})

	t.Run("CancelledAppointmentFreesSlot", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "a1", Date: at(t, loc, "2024-06-10 09:00"), Status: string(StatusCancelled)},
		}

		slots := AvailableSlots("2024-06-10", catalog, appointments, nil, loc)
		assert.Contains(t, slots, "09:00")
	})

	t.Run("WholeDayBlocked", func(t *testing.T) {
		blocked := []models.BlockedSlot{
			{ID: "b1", Date: "2024-06-11"},
		}
		appointments := []models.Appointment{
			{ID: "a1", Date: at(t, loc, "2024-06-11 09:00"), Status: string(StatusConfirmed)},
		}

		slots := AvailableSlots("2024-06-11", catalog, appointments, blocked, loc)
		assert.Empty(t, slots)
	})

	t.Run("WholeDayBlockDoesNotLeakToOtherDays", func(t *testing.T) {
		blocked := []models.BlockedSlot{
			{ID: "b1", Date: "2024-06-11"},
		}

		slots := AvailableSlots("2024-06-12", catalog, nil, blocked, loc)
		assert.Len(t, slots, 3)
	})

	t.Run("SingleSlotBlocked", func(t *testing.T) {
		blocked := []models.BlockedSlot{
			{ID: "b1", Date: "2024-06-10", Time: "10:00"},
		}

		slots := AvailableSlots("2024-06-10", catalog, nil, blocked, loc)
		assert.Equal(t, []string{"08:00", "09:00"}, slots)
	})

	t.Run("AppointmentOnAnotherDayIgnored", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "a1", Date: at(t, loc, "2024-06-09 09:00"), Status: string(StatusConfirmed)},
		}

		slots := AvailableSlots("2024-06-10", catalog, appointments, nil, loc)
		assert.Len(t, slots, 3)
	})

	t.Run("CatalogOrderPreserved", func(t *testing.T) {
		blocked := []models.BlockedSlot{
			{ID: "b1", Date: "2024-06-10", Time: "09:00"},
		}
		appointments := []models.Appointment{
			{ID: "a1", Date: at(t, loc, "2024-06-10 08:00"), Status: string(StatusPending)},
		}

		slots := AvailableSlots("2024-06-10", catalog, appointments, blocked, loc)
		assert.Equal(t, []string{"10:00"}, slots)
	})
}

func TestIsSlotAvailable(t *testing.T) {
	loc := mustLoc(t)
	catalog := []string{"08:00", "09:00"}

	t.Run("FreeSlot", func(t *testing.T) {
		assert.True(t, IsSlotAvailable("2024-06-10", "08:00", catalog, nil, nil, loc))
	})

	t.Run("TakenSlot", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "a1", Date: at(t, loc, "2024-06-10 08:00"), Status: string(StatusPending)},
		}
		assert.False(t, IsSlotAvailable("2024-06-10", "08:00", catalog, appointments, nil, loc))
	})

	t.Run("OutsideCatalog", func(t *testing.T) {
		assert.False(t, IsSlotAvailable("2024-06-10", "12:30", catalog, nil, nil, loc))
	})
}
