package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/models"
)

func TestUpsertService(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateGeneratesID", func(t *testing.T) {
		st := newFakeState()
		uc := NewUpsertService(st, testDispatcher())

		svc, err := uc.Execute(ctx, UpsertServiceInput{
			Name:        "  Alongamento em gel  ",
			Description: "Fibra de vidro",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, svc.ID)
		assert.Equal(t, "Alongamento em gel", svc.Name)
		assert.Len(t, st.Snapshot().Services, 1)
	})

	t.Run("UpdateReplacesInPlace", func(t *testing.T) {
		st := newFakeState()
		seedService(st, "s1", "Manicure")
		uc := NewUpsertService(st, testDispatcher())

		svc, err := uc.Execute(ctx, UpsertServiceInput{
			ID:   "s1",
			Name: "Manicure completa",
		})
		assert.NoError(t, err)
		assert.Equal(t, "s1", svc.ID)

		services := st.Snapshot().Services
		assert.Len(t, services, 1)
		assert.Equal(t, "Manicure completa", services[0].Name)
	})

	t.Run("UnknownIDAppends", func(t *testing.T) {
		st := newFakeState()
		seedService(st, "s1", "Manicure")
		uc := NewUpsertService(st, testDispatcher())

		_, err := uc.Execute(ctx, UpsertServiceInput{ID: "s9", Name: "Pedicure"})
		assert.NoError(t, err)
		assert.Len(t, st.Snapshot().Services, 2)
	})

	t.Run("MissingName", func(t *testing.T) {
		st := newFakeState()
		uc := NewUpsertService(st, testDispatcher())

		_, err := uc.Execute(ctx, UpsertServiceInput{Name: "   "})
		assert.True(t, httperr.IsBusiness(err, "missing_service_name"))
		assert.Zero(t, st.mutations)
	})
}

func TestRemoveService(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes", func(t *testing.T) {
		st := newFakeState()
		seedService(st, "s1", "Manicure")
		seedService(st, "s2", "Pedicure")
		uc := NewRemoveService(st, testDispatcher())

		assert.NoError(t, uc.Execute(ctx, "s1"))

		services := st.Snapshot().Services
		assert.Len(t, services, 1)
		assert.Equal(t, "s2", services[0].ID)
	})

	t.Run("AppointmentsKeepDanglingReference", func(t *testing.T) {
		st := newFakeState()
		seedService(st, "s1", "Manicure")
		_ = st.MutateAppointments(ctx, func(a []models.Appointment) ([]models.Appointment, error) {
			return append(a, models.Appointment{
				ID: "a1", ServiceID: "s1", Date: time.Now(),
				Status: string(domain.StatusPending),
			}), nil
		})

		uc := NewRemoveService(st, testDispatcher())
		assert.NoError(t, uc.Execute(ctx, "s1"))

		snap := st.Snapshot()
		assert.Empty(t, snap.Services)
		assert.Equal(t, "s1", snap.Appointments[0].ServiceID)
		assert.Equal(t, string(domain.StatusPending), snap.Appointments[0].Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		st := newFakeState()
		uc := NewRemoveService(st, testDispatcher())

		err := uc.Execute(ctx, "ghost")
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})
}

func TestUpdateSiteConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("WholesaleReplaceWithDefaults", func(t *testing.T) {
		st := newFakeState()
		uc := NewUpdateSiteConfig(st, testDispatcher())

		got, err := uc.Execute(ctx, models.SiteConfig{
			ProfessionalName: "Estúdio Ariel",
			WhatsappNumber:   "5571999887766",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Estúdio Ariel", got.ProfessionalName)

		// campos não enviados voltam ao padrão
		assert.Equal(t, models.DefaultSiteConfig().HeroTitle, got.HeroTitle)
		assert.Equal(t, models.DefaultSiteConfig().FooterName, got.FooterName)
	})
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("UsesSnapshot", func(t *testing.T) {
		st := newFakeState()
		loc := testLoc(t)

		start, err := time.ParseInLocation("2006-01-02 15:04", "2024-06-10 09:00", loc)
		assert.NoError(t, err)
		_ = st.MutateAppointments(ctx, func(a []models.Appointment) ([]models.Appointment, error) {
			return append(a, models.Appointment{
				ID: "a1", Date: start, Status: string(domain.StatusConfirmed),
			}), nil
		})

		uc := NewGetAvailability(st, testCatalog, loc)

		slots, err := uc.Execute(ctx, "2024-06-10")
		assert.NoError(t, err)
		assert.Equal(t, []string{"08:00", "10:00"}, slots)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		st := newFakeState()
		uc := NewGetAvailability(st, testCatalog, testLoc(t))

		_, err := uc.Execute(ctx, "hoje")
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	})
}
