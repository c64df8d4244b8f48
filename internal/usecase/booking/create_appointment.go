package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arielstudio/nail-scheduler/internal/audit"
	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName     string
	ClientWhatsapp string
	ServiceID      string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	state   domain.State
	audit   *audit.Dispatcher
	catalog []string
	loc     *time.Location

	now func() time.Time
}

func NewCreateAppointment(
	state domain.State,
	auditDispatcher *audit.Dispatcher,
	catalog []string,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		state:   state,
		audit:   auditDispatcher,
		catalog: catalog,
		loc:     loc,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// Validação síncrona, antes de qualquer mutação.
	name := strings.TrimSpace(in.ClientName)
	whatsapp := strings.TrimSpace(in.ClientWhatsapp)
	serviceID := strings.TrimSpace(in.ServiceID)

	if name == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}
	if whatsapp == "" {
		return nil, httperr.ErrBusiness("missing_client_whatsapp")
	}
	if serviceID == "" {
		return nil, httperr.ErrBusiness("missing_service")
	}

	day, err := time.ParseInLocation(domain.DateLayout, in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slot, err := time.Parse(domain.SlotLayout, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	start := time.Date(
		day.Year(), day.Month(), day.Day(),
		slot.Hour(), slot.Minute(), 0, 0,
		uc.loc,
	)

	snap := uc.state.Snapshot()

	serviceExists := false
	for _, s := range snap.Services {
		if s.ID == serviceID {
			serviceExists = true
			break
		}
	}
	if !serviceExists {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	ap := &models.Appointment{
		ID:             uuid.NewString(),
		ClientName:     name,
		ClientWhatsapp: whatsapp,
		ServiceID:      serviceID,
		Date:           start,
		Status:         string(domain.InitialStatus()),
		CreatedAt:      uc.now(),
	}

	// A revalidação do horário roda dentro da mutação, junto com o
	// append, para que duas submissões simultâneas não dividam o slot.
	err = uc.state.MutateAppointments(ctx, func(appointments []models.Appointment) ([]models.Appointment, error) {
		if !domain.IsSlotAvailable(in.Date, in.Time, uc.catalog, appointments, snap.BlockedSlots, uc.loc) {
			return nil, httperr.ErrBusiness("slot_no_longer_available")
		}
		return append(appointments, *ap), nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "public",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
