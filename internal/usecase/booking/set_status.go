package booking

import (
	"context"

	"github.com/arielstudio/nail-scheduler/internal/audit"
	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/models"
)

type SetAppointmentStatus struct {
	state domain.State
	audit *audit.Dispatcher
}

func NewSetAppointmentStatus(
	state domain.State,
	auditDispatcher *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		state: state,
		audit: auditDispatcher,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	id string,
	next domain.Status,
) (*models.Appointment, error) {

	var updated *models.Appointment

	err := uc.state.MutateAppointments(ctx, func(appointments []models.Appointment) ([]models.Appointment, error) {
		for i := range appointments {
			if appointments[i].ID != id {
				continue
			}

			if err := domain.CanTransition(domain.Status(appointments[i].Status), next); err != nil {
				return nil, err
			}

			appointments[i].Status = string(next)
			ap := appointments[i]
			updated = &ap
			return appointments, nil
		}

		return nil, httperr.ErrBusiness("appointment_not_found")
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: id,
		Metadata: map[string]string{"status": string(next)},
	})

	return updated, nil
}
