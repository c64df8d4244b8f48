package booking

import (
	"context"
	"time"

	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
)

type GetAvailability struct {
	state   domain.State
	catalog []string
	loc     *time.Location
}

func NewGetAvailability(
	state domain.State,
	catalog []string,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		state:   state,
		catalog: catalog,
		loc:     loc,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	if _, err := time.ParseInLocation(domain.DateLayout, date, uc.loc); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	snap := uc.state.Snapshot()

	return domain.AvailableSlots(
		date,
		uc.catalog,
		snap.Appointments,
		snap.BlockedSlots,
		uc.loc,
	), nil
}
