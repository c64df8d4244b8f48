package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arielstudio/nail-scheduler/internal/audit"
	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/models"
)

type ToggleBlockedSlot struct {
	state   domain.State
	audit   *audit.Dispatcher
	catalog []string
}

func NewToggleBlockedSlot(
	state domain.State,
	auditDispatcher *audit.Dispatcher,
	catalog []string,
) *ToggleBlockedSlot {
	return &ToggleBlockedSlot{
		state:   state,
		audit:   auditDispatcher,
		catalog: catalog,
	}
}

// Execute é um toggle puro: se existe um bloqueio com a mesma data e o
// mesmo horário (ou ambos de dia inteiro), ele é removido; senão um novo
// é criado. Presença é o estado, não há add/remove separados.
func (uc *ToggleBlockedSlot) Execute(
	ctx context.Context,
	date string,
	slot string,
) (removed bool, err error) {

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return false, httperr.ErrBusiness("invalid_date")
	}

	if slot != "" {
		inCatalog := false
		for _, s := range uc.catalog {
			if s == slot {
				inCatalog = true
				break
			}
		}
		if !inCatalog {
			return false, httperr.ErrBusiness("invalid_time")
		}
	}

	err = uc.state.MutateBlockedSlots(ctx, func(blocked []models.BlockedSlot) ([]models.BlockedSlot, error) {
		for i, b := range blocked {
			if b.Matches(date, slot) {
				removed = true
				return append(blocked[:i], blocked[i+1:]...), nil
			}
		}

		return append(blocked, models.BlockedSlot{
			ID:   uuid.NewString(),
			Date: date,
			Time: slot,
		}), nil
	})
	if err != nil {
		return false, err
	}

	action := "slot_blocked"
	if removed {
		action = "slot_unblocked"
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   action,
		Entity:   "blocked_slot",
		EntityID: date + " " + slot,
	})

	return removed, nil
}
