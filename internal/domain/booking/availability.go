package booking

import (
	"time"

	"github.com/arielstudio/nail-scheduler/internal/models"
)

const (
	DateLayout = "2006-01-02"
	SlotLayout = "15:04"
)

// AvailableSlots calcula os horários livres de um dia.
//
// Regras:
//  1. Bloqueio de dia inteiro (blocked slot sem horário) esvazia o dia.
//  2. Um horário sai da grade se houver bloqueio pontual ou um
//     agendamento não cancelado no mesmo dia e horário.
//  3. A ordem da grade é preservada.
func AvailableSlots(
	date string,
	catalog []string,
	appointments []models.Appointment,
	blocked []models.BlockedSlot,
	loc *time.Location,
) []string {

	for _, b := range blocked {
		if b.Date == date && b.BlocksWholeDay() {
			return []string{}
		}
	}

	taken := make(map[string]bool)

	for _, b := range blocked {
		if b.Date == date && !b.BlocksWholeDay() {
			taken[b.Time] = true
		}
	}

	for _, ap := range appointments {
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		local := ap.Date.In(loc)
		if local.Format(DateLayout) == date {
			taken[local.Format(SlotLayout)] = true
		}
	}

	slots := []string{}
	for _, slot := range catalog {
		if !taken[slot] {
			slots = append(slots, slot)
		}
	}

	return slots
}

// IsSlotAvailable revalida um único horário; usado na submissão para
// rejeitar corridas entre renderização e envio.
func IsSlotAvailable(
	date string,
	slot string,
	catalog []string,
	appointments []models.Appointment,
	blocked []models.BlockedSlot,
	loc *time.Location,
) bool {

	inCatalog := false
	for _, s := range catalog {
		if s == slot {
			inCatalog = true
			break
		}
	}
	if !inCatalog {
		return false
	}

	for _, s := range AvailableSlots(date, catalog, appointments, blocked, loc) {
		if s == slot {
			return true
		}
	}
	return false
}
