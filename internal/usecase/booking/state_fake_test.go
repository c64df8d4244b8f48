package booking

import (
	"context"
	"sync"

	"github.com/arielstudio/nail-scheduler/internal/audit"
	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/models"
)

// fakeState aplica as mutações direto na memória, sem cache nem store.
type fakeState struct {
	mu   sync.Mutex
	snap models.Snapshot

	mutations int
}

func newFakeState() *fakeState {
	return &fakeState{
		snap: models.Snapshot{
			Services:     []models.Service{},
			Appointments: []models.Appointment{},
			BlockedSlots: []models.BlockedSlot{},
			SiteConfig:   models.DefaultSiteConfig(),
		},
	}
}

func (f *fakeState) Snapshot() models.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap.Clone()
}

func (f *fakeState) MutateServices(
	_ context.Context,
	fn func([]models.Service) ([]models.Service, error),
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, err := fn(append([]models.Service(nil), f.snap.Services...))
	if err != nil {
		return err
	}
	f.snap.Services = next
	f.mutations++
	return nil
}

func (f *fakeState) MutateAppointments(
	_ context.Context,
	fn func([]models.Appointment) ([]models.Appointment, error),
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, err := fn(append([]models.Appointment(nil), f.snap.Appointments...))
	if err != nil {
		return err
	}
	f.snap.Appointments = next
	f.mutations++
	return nil
}

func (f *fakeState) MutateBlockedSlots(
	_ context.Context,
	fn func([]models.BlockedSlot) ([]models.BlockedSlot, error),
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, err := fn(append([]models.BlockedSlot(nil), f.snap.BlockedSlots...))
	if err != nil {
		return err
	}
	f.snap.BlockedSlots = next
	f.mutations++
	return nil
}

func (f *fakeState) SetSiteConfig(_ context.Context, cfg models.SiteConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap.SiteConfig = cfg.WithDefaults()
	f.mutations++
	return nil
}

var _ domain.State = (*fakeState)(nil)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}
