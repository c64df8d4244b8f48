package booking

import (
	"context"

	"github.com/arielstudio/nail-scheduler/internal/models"
)

// State é o que os use cases enxergam do controller de sincronização:
// leitura de um snapshot consistente e mutações que produzem o novo
// valor da coleção. Cada mutação é aplicada em memória, persistida no
// cache local e propagada ao store remoto em segundo plano.
type State interface {
	Snapshot() models.Snapshot

	MutateServices(ctx context.Context, fn func([]models.Service) ([]models.Service, error)) error
	MutateAppointments(ctx context.Context, fn func([]models.Appointment) ([]models.Appointment, error)) error
	MutateBlockedSlots(ctx context.Context, fn func([]models.BlockedSlot) ([]models.BlockedSlot, error)) error
	SetSiteConfig(ctx context.Context, cfg models.SiteConfig) error
}
