package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/arielstudio/nail-scheduler/internal/audit"
	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/models"
)

// ======================================================
// UPSERT
// ======================================================

type UpsertServiceInput struct {
	ID          string // vazio cria um serviço novo
	Name        string
	Description string
}

type UpsertService struct {
	state domain.State
	audit *audit.Dispatcher
}

func NewUpsertService(
	state domain.State,
	auditDispatcher *audit.Dispatcher,
) *UpsertService {
	return &UpsertService{state: state, audit: auditDispatcher}
}

func (uc *UpsertService) Execute(
	ctx context.Context,
	in UpsertServiceInput,
) (*models.Service, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_service_name")
	}

	svc := models.Service{
		ID:          strings.TrimSpace(in.ID),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}

	created := svc.ID == ""
	if created {
		svc.ID = uuid.NewString()
	}

	err := uc.state.MutateServices(ctx, func(services []models.Service) ([]models.Service, error) {
		for i := range services {
			if services[i].ID == svc.ID {
				services[i] = svc
				return services, nil
			}
		}
		return append(services, svc), nil
	})
	if err != nil {
		return nil, err
	}

	action := "service_updated"
	if created {
		action = "service_created"
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   action,
		Entity:   "service",
		EntityID: svc.ID,
	})

	return &svc, nil
}

// ======================================================
// REMOVE
// ======================================================

type RemoveService struct {
	state domain.State
	audit *audit.Dispatcher
}

func NewRemoveService(
	state domain.State,
	auditDispatcher *audit.Dispatcher,
) *RemoveService {
	return &RemoveService{state: state, audit: auditDispatcher}
}

// Execute remove o serviço da lista. Agendamentos que o referenciam
// ficam com a referência pendurada; a exibição cai num placeholder.
func (uc *RemoveService) Execute(ctx context.Context, id string) error {
	err := uc.state.MutateServices(ctx, func(services []models.Service) ([]models.Service, error) {
		for i := range services {
			if services[i].ID == id {
				return append(services[:i], services[i+1:]...), nil
			}
		}
		return nil, httperr.ErrBusiness("service_not_found")
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "service_removed",
		Entity:   "service",
		EntityID: id,
	})

	return nil
}
