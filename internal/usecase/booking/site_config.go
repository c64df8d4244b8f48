package booking

import (
	"context"

	"github.com/arielstudio/nail-scheduler/internal/audit"
	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/models"
)

type UpdateSiteConfig struct {
	state domain.State
	audit *audit.Dispatcher
}

func NewUpdateSiteConfig(
	state domain.State,
	auditDispatcher *audit.Dispatcher,
) *UpdateSiteConfig {
	return &UpdateSiteConfig{state: state, audit: auditDispatcher}
}

// Execute substitui a configuração inteira; campos vazios voltam aos
// valores padrão.
func (uc *UpdateSiteConfig) Execute(
	ctx context.Context,
	cfg models.SiteConfig,
) (models.SiteConfig, error) {

	if err := uc.state.SetSiteConfig(ctx, cfg); err != nil {
		return models.SiteConfig{}, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:  "admin",
		Action: "site_config_updated",
		Entity: "site_config",
	})

	return uc.state.Snapshot().SiteConfig, nil
}
