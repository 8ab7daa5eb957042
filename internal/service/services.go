package service

import (
	"github.com/caltrack/caltrack/internal/config"
	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/store"
)

type Services struct {
	EnergyService  EnergyService
	IntakeService  IntakeService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		EnergyService:  NewEnergyService(NewMifflinStJeor(), logger),
		IntakeService:  NewIntakeService(repositories.Intake, logger),
		CatalogService: NewCatalogService(repositories.Catalog, logger),
		AppInfoService: appInfoService,
	}, nil
}
