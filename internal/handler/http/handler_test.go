package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/caltrack/caltrack/internal/config"
	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/models"
	"github.com/caltrack/caltrack/web"
)

// fakeIntakeService records AddEntry calls and serves a canned summary.
type fakeIntakeService struct {
	addResponse models.AddEntryResponse
	addErr      error
	added       []models.FoodEntry

	summary    models.DailySummary
	summaryErr error
	gotDay     time.Time
}

func (f *fakeIntakeService) AddEntry(_ context.Context, entry models.FoodEntry) (models.AddEntryResponse, error) {
	if f.addErr != nil {
		return models.AddEntryResponse{}, f.addErr
	}
	f.added = append(f.added, entry)
	return f.addResponse, nil
}

func (f *fakeIntakeService) DailySummary(_ context.Context, day time.Time) (models.DailySummary, error) {
	f.gotDay = day
	if f.summaryErr != nil {
		return models.DailySummary{}, f.summaryErr
	}
	return f.summary, nil
}

// fakeCatalogService serves canned search results and lookups.
type fakeCatalogService struct {
	foods     []models.CatalogFood
	searchErr error
	gotQuery  string

	food   models.CatalogFood
	getErr error
}

func (f *fakeCatalogService) SearchFood(_ context.Context, query string) ([]models.CatalogFood, error) {
	f.gotQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.foods == nil {
		return []models.CatalogFood{}, nil
	}
	return f.foods, nil
}

func (f *fakeCatalogService) GetFood(_ context.Context, _ string) (models.CatalogFood, error) {
	if f.getErr != nil {
		return models.CatalogFood{}, f.getErr
	}
	return f.food, nil
}

type testServices struct {
	intake  *fakeIntakeService
	catalog *fakeCatalogService
}

// newTestHandler wires a Handler over fake intake/catalog services, the real
// calculator, and the embedded templates.
func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()

	intake := &fakeIntakeService{}
	catalog := &fakeCatalogService{}

	appInfo, err := service.NewAppInfoService(config.App{Version: "test"}, logger.Nop())
	require.NoError(t, err)

	templates, err := web.Templates()
	require.NoError(t, err)

	services := &service.Services{
		EnergyService:  service.NewEnergyService(service.NewMifflinStJeor(), logger.Nop()),
		IntakeService:  intake,
		CatalogService: catalog,
		AppInfoService: appInfo,
	}

	return NewHandler(services, templates, logger.Nop()), &testServices{intake: intake, catalog: catalog}
}
