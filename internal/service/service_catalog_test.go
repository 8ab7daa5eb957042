package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/store"
	"github.com/caltrack/caltrack/models"
)

type fakeCatalogRepository struct {
	searchFoods []models.CatalogFood
	searchErr   error
	gotQuery    string
	gotLimit    uint64

	food   models.CatalogFood
	getErr error
}

func (f *fakeCatalogRepository) Seed(_ context.Context) error {
	return nil
}

func (f *fakeCatalogRepository) Search(_ context.Context, query string, limit uint64) ([]models.CatalogFood, error) {
	f.gotQuery = query
	f.gotLimit = limit
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchFoods, nil
}

func (f *fakeCatalogRepository) GetByName(_ context.Context, _ string) (models.CatalogFood, error) {
	if f.getErr != nil {
		return models.CatalogFood{}, f.getErr
	}
	return f.food, nil
}

func TestSearchFood_ReturnsMatches(t *testing.T) {
	repo := &fakeCatalogRepository{
		searchFoods: []models.CatalogFood{
			{ID: 1, Name: "Apple", CaloriesPer100g: 52, Category: "Fruits"},
			{ID: 71, Name: "Apple Juice", CaloriesPer100g: 46, Category: "Beverages"},
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	foods, err := svc.SearchFood(context.Background(), "apple")

	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Apple", foods[0].Name)
	assert.Equal(t, "apple", repo.gotQuery)
	assert.Equal(t, uint64(MaxSearchResults), repo.gotLimit)
}

func TestSearchFood_ShortQuerySkipsStorage(t *testing.T) {
	repo := &fakeCatalogRepository{
		searchErr: errors.New("storage must not be touched"),
	}
	svc := NewCatalogService(repo, logger.Nop())

	for _, query := range []string{"", "a", " a ", "  "} {
		foods, err := svc.SearchFood(context.Background(), query)

		require.NoError(t, err, "query %q", query)
		assert.NotNil(t, foods, "query %q", query)
		assert.Empty(t, foods, "query %q", query)
	}
}

func TestSearchFood_TrimsWhitespace(t *testing.T) {
	repo := &fakeCatalogRepository{}
	svc := NewCatalogService(repo, logger.Nop())

	_, err := svc.SearchFood(context.Background(), "  apple  ")

	require.NoError(t, err)
	assert.Equal(t, "apple", repo.gotQuery)
}

func TestSearchFood_NoMatchesReturnsEmptySlice(t *testing.T) {
	repo := &fakeCatalogRepository{}
	svc := NewCatalogService(repo, logger.Nop())

	foods, err := svc.SearchFood(context.Background(), "xyz-not-a-food")

	require.NoError(t, err)
	assert.NotNil(t, foods)
	assert.Empty(t, foods)
}

func TestSearchFood_RepositoryError(t *testing.T) {
	wantErr := errors.New("connection reset")
	repo := &fakeCatalogRepository{searchErr: wantErr}
	svc := NewCatalogService(repo, logger.Nop())

	_, err := svc.SearchFood(context.Background(), "apple")

	assert.ErrorIs(t, err, wantErr)
}

func TestGetFood_Success(t *testing.T) {
	want := models.CatalogFood{ID: 31, Name: "Chicken Breast", CaloriesPer100g: 165, Category: "Proteins"}
	repo := &fakeCatalogRepository{food: want}
	svc := NewCatalogService(repo, logger.Nop())

	got, err := svc.GetFood(context.Background(), "chicken breast")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetFood_NotFound(t *testing.T) {
	repo := &fakeCatalogRepository{getErr: store.ErrFoodNotFound}
	svc := NewCatalogService(repo, logger.Nop())

	_, err := svc.GetFood(context.Background(), "unicorn steak")

	assert.ErrorIs(t, err, store.ErrFoodNotFound)
}
