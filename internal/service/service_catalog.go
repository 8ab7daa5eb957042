package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/store"
	"github.com/caltrack/caltrack/models"
)

// Search behaviour of the reference catalog.
const (
	// MinSearchLength is the minimum query length, in runes, below which a
	// search returns no results instead of scanning the whole catalog.
	MinSearchLength = 2

	// MaxSearchResults caps one search response.
	MaxSearchResults = 10
)

type catalogService struct {
	catalogRepository store.CatalogRepository

	logger *logger.Logger
}

// NewCatalogService constructs a [CatalogService] over the given repository.
func NewCatalogService(catalogRepository store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		logger:            logger,
	}
}

// SearchFood returns catalog foods whose name contains query,
// case-insensitive. Queries shorter than [MinSearchLength] runes yield an
// empty result without touching storage.
func (s *catalogService) SearchFood(ctx context.Context, query string) ([]models.CatalogFood, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchLength {
		return []models.CatalogFood{}, nil
	}

	foods, err := s.catalogRepository.Search(ctx, query, MaxSearchResults)
	if err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []models.CatalogFood{}
	}

	return foods, nil
}

// GetFood returns the catalog food named name, matched case-insensitively.
func (s *catalogService) GetFood(ctx context.Context, name string) (models.CatalogFood, error) {
	return s.catalogRepository.GetByName(ctx, name)
}
