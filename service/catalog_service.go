package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"outfiter/models"
	"outfiter/repository"
	"outfiter/utils"
)

// CatalogService loads the catalog once and derives the selectable form options
// Implements CatalogServiceInterface
type CatalogService struct {
	repository repository.CatalogRepositoryInterface
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.CatalogRepositoryInterface) *CatalogService {
	return &CatalogService{
		repository: repo,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// LoadItems reads the catalog rows and derives the lookup tokens of every item
func (s *CatalogService) LoadItems(ctx context.Context) ([]models.Item, error) {
	rows, err := s.repository.LoadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	items := utils.BuildItems(rows)
	log.Info().Int("items", len(items)).Msg("📦 Catalog loaded")
	return items, nil
}

// BuildOptions derives the distinct, sorted values offered by the input form
// Styles, seasons and colors are prefixed with "any"
func BuildOptions(items []models.Item) models.OptionsResponse {
	styles := make(map[string]bool)
	seasons := make(map[string]bool)
	colors := make(map[string]bool)
	names := make(map[string]bool)

	for _, it := range items {
		for _, s := range it.StyleTokens {
			styles[s] = true
		}
		for _, s := range it.SeasonTokens {
			seasons[s] = true
		}
		for _, c := range it.ColorTokens {
			colors[c] = true
		}
		if it.Name != "" {
			names[it.Name] = true
		}
	}

	return models.OptionsResponse{
		Styles:  append([]string{models.AnyChoice}, sortedKeys(styles)...),
		Seasons: append([]string{models.AnyChoice}, sortedKeys(seasons)...),
		Colors:  append([]string{models.AnyChoice}, sortedKeys(colors)...),
		Names:   sortedKeys(names),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
