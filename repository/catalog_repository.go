package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"outfiter/db"
	"outfiter/models"
	"outfiter/utils"
)

// PostgresCatalogRepository reads the catalog from the clothes table
type PostgresCatalogRepository struct{}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository
func NewPostgresCatalogRepository() *PostgresCatalogRepository {
	return &PostgresCatalogRepository{}
}

// Ensure PostgresCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*PostgresCatalogRepository)(nil)

// LoadRows retrieves all active clothes in insertion order
func (r *PostgresCatalogRepository) LoadRows(ctx context.Context) ([]models.CatalogRow, error) {
	log.Info().Msg("🔍 LoadRows: Fetching clothes from database")

	query := `
		SELECT
			COALESCE(name, '') as name,
			COALESCE(category, '') as category,
			COALESCE(style, '') as style,
			COALESCE(style_jean, '') as style_jean,
			COALESCE(temp, '') as temp,
			COALESCE(season, '') as season,
			COALESCE(colors, '') as colors,
			COALESCE(brand, '') as brand
		FROM clothes
		WHERE is_active = true
		ORDER BY id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("❌ Error querying clothes")
		return nil, fmt.Errorf("failed to query clothes: %w", err)
	}
	defer rows.Close()

	var catalog []models.CatalogRow
	for rows.Next() {
		var row models.CatalogRow
		err := rows.Scan(
			&row.Name,
			&row.Category,
			&row.Style,
			&row.StyleVariant,
			&row.Temperature,
			&row.Season,
			&row.Colors,
			&row.Brand,
		)
		if err != nil {
			log.Error().Err(err).Msg("❌ Error scanning clothes row")
			return nil, fmt.Errorf("failed to scan clothes row: %w", err)
		}
		catalog = append(catalog, utils.NormalizeRow(row))
	}

	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("❌ Error iterating clothes")
		return nil, fmt.Errorf("failed to iterate clothes: %w", err)
	}

	log.Info().Int("rows", len(catalog)).Msg("✓ Successfully fetched clothes")
	return catalog, nil
}
