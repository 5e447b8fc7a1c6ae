package service

import (
	"context"

	"outfiter/models"
)

// CatalogServiceInterface defines the contract for catalog loading
type CatalogServiceInterface interface {
	LoadItems(ctx context.Context) ([]models.Item, error)
}

// OutfitServiceInterface defines the contract for outfit generation operations
type OutfitServiceInterface interface {
	// GenerateBest runs the retry loop and keeps the outfit including the most forced items
	GenerateBest(ctx context.Context, c models.Constraints) (*models.OutfitResult, error)
	// GenerateOnce runs a single composition attempt
	GenerateOnce(ctx context.Context, c models.Constraints) (*models.OutfitResult, error)
	Options() models.OptionsResponse
	Items(category string, temperature int, style, season string) []models.Item
}
