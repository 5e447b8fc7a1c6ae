package service

import (
	"context"

	"github.com/rs/zerolog"

	"outfiter/models"
	"outfiter/stylist"
)

// OutfitService exposes the stylist engine to the HTTP layer
// Implements OutfitServiceInterface
type OutfitService struct {
	engine  *stylist.Engine
	options models.OptionsResponse
}

// NewOutfitService creates a new OutfitService; form options are computed once
func NewOutfitService(engine *stylist.Engine) *OutfitService {
	return &OutfitService{
		engine:  engine,
		options: BuildOptions(engine.Items()),
	}
}

// Ensure OutfitService implements OutfitServiceInterface
var _ OutfitServiceInterface = (*OutfitService)(nil)

// GenerateBest runs the retry loop
func (s *OutfitService) GenerateBest(ctx context.Context, c models.Constraints) (*models.OutfitResult, error) {
	zerolog.Ctx(ctx).Info().
		Int("temperature", c.Temperature).
		Str("style", c.Style).
		Str("season", c.Season).
		Str("color", c.Color).
		Strs("must_have", c.MustHave).
		Msg("🎲 Generating outfit")

	return s.engine.GenerateBestOutfit(ctx, c)
}

// GenerateOnce runs a single composition attempt
func (s *OutfitService) GenerateOnce(ctx context.Context, c models.Constraints) (*models.OutfitResult, error) {
	result, err := s.engine.GenerateOutfit(c)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("⚠️  Single attempt failed")
		return nil, err
	}
	result.Score = stylist.SatisfactionScore(c.MustHave, result)
	result.Attempts = 1
	return result, nil
}

// Options returns the selectable values of the input form
func (s *OutfitService) Options() models.OptionsResponse {
	return s.options
}

// Items returns catalog items; with a category they go through the pool filter
func (s *OutfitService) Items(category string, temperature int, style, season string) []models.Item {
	if category == "" {
		items := s.engine.Items()
		out := make([]models.Item, len(items))
		copy(out, items)
		return out
	}

	pool := s.engine.PoolFor(category, temperature, style, season)
	out := make([]models.Item, 0, len(pool))
	for _, it := range pool {
		out = append(out, *it)
	}
	return out
}
