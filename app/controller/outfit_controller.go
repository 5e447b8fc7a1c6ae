package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"outfiter/models"
	"outfiter/service"
	"outfiter/stylist"
)

// DefaultTemperature is used when the request omits the temperature (°C)
const DefaultTemperature = 10

// OutfitController handles HTTP requests for outfit generation
type OutfitController struct {
	service service.OutfitServiceInterface
}

// NewOutfitController creates a new OutfitController
func NewOutfitController(svc service.OutfitServiceInterface) *OutfitController {
	return &OutfitController{
		service: svc,
	}
}

// GenerateOutfit handles POST /outfits/generate
// Runs the retry loop and returns the outfit including the most forced items
func (c *OutfitController) GenerateOutfit(w http.ResponseWriter, r *http.Request) {
	c.generate(w, r, c.service.GenerateBest)
}

// GenerateAttempt handles POST /outfits/attempt
// Runs a single composition attempt, failures included
func (c *OutfitController) GenerateAttempt(w http.ResponseWriter, r *http.Request) {
	c.generate(w, r, c.service.GenerateOnce)
}

type generateFunc func(ctx context.Context, constraints models.Constraints) (*models.OutfitResult, error)

func (c *OutfitController) generate(w http.ResponseWriter, r *http.Request, run generateFunc) {
	logger := zerolog.Ctx(r.Context())

	var req models.GenerateOutfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("❌ GenerateOutfit: Failed to decode request body")
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	temperature := DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	constraints := models.NewConstraints(temperature, req.Style, req.Season, req.Color, req.MustHave)

	result, err := run(r.Context(), constraints)
	if err != nil {
		var slotErr *stylist.SlotUnsatisfiableError
		if errors.Is(err, stylist.ErrNoOutfit) || errors.As(err, &slotErr) {
			logger.Warn().Err(err).Msg("⚠️  GenerateOutfit: No outfit")
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.Error().Err(err).Msg("❌ GenerateOutfit: Generation failed")
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate outfit: %v", err))
		return
	}

	logger.Info().Int("score", result.Score).Int("attempts", result.Attempts).Msg("✅ GenerateOutfit: Outfit ready")
	writeJSON(w, http.StatusOK, toOutfitResponse(result))
}

// GetOptions handles GET /outfits/options
func (c *OutfitController) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.service.Options())
}

func toOutfitResponse(result *models.OutfitResult) models.GenerateOutfitResponse {
	o := result.Outfit
	resp := models.GenerateOutfitResponse{
		Slots: []models.OutfitSlotView{
			slotView(models.SlotLayer, o.Layer),
			slotView(models.SlotTop, o.Top),
			slotView(models.SlotBottom, o.Bottom),
			slotView(models.SlotShoes, o.Shoes),
		},
		Extras:   make([]models.OutfitSlotView, 0, len(result.Extras)),
		Warnings: result.Warnings,
		Score:    result.Score,
		Attempts: result.Attempts,
	}
	for _, extra := range result.Extras {
		resp.Extras = append(resp.Extras, slotView("EXTRA", extra))
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	return resp
}

func slotView(slot string, it *models.Item) models.OutfitSlotView {
	return models.OutfitSlotView{
		Slot:  slot,
		Label: it.Label(),
		Item:  it,
	}
}
