package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"outfiter/models"
	"outfiter/service"
)

// CatalogController handles HTTP requests for the normalized catalog
type CatalogController struct {
	service service.OutfitServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(svc service.OutfitServiceInterface) *CatalogController {
	return &CatalogController{
		service: svc,
	}
}

// ListItems handles GET /catalog/items
// Optional query params: category, temperature, style, season
// Without category the whole catalog is returned; with it the pool filter is applied
func (c *CatalogController) ListItems(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	q := r.URL.Query()

	temperature := DefaultTemperature
	if raw := strings.TrimSpace(q.Get("temperature")); raw != "" {
		t, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn().Str("temperature", raw).Msg("❌ ListItems: Invalid temperature")
			writeError(w, http.StatusBadRequest, "temperature must be an integer")
			return
		}
		temperature = t
	}

	style := orAny(q.Get("style"))
	season := orAny(q.Get("season"))
	items := c.service.Items(q.Get("category"), temperature, style, season)

	logger.Info().Int("count", len(items)).Str("category", q.Get("category")).Msg("✓ ListItems: Items listed")
	writeJSON(w, http.StatusOK, items)
}

func orAny(v string) string {
	if strings.TrimSpace(v) == "" {
		return models.AnyChoice
	}
	return v
}
