package stylist

import (
	"fmt"

	"outfiter/models"
	"outfiter/utils"
)

// forcedSlots holds the must-have items placed into a slot
type forcedSlots struct {
	shoes  *models.Item
	bottom *models.Item
	layer  *models.Item
	top    *models.Item
}

// GenerateOutfit runs a single composition attempt
// A *SlotUnsatisfiableError is returned when shoes, bottom or top cannot be filled
func (e *Engine) GenerateOutfit(c models.Constraints) (*models.OutfitResult, error) {
	return e.compose(c, e.rng)
}

func (e *Engine) compose(c models.Constraints, rng Rand) (*models.OutfitResult, error) {
	var warnings []string
	temp := c.Temperature

	// Pools
	tops := e.PoolFor(CategoryTop, temp, c.Style, c.Season)
	bottoms := e.PoolFor(CategoryBottom, temp, c.Style, c.Season)
	shoes := e.PoolFor(CategoryShoes, temp, c.Style, c.Season)
	layers := e.PoolFor(CategoryLayer, temp, c.Style, c.Season)

	forced, extras := e.placeForced(c.MustHave)

	// Color preference is soft: an emptied pool keeps its original items.
	// Slots filled by a forced item never draw from their pool, so they get no warning.
	topsC, relaxed := preferColor(tops, c.Color)
	warnings = appendColorWarning(warnings, relaxed && forced.top == nil, c.Color, CategoryTop)
	bottomsC, relaxed := preferColor(bottoms, c.Color)
	warnings = appendColorWarning(warnings, relaxed && forced.bottom == nil, c.Color, CategoryBottom)
	shoesC, relaxed := preferColor(shoes, c.Color)
	warnings = appendColorWarning(warnings, relaxed && forced.shoes == nil, c.Color, CategoryShoes)
	layersC, relaxed := preferColor(layers, c.Color)
	if temp < LayerMaxTemperature {
		warnings = appendColorWarning(warnings, relaxed && forced.layer == nil, c.Color, CategoryLayer)
	}

	// Shorts are only proposed from 25°C
	if temp < ShortsMinTemperature {
		bottomsC = e.gateShorts(bottomsC)
	}

	// Shoes
	shoe := forced.shoes
	if shoe == nil {
		shoe = PickOne(rng, shoesC)
	}
	if shoe == nil {
		return nil, slotError(models.SlotShoes, "no shoes found (Category=Shoes)")
	}

	// ERL VAMP shoes need a baggy bottom, searched in the whole catalog if the pool has none
	needBaggy := utils.IsSpecialVampShoe(shoe.Name)
	bottomPool := bottomsC
	if needBaggy {
		bottomPool = filterItems(bottomPool, isBaggy)
		if len(bottomPool) == 0 {
			bottomPool = filterItems(e.categoryItems(CategoryBottom), isBaggy)
		}
	}

	// Bottom
	bottom := forced.bottom
	if bottom == nil {
		bottom = PickOne(rng, bottomPool)
	}
	if bottom == nil {
		return nil, slotError(models.SlotBottom, "unable to choose a bottom (check baggy/short rules)")
	}

	bottom, ruleWarnings, err := applyRules(models.SlotBottom, bottom, bottomRules(rng, temp, needBaggy, bottomPool, bottoms))
	warnings = append(warnings, ruleWarnings...)
	if err != nil {
		return nil, err
	}

	baseColor := bottom.PrimaryColor

	// Top, matched against the bottom color
	top := forced.top
	if top == nil {
		top = WeightedPick(rng, topsC, baseColor)
	}
	if top == nil {
		top = PickOne(rng, topsC)
	}
	if top == nil {
		return nil, slotError(models.SlotTop, "no top found (Category=Top)")
	}

	// Below 20°C a layer is requested
	layer := forced.layer
	if temp < LayerMaxTemperature && layer == nil {
		layer = WeightedPick(rng, layersC, baseColor)
		if layer == nil {
			layer = PickOne(rng, layersC)
		}
		if layer == nil {
			warnings = append(warnings, "Temperature below 20°C, a layer is requested, but no item with Category=Layer was found in the catalog.")
		}
	}

	// A leftover forced top can serve as the layer
	if temp < LayerMaxTemperature && layer == nil {
		for i, extra := range extras {
			if extra.HasCategory(CategoryTop) {
				layer = extra
				extras = append(extras[:i:i], extras[i+1:]...)
				break
			}
		}
	}

	return &models.OutfitResult{
		Outfit: models.Outfit{
			Layer:  layer,
			Top:    top,
			Bottom: bottom,
			Shoes:  shoe,
		},
		Warnings: warnings,
		Extras:   extras,
	}, nil
}

// preferColor restricts a pool to items of the given color unless that empties it
// The second result reports whether the preference had to be dropped
func preferColor(pool []*models.Item, color string) ([]*models.Item, bool) {
	if isAny(color) {
		return pool, false
	}
	color = utils.Normalize(color)
	kept := filterItems(pool, func(it *models.Item) bool { return it.HasColor(color) })
	if len(kept) == 0 {
		return pool, len(pool) > 0
	}
	return kept, false
}

func appendColorWarning(warnings []string, relaxed bool, color, category string) []string {
	if !relaxed {
		return warnings
	}
	return append(warnings, fmt.Sprintf("No %s in color %q: color preference ignored for this slot.", category, utils.Normalize(color)))
}

// gateShorts drops short garments from the bottom pool.
// If nothing is left, non-short bottoms from the whole catalog are used; when the
// catalog has none at all the pool is kept as is and the shorts rule decides later.
func (e *Engine) gateShorts(bottoms []*models.Item) []*models.Item {
	gated := filterItems(bottoms, isNotShort)
	if len(gated) > 0 {
		return gated
	}
	fallback := filterItems(e.categoryItems(CategoryBottom), isNotShort)
	if len(fallback) > 0 {
		return fallback
	}
	return bottoms
}

// placeForced assigns must-have items to slots by priority shoes > bottom > layer > top.
// Items that fit no free slot are returned as extras; unknown names are ignored.
func (e *Engine) placeForced(mustHave []string) (forcedSlots, []*models.Item) {
	var forced forcedSlots
	var extras []*models.Item
	if len(mustHave) == 0 {
		return forced, extras
	}

	wanted := make(map[string]bool, len(mustHave))
	for _, name := range mustHave {
		wanted[name] = true
	}

	for i := range e.items {
		it := &e.items[i]
		if !wanted[it.Name] {
			continue
		}
		switch {
		case it.HasCategory(CategoryShoes) && forced.shoes == nil:
			forced.shoes = it
		case it.HasCategory(CategoryBottom) && forced.bottom == nil:
			forced.bottom = it
		case it.HasCategory(CategoryLayer) && forced.layer == nil:
			forced.layer = it
		case it.HasCategory(CategoryTop) && forced.top == nil:
			forced.top = it
		default:
			extras = append(extras, it)
		}
	}
	return forced, extras
}
