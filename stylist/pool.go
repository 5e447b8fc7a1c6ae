package stylist

import (
	"outfiter/models"
	"outfiter/utils"
)

// PoolFor returns the catalog items of a category matching style, season and temperature
// Items are returned in catalog order
func (e *Engine) PoolFor(category string, temperature int, style, season string) []*models.Item {
	category = utils.Normalize(category)

	var pool []*models.Item
	for i := range e.items {
		it := &e.items[i]
		if !it.HasCategory(category) {
			continue
		}
		if matchesStyle(it, style) && matchesSeason(it, season) && matchesTemp(it, temperature) {
			pool = append(pool, it)
		}
	}
	return pool
}

// categoryItems returns every catalog item of a category, ignoring all other filters
func (e *Engine) categoryItems(category string) []*models.Item {
	var out []*models.Item
	for i := range e.items {
		if e.items[i].HasCategory(category) {
			out = append(out, &e.items[i])
		}
	}
	return out
}

func isAny(choice string) bool {
	return choice == "" || utils.Normalize(choice) == models.AnyChoice
}

func matchesStyle(it *models.Item, style string) bool {
	if isAny(style) {
		return true
	}
	return it.HasStyle(utils.Normalize(style))
}

func matchesSeason(it *models.Item, season string) bool {
	if isAny(season) {
		return true
	}
	return it.HasSeason(utils.Normalize(season))
}

// matchesTemp only checks tokens at the extremes, and there any tagged item passes.
// Temperature tokens are never empty, so in practice no item is excluded; the mild
// range (1..24) accepts everything to keep pools large.
func matchesTemp(it *models.Item, temperature int) bool {
	if temperature >= WarmTemperature {
		return it.HasTemperature(utils.TempWarm) || it.HasTemperature(utils.TempCold)
	}
	if temperature <= ColdTemperature {
		return it.HasTemperature(utils.TempCold) || it.HasTemperature(utils.TempWarm)
	}
	return true
}

// filterItems returns the items satisfying keep, preserving order
func filterItems(items []*models.Item, keep func(*models.Item) bool) []*models.Item {
	var out []*models.Item
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func isBaggy(it *models.Item) bool    { return it.IsBaggyVariant }
func isNotShort(it *models.Item) bool { return !it.IsShortGarment }
