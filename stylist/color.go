package stylist

import (
	"outfiter/models"
	"outfiter/utils"
)

// neutralColors go with anything
var neutralColors = map[string]bool{
	"black": true,
	"white": true,
	"grey":  true,
	"gray":  true,
	"beige": true,
	"cream": true,
	"navy":  true,
	"brown": true,
}

// ColorScore returns the sampling weight of itemColor next to baseColor
//   - either color unknown: 1
//   - either color neutral: 2
//   - same color: 3
//   - otherwise: 1
func ColorScore(baseColor, itemColor string) int {
	base := utils.Normalize(baseColor)
	color := utils.Normalize(itemColor)
	if base == "" || color == "" {
		return 1
	}
	if neutralColors[base] || neutralColors[color] {
		return 2
	}
	if base == color {
		return 3
	}
	return 1
}

// WeightedPick draws one item, weighting each by ColorScore against its primary color
// Returns nil for an empty list
func WeightedPick(rng Rand, items []*models.Item, baseColor string) *models.Item {
	if len(items) == 0 {
		return nil
	}

	weights := make([]int, len(items))
	total := 0
	for i, it := range items {
		weights[i] = ColorScore(baseColor, it.PrimaryColor)
		total += weights[i]
	}

	r := rng.IntN(total)
	for i, w := range weights {
		if r < w {
			return items[i]
		}
		r -= w
	}
	return items[len(items)-1]
}

// PickOne draws one item uniformly; returns nil for an empty list
func PickOne(rng Rand, items []*models.Item) *models.Item {
	if len(items) == 0 {
		return nil
	}
	return items[rng.IntN(len(items))]
}
