package models

import "strings"

// AnyChoice is the selector value that disables a style/season/color filter
const AnyChoice = "any"

// Slot names
const (
	SlotLayer  = "LAYER"
	SlotTop    = "TOP"
	SlotBottom = "BOTTOM"
	SlotShoes  = "SHOES"
)

// Constraints represents the user selection for a single generation request
type Constraints struct {
	Temperature int      // Temperature in °C
	Style       string   // Style or "any"
	Season      string   // Season or "any"
	Color       string   // Color preference or "any"
	MustHave    []string // Forced item names, deduplicated, order kept
}

// NewConstraints builds Constraints, normalizing selectors and deduplicating must-have names
// Empty selectors are treated as "any"
func NewConstraints(temperature int, style, season, color string, mustHave []string) Constraints {
	seen := make(map[string]bool, len(mustHave))
	names := make([]string, 0, len(mustHave))
	for _, name := range mustHave {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return Constraints{
		Temperature: temperature,
		Style:       normalizeChoice(style),
		Season:      normalizeChoice(season),
		Color:       normalizeChoice(color),
		MustHave:    names,
	}
}

func normalizeChoice(choice string) string {
	c := strings.ToLower(strings.TrimSpace(choice))
	if c == "" {
		return AnyChoice
	}
	return c
}

// Outfit represents one outfit; Layer may be nil
type Outfit struct {
	Layer  *Item `json:"layer"`
	Top    *Item `json:"top"`
	Bottom *Item `json:"bottom"`
	Shoes  *Item `json:"shoes"`
}

// Names returns the names of all filled slots
func (o *Outfit) Names() []string {
	var names []string
	for _, it := range []*Item{o.Layer, o.Top, o.Bottom, o.Shoes} {
		if it != nil {
			names = append(names, it.Name)
		}
	}
	return names
}

// OutfitResult represents a composed outfit with its warnings and unplaced forced items
type OutfitResult struct {
	Outfit   Outfit   `json:"outfit"`
	Warnings []string `json:"warnings"`
	Extras   []*Item  `json:"extras"`
	Score    int      `json:"score"`    // Forced items accounted for
	Attempts int      `json:"attempts"` // Composer runs used
}
