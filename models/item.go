package models

import "strings"

// CatalogRow represents a raw catalog row after column normalization
// Every field is trimmed; missing columns are empty strings
type CatalogRow struct {
	Name         string `json:"name"`         // CLOTHES NAME
	Category     string `json:"category"`     // Category (e.g., "Layer, Top")
	Style        string `json:"style"`        // Style
	StyleVariant string `json:"styleVariant"` // Style Jean (e.g., "Baggy")
	Temperature  string `json:"temperature"`  // Temp (e.g., "+20°", "-20°")
	Season       string `json:"season"`       // Season (e.g., "Others, Summer")
	Colors       string `json:"colors"`       // Colors (first one is the primary color)
	Brand        string `json:"brand"`        // Brand
}

// Item represents a catalog item with its lookup tokens derived once at load
// Items are read-only after construction
type Item struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Style        string `json:"style"`
	StyleVariant string `json:"styleVariant"`
	Temperature  string `json:"temperature"`
	Season       string `json:"season"`
	Colors       string `json:"colors"`
	Brand        string `json:"brand"`

	CategoryTokens    []string `json:"categoryTokens"`
	StyleTokens       []string `json:"styleTokens"`
	SeasonTokens      []string `json:"seasonTokens"`
	TemperatureTokens []string `json:"temperatureTokens"` // Subset of {"warm", "cold"}, never empty
	ColorTokens       []string `json:"colorTokens"`
	PrimaryColor      string   `json:"primaryColor"`
	IsShortGarment    bool     `json:"isShortGarment"`
	IsBaggyVariant    bool     `json:"isBaggyVariant"`
}

// HasCategory reports whether the item is tagged with the normalized category
func (it *Item) HasCategory(category string) bool {
	return containsToken(it.CategoryTokens, category)
}

// HasStyle reports whether the item is tagged with the normalized style
func (it *Item) HasStyle(style string) bool {
	return containsToken(it.StyleTokens, style)
}

// HasSeason reports whether the item is tagged with the normalized season
func (it *Item) HasSeason(season string) bool {
	return containsToken(it.SeasonTokens, season)
}

// HasColor reports whether any of the item colors equals the normalized color
func (it *Item) HasColor(color string) bool {
	return containsToken(it.ColorTokens, color)
}

// HasTemperature reports whether the item carries the temperature token ("warm" or "cold")
func (it *Item) HasTemperature(token string) bool {
	return containsToken(it.TemperatureTokens, token)
}

// Label returns the display text: name plus "brand · colors" when present
func (it *Item) Label() string {
	if it == nil {
		return "—"
	}
	var details []string
	if it.Brand != "" {
		details = append(details, it.Brand)
	}
	if it.Colors != "" {
		details = append(details, it.Colors)
	}
	if len(details) == 0 {
		return it.Name
	}
	return it.Name + " (" + strings.Join(details, " · ") + ")"
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
