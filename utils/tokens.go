package utils

import (
	"regexp"
	"strings"

	"outfiter/models"
)

// Temperature tokens
const (
	TempWarm = "warm"
	TempCold = "cold"
)

var tokenSeparators = regexp.MustCompile(`[,|/]+`)

// Normalize trims and lowercases a free-text value
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitTokens splits a free-text field on commas, pipes and slashes
// Tokens are trimmed and lowercased; empty tokens are dropped
// Example: "Layer, Top" -> ["layer", "top"]
func SplitTokens(raw string) []string {
	if raw == "" {
		return nil
	}
	var tokens []string
	for _, part := range tokenSeparators.Split(raw, -1) {
		if token := Normalize(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// TemperatureTokens derives temperature suitability from the Temp column
// The catalog encodes it as free text ("+20°", "-20°"), so this is a substring match:
//   - "+20" -> warm
//   - "-20" -> cold
//   - neither -> warm and cold (usable at any temperature)
func TemperatureTokens(raw string) []string {
	t := Normalize(raw)
	var tokens []string
	if strings.Contains(t, "+20") {
		tokens = append(tokens, TempWarm)
	}
	if strings.Contains(t, "-20") {
		tokens = append(tokens, TempCold)
	}
	if len(tokens) == 0 {
		tokens = []string{TempWarm, TempCold}
	}
	return tokens
}

// PrimaryColor returns the first color token, or "" when there is none
func PrimaryColor(colors string) string {
	tokens := SplitTokens(colors)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// IsShortGarment reports whether the item name contains "short"
func IsShortGarment(name string) bool {
	return strings.Contains(Normalize(name), "short")
}

// IsBaggyVariant reports whether the Style Jean value is "baggy"
func IsBaggyVariant(styleVariant string) bool {
	return Normalize(styleVariant) == "baggy"
}

// IsSpecialVampShoe reports whether the shoe name triggers the baggy-bottom rule
func IsSpecialVampShoe(name string) bool {
	return strings.Contains(Normalize(name), "erl vamp")
}

// BuildItem converts a normalized catalog row into an Item with all tokens derived
func BuildItem(row models.CatalogRow) models.Item {
	return models.Item{
		Name:         row.Name,
		Category:     row.Category,
		Style:        row.Style,
		StyleVariant: row.StyleVariant,
		Temperature:  row.Temperature,
		Season:       row.Season,
		Colors:       row.Colors,
		Brand:        row.Brand,

		CategoryTokens:    SplitTokens(row.Category),
		StyleTokens:       SplitTokens(row.Style),
		SeasonTokens:      SplitTokens(row.Season),
		TemperatureTokens: TemperatureTokens(row.Temperature),
		ColorTokens:       SplitTokens(row.Colors),
		PrimaryColor:      PrimaryColor(row.Colors),
		IsShortGarment:    IsShortGarment(row.Name),
		IsBaggyVariant:    IsBaggyVariant(row.StyleVariant),
	}
}

// BuildItems converts rows into items, keeping catalog order
func BuildItems(rows []models.CatalogRow) []models.Item {
	items := make([]models.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, BuildItem(row))
	}
	return items
}
