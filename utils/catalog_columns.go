package utils

import (
	"strings"

	"outfiter/models"
)

// Catalog column names as they appear in the source sheet
const (
	ColumnName         = "CLOTHES NAME"
	ColumnCategory     = "Category"
	ColumnStyle        = "Style"
	ColumnStyleVariant = "Style Jean"
	ColumnTemperature  = "Temp"
	ColumnSeason       = "Season"
	ColumnColors       = "Colors"
	ColumnBrand        = "Brand"
)

// CatalogColumns lists the expected columns in sheet order
var CatalogColumns = []string{
	ColumnName,
	ColumnCategory,
	ColumnStyle,
	ColumnStyleVariant,
	ColumnTemperature,
	ColumnSeason,
	ColumnColors,
	ColumnBrand,
}

// NormalizeColumnName trims surrounding whitespace from a header cell
// The source sheet ships headers like "Style " with a trailing space
func NormalizeColumnName(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
}

// ColumnIndex maps normalized header names to their position
// The first occurrence wins when a header is duplicated
func ColumnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := NormalizeColumnName(h)
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

// MapRecordToRow builds a CatalogRow from a record using a header index
// Missing columns and short records default to ""; values are trimmed
func MapRecordToRow(index map[string]int, record []string) models.CatalogRow {
	get := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	return models.CatalogRow{
		Name:         get(ColumnName),
		Category:     get(ColumnCategory),
		Style:        get(ColumnStyle),
		StyleVariant: get(ColumnStyleVariant),
		Temperature:  get(ColumnTemperature),
		Season:       get(ColumnSeason),
		Colors:       get(ColumnColors),
		Brand:        get(ColumnBrand),
	}
}

// NormalizeRow trims every field of a row
func NormalizeRow(row models.CatalogRow) models.CatalogRow {
	return models.CatalogRow{
		Name:         strings.TrimSpace(row.Name),
		Category:     strings.TrimSpace(row.Category),
		Style:        strings.TrimSpace(row.Style),
		StyleVariant: strings.TrimSpace(row.StyleVariant),
		Temperature:  strings.TrimSpace(row.Temperature),
		Season:       strings.TrimSpace(row.Season),
		Colors:       strings.TrimSpace(row.Colors),
		Brand:        strings.TrimSpace(row.Brand),
	}
}
