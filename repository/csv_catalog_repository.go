package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"outfiter/models"
	"outfiter/utils"
)

// CSVCatalogRepository reads the catalog from a CSV file on disk
type CSVCatalogRepository struct {
	path string
}

// NewCSVCatalogRepository creates a new CSVCatalogRepository
func NewCSVCatalogRepository(path string) *CSVCatalogRepository {
	return &CSVCatalogRepository{
		path: path,
	}
}

// Ensure CSVCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CSVCatalogRepository)(nil)

// LoadRows reads and normalizes every row of the CSV file
func (r *CSVCatalogRepository) LoadRows(ctx context.Context) ([]models.CatalogRow, error) {
	log.Info().Str("path", r.path).Msg("📂 Reading catalog CSV")

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := ParseCatalogCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", r.path, err)
	}
	return rows, nil
}

// ParseCatalogCSV parses catalog rows from CSV content with a header line
// Header names are trimmed ("Style " -> "Style"); missing columns default to ""
func ParseCatalogCSV(r io.Reader) ([]models.CatalogRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog is empty: missing header line")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := utils.ColumnIndex(header)

	var missing []string
	for _, column := range utils.CatalogColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		log.Warn().Strs("columns", missing).Msg("⚠️  Catalog columns missing, defaulting to empty values")
	}

	var rows []models.CatalogRow
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if isBlankRecord(record) {
			continue
		}
		rows = append(rows, utils.MapRecordToRow(index, record))
	}

	log.Info().Int("rows", len(rows)).Msg("✓ Catalog CSV parsed")
	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
