package repository

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"outfiter/models"
)

// DriveCatalogRepository reads the catalog CSV stored as a Google Drive file
type DriveCatalogRepository struct {
	downloader FileDownloaderInterface
	fileID     string
}

// NewDriveCatalogRepository creates a new DriveCatalogRepository
func NewDriveCatalogRepository(downloader FileDownloaderInterface, fileID string) *DriveCatalogRepository {
	return &DriveCatalogRepository{
		downloader: downloader,
		fileID:     fileID,
	}
}

// Ensure DriveCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*DriveCatalogRepository)(nil)

// LoadRows downloads the catalog file and parses it as CSV
func (r *DriveCatalogRepository) LoadRows(ctx context.Context) ([]models.CatalogRow, error) {
	log.Info().Str("file_id", r.fileID).Msg("☁️  Downloading catalog from Google Drive")

	data, err := r.downloader.DownloadFile(ctx, r.fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog %s: %w", r.fileID, err)
	}

	rows, err := ParseCatalogCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", r.fileID, err)
	}
	return rows, nil
}
