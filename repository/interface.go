package repository

import (
	"context"

	"outfiter/models"
)

// CatalogRepositoryInterface defines the contract for reading the clothing catalog
// Rows are returned in catalog order, already column-normalized and trimmed
type CatalogRepositoryInterface interface {
	LoadRows(ctx context.Context) ([]models.CatalogRow, error)
}

// FileDownloaderInterface defines the contract for fetching a remote file's content
type FileDownloaderInterface interface {
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}
