package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"outfiter/repository"
)

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath), option.WithScopes(drive.DriveReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements FileDownloaderInterface
var _ repository.FileDownloaderInterface = (*DriveService)(nil)

// DownloadFile downloads the content of a Drive file.
// Google Sheets are exported as CSV, regular files are downloaded as is.
func (ds *DriveService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := ds.client.Files.Get(fileID).Fields("id, name, mimeType").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file metadata: %w", err)
	}
	log.Info().Str("file_id", file.Id).Str("name", file.Name).Str("mime_type", file.MimeType).Msg("📄 Drive file found")

	var body io.ReadCloser
	if file.MimeType == "application/vnd.google-apps.spreadsheet" {
		resp, err := ds.client.Files.Export(fileID, "text/csv").Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("failed to export spreadsheet as csv: %w", err)
		}
		body = resp.Body
	} else {
		resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("failed to download file: %w", err)
		}
		body = resp.Body
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	log.Info().Int("bytes", len(data)).Msg("✓ Drive file downloaded")
	return data, nil
}
