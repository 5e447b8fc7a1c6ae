package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"outfiter/app/controller"
	"outfiter/app/router"
	"outfiter/config"
	"outfiter/db"
	"outfiter/metrics"
	"outfiter/repository"
	"outfiter/service"
	"outfiter/stylist"
)

// Initialize loads the catalog once and builds the HTTP handler.
// A catalog that cannot be read is fatal: the error is returned to main.
func Initialize(ctx context.Context, cfg config.Config) (http.Handler, error) {
	catalogRepo, err := newCatalogRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	items, err := service.NewCatalogService(catalogRepo).LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}
	if len(items) == 0 {
		log.Warn().Msg("⚠️  Catalog is empty, every generation will fail")
	}

	reg := metrics.NewRegistry()
	engine := stylist.NewEngine(items,
		stylist.WithMaxAttempts(cfg.MaxAttempts),
		stylist.WithRecorder(reg),
	)
	outfitService := service.NewOutfitService(engine)

	// Create controllers
	controllers := &router.Controllers{
		Outfit:  controller.NewOutfitController(outfitService),
		Catalog: controller.NewCatalogController(outfitService),
	}

	return router.SetupRoutes(controllers, reg), nil
}

// newCatalogRepository selects the catalog source from the configuration
func newCatalogRepository(ctx context.Context, cfg config.Config) (repository.CatalogRepositoryInterface, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		if err := db.InitDB(ctx, cfg.PostgresDSN()); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewPostgresCatalogRepository(), nil
	case config.CatalogSourceDrive:
		driveService, err := service.NewDriveService(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		return repository.NewDriveCatalogRepository(driveService, cfg.DriveCatalogFileID), nil
	default:
		return repository.NewCSVCatalogRepository(cfg.CatalogPath), nil
	}
}
