package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"outfiter/app/controller"
	"outfiter/metrics"
	"outfiter/middleware"
)

type Controllers struct {
	Outfit  *controller.OutfitController
	Catalog *controller.CatalogController
}

// SetupRoutes builds the HTTP router
func SetupRoutes(controllers *Controllers, reg *metrics.Registry) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(reg))

	// Ping endpoint
	r.HandleFunc("/ping", controller.PingHandler).Methods(http.MethodGet)

	// Outfit routes
	r.HandleFunc("/outfits/generate", controllers.Outfit.GenerateOutfit).Methods(http.MethodPost)
	r.HandleFunc("/outfits/attempt", controllers.Outfit.GenerateAttempt).Methods(http.MethodPost)
	r.HandleFunc("/outfits/options", controllers.Outfit.GetOptions).Methods(http.MethodGet)

	// Catalog routes
	r.HandleFunc("/catalog/items", controllers.Catalog.ListItems).Methods(http.MethodGet)

	// Counters
	if reg != nil {
		r.HandleFunc("/metrics", reg.Handler).Methods(http.MethodGet)
	}

	return r
}
