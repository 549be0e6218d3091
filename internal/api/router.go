package api

import (
	"net/http"

	"consignment-intake-service/internal/api/handlers"
	"consignment-intake-service/internal/ports"
)

// Deps carries everything the HTTP surface needs, all behind ports so the
// handlers stay unaware of concrete adapters.
type Deps struct {
	Limiter       ports.RateLimiter
	Mailer        ports.Mailer
	Store         ports.SubmissionStore
	Catalog       ports.CatalogRepository
	StaticCatalog ports.CatalogRepository
	ClientKey     KeyFunc
	ConfigureURL  string
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(deps Deps) http.Handler {
	if deps.ClientKey == nil {
		deps.ClientKey = DefaultKeyFunc(false)
	}
	if deps.ConfigureURL == "" {
		deps.ConfigureURL = "/setup"
	}

	mux := http.NewServeMux()

	consignHandler := &handlers.ConsignHandler{
		Limiter:      deps.Limiter,
		Mailer:       deps.Mailer,
		Store:        deps.Store,
		ClientKey:    deps.ClientKey,
		ConfigureURL: deps.ConfigureURL,
	}
	catalogHandler := &handlers.CatalogHandler{
		Repo:   deps.Catalog,
		Static: deps.StaticCatalog,
	}
	adminHandler := &handlers.AdminHandler{
		Store:        deps.Store,
		ConfigureURL: deps.ConfigureURL,
	}
	statusHandler := &handlers.StatusHandler{
		Mailer: deps.Mailer,
		Store:  deps.Store,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/consign", consignHandler.Submit)
	mux.HandleFunc("/catalog", catalogHandler.List)
	mux.HandleFunc("/admin/submissions", adminHandler.ListSubmissions)
	mux.HandleFunc("/status", statusHandler.Status)

	return loggingMiddleware(mux)
}
