// Package httptransport exposes the marketplace over HTTP.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"autobox/internal/platform/middleware"
	"autobox/pkg/platform/httputil"
	"autobox/pkg/platform/middleware/metadata"
	"autobox/pkg/platform/middleware/requesttime"
)

// Deps is everything the router wires together.
type Deps struct {
	Logger     *slog.Logger
	Validator  middleware.JWTValidator
	Issuer     TokenIssuer
	Submission SubmissionService
	Accounts   AccountService
	Catalog    CatalogService
	Listings   ListingReader
}

// New assembles the full route tree.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	listings := NewListingHandler(deps.Listings)
	r.Route("/api", func(r chi.Router) {
		NewAuthHandler(deps.Accounts, deps.Issuer, deps.Logger).Register(r)
		NewCatalogHandler(deps.Catalog).Register(r)
		listings.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(deps.Validator, deps.Logger))
			NewSubmissionHandler(deps.Submission, deps.Logger).Register(r)
			r.Get("/me/listings", listings.mine)
		})
	})

	return r
}
