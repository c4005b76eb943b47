package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/platform/httputil"
)

// CatalogHandler serves the reference data endpoints that fill the
// submission form's dropdowns.
type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/catalog/brands", h.brands)
	r.Get("/catalog/brands/{brandID}/models", h.models)
	r.Get("/catalog/regions", h.regions)
	r.Get("/catalog/regions/{regionID}/cities", h.cities)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "invalid id in path")
	}
	return id, nil
}

func (h *CatalogHandler) brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.svc.Brands(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, brands)
}

func (h *CatalogHandler) models(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathID(r, "brandID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	models, err := h.svc.ModelsByBrand(r.Context(), brandID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models)
}

func (h *CatalogHandler) regions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.svc.Regions(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, regions)
}

func (h *CatalogHandler) cities(w http.ResponseWriter, r *http.Request) {
	regionID, err := pathID(r, "regionID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cities, err := h.svc.CitiesByRegion(r.Context(), regionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cities)
}
