package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"autobox/internal/platform/middleware"
	"autobox/pkg/platform/httputil"
)

// ListingHandler serves the published listings read side.
type ListingHandler struct {
	listings ListingReader
}

func NewListingHandler(listings ListingReader) *ListingHandler {
	return &ListingHandler{listings: listings}
}

func (h *ListingHandler) Register(r chi.Router) {
	r.Get("/listings", h.active)
}

func (h *ListingHandler) active(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.ListActive(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listings)
}

// mine lists the authenticated seller's listings regardless of status.
func (h *ListingHandler) mine(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.ListBySeller(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listings)
}
