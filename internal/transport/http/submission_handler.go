package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"autobox/internal/platform/middleware"
	"autobox/internal/submission"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/platform/httputil"
)

// SubmissionHandler serves the listing submission endpoint.
type SubmissionHandler struct {
	svc    SubmissionService
	logger *slog.Logger
}

func NewSubmissionHandler(svc SubmissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, logger: logger}
}

func (h *SubmissionHandler) Register(r chi.Router) {
	r.Post("/vehicles/listings", h.submit)
}

func (h *SubmissionHandler) submit(w http.ResponseWriter, r *http.Request) {
	var form submission.RawForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	accountID := middleware.GetAccountID(r.Context())
	result, err := h.svc.Submit(r.Context(), accountID, accountID, form)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if !result.OK {
		httputil.WriteJSON(w, http.StatusBadRequest, result)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, result)
}
