package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"autobox/internal/account"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/platform/httputil"
	"autobox/pkg/requestcontext"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	accounts AccountService
	issuer   TokenIssuer
	logger   *slog.Logger
}

func NewAuthHandler(accounts AccountService, issuer TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, issuer: issuer, logger: logger}
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)
}

type registerResponse struct {
	OK      bool              `json:"ok"`
	Errors  map[string]string `json:"errors,omitempty"`
	Account *account.Account  `json:"account,omitempty"`
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var input account.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	created, fieldErrors, err := h.accounts.Register(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if len(fieldErrors) > 0 {
		httputil.WriteJSON(w, http.StatusBadRequest, registerResponse{OK: false, Errors: fieldErrors})
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, registerResponse{OK: true, Account: created})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string           `json:"token"`
	Account *account.Account `json:"account"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	a, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	token, err := h.issuer.Issue(a.ID, a.Email, requestcontext.Now(r.Context()))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, loginResponse{Token: token, Account: a})
}
