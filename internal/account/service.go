package account

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"autobox/internal/audit"
	"autobox/internal/platform/metrics"
	"autobox/internal/validation"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/platform/sentinel"
	"autobox/pkg/requestcontext"
)

// Service registers and authenticates accounts. Token issuance is not its
// business; the transport layer exchanges an authenticated account for a
// token.
type Service struct {
	store   Store
	auditor audit.Publisher
	metrics *metrics.Metrics
}

func NewService(store Store, auditor audit.Publisher, m *metrics.Metrics) *Service {
	return &Service{store: store, auditor: auditor, metrics: m}
}

// Register validates the form, hashes the password and creates the account.
// Field-level failures come back in fieldErrors with err nil; a taken email
// surfaces as CodeConflict.
func (s *Service) Register(ctx context.Context, input RegisterInput) (a *Account, fieldErrors map[string]string, err error) {
	result := validation.ValidateForm(map[string]string{
		"email":       input.Email,
		"national_id": input.NationalID,
		"phone":       input.Phone,
		"full_name":   input.FullName,
		"password":    input.Password,
	}, validation.Rules{
		"email":       validation.Email,
		"national_id": validation.NationalID,
		"phone":       validation.Phone,
		"full_name":   validation.Required("Name"),
		"password":    validation.MinLength("Password", 8),
	})
	if !result.Valid {
		return nil, result.Errors, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	now := requestcontext.Now(ctx)
	created, err := s.store.Insert(ctx, &Account{
		Email:        strings.TrimSpace(input.Email),
		NationalID:   strings.TrimSpace(input.NationalID),
		Phone:        strings.TrimSpace(input.Phone),
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, nil, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create account")
	}

	if s.metrics != nil {
		s.metrics.AccountsRegistered.Inc()
	}
	if s.auditor != nil {
		s.auditor.Record(ctx, audit.ActionAccountRegistered, created.ID, created.ID, "")
	}
	return created, nil, nil
}

// Authenticate checks credentials. The three failure modes carry distinct
// codes: unknown email (not found), inactive account (forbidden) and wrong
// password (unauthorized).
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	a, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "account not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up account")
	}
	if !a.Active {
		return nil, dErrors.New(dErrors.CodeForbidden, "account is inactive")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	return a, nil
}
