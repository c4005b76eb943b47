package httptransport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"autobox/internal/account"
	"autobox/internal/transport/http/mocks"
	dErrors "autobox/pkg/domain-errors"
)

type stubIssuer struct{}

func (stubIssuer) Issue(int64, string, time.Time) (string, error) {
	return "token-123", nil
}

func jsonRequest(t *testing.T, target string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
}

func TestLoginIssuesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountService(ctrl)
	h := NewAuthHandler(accounts, stubIssuer{}, discardLogger())

	accounts.EXPECT().
		Authenticate(gomock.Any(), "maria@example.com", "correct-horse").
		Return(&account.Account{ID: 7, Email: "maria@example.com", Active: true}, nil)

	rec := httptest.NewRecorder()
	h.login(rec, jsonRequest(t, "/api/auth/login", loginRequest{
		Email:    "maria@example.com",
		Password: "correct-horse",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, int64(7), resp.Account.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountService(ctrl)
	h := NewAuthHandler(accounts, stubIssuer{}, discardLogger())

	accounts.EXPECT().
		Authenticate(gomock.Any(), "maria@example.com", "wrong").
		Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"))

	rec := httptest.NewRecorder()
	h.login(rec, jsonRequest(t, "/api/auth/login", loginRequest{
		Email:    "maria@example.com",
		Password: "wrong",
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterFieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountService(ctrl)
	h := NewAuthHandler(accounts, stubIssuer{}, discardLogger())

	accounts.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, map[string]string{"email": "Email format is not valid"}, nil)

	rec := httptest.NewRecorder()
	h.register(rec, jsonRequest(t, "/api/auth/register", account.RegisterInput{Email: "nope"}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp registerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Email format is not valid", resp.Errors["email"])
}

func TestRegisterCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountService(ctrl)
	h := NewAuthHandler(accounts, stubIssuer{}, discardLogger())

	accounts.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&account.Account{ID: 7, Email: "maria@example.com", Active: true}, nil, nil)

	rec := httptest.NewRecorder()
	h.register(rec, jsonRequest(t, "/api/auth/register", account.RegisterInput{
		Email:      "maria@example.com",
		NationalID: "12345678-5",
		Phone:      "+56 9 1234 5678",
		FullName:   "Maria Gonzalez",
		Password:   "correct-horse",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp registerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, int64(7), resp.Account.ID)
}
