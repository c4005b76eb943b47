package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"autobox/internal/listing"
	"autobox/internal/submission"
	"autobox/internal/transport/http/mocks"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/requestcontext"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func submitRequest(t *testing.T, accountID int64, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/listings", bytes.NewReader(raw))
	return req.WithContext(requestcontext.WithAccountID(req.Context(), accountID))
}

func TestSubmitHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSubmissionService(ctrl)
	h := NewSubmissionHandler(svc, discardLogger())

	form := submission.RawForm{Plate: "BBCD12", Price: "8500000", Mileage: "50000", CityID: "1000"}
	svc.EXPECT().
		Submit(gomock.Any(), int64(7), int64(7), form).
		Return(&submission.Result{
			OK: true,
			Listing: &listing.Detail{
				Listing: listing.Listing{ID: 1, Title: "Vehicle BBCD12", Status: listing.StatusActive},
				Plate:   "BBCD12",
			},
		}, nil)

	rec := httptest.NewRecorder()
	h.submit(rec, submitRequest(t, 7, form))

	require.Equal(t, http.StatusCreated, rec.Code)
	var result submission.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.OK)
	assert.Equal(t, "Vehicle BBCD12", result.Listing.Listing.Title)
}

func TestSubmitHandlerFieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSubmissionService(ctrl)
	h := NewSubmissionHandler(svc, discardLogger())

	svc.EXPECT().
		Submit(gomock.Any(), int64(7), int64(7), gomock.Any()).
		Return(&submission.Result{OK: false, Errors: map[string]string{"price": "Price is required"}}, nil)

	rec := httptest.NewRecorder()
	h.submit(rec, submitRequest(t, 7, submission.RawForm{Plate: "BBCD12"}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var result submission.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.OK)
	assert.Equal(t, "Price is required", result.Errors["price"])
}

func TestSubmitHandlerIncompleteVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSubmissionService(ctrl)
	h := NewSubmissionHandler(svc, discardLogger())

	svc.EXPECT().
		Submit(gomock.Any(), int64(7), int64(7), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeIncompleteVehicle, "new vehicle requires: brand, model"))

	rec := httptest.NewRecorder()
	h.submit(rec, submitRequest(t, 7, submission.RawForm{Plate: "BBCD12"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "incomplete_vehicle_data", body["error"])
}

func TestSubmitHandlerBadBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewSubmissionHandler(mocks.NewMockSubmissionService(ctrl), discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/listings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
