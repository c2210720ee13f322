package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scout-market/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	return body
}

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(t.Context(), rec, http.StatusOK, map[string]string{"status": "ok"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Contains(t, body, "data")
	assert.NotContains(t, body, "error")
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		code   int
		status string
	}{
		{fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{fmt.Errorf("%w: problem=p-1", usecase.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{usecase.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{fmt.Errorf("%w: admin role required", usecase.ErrForbidden), http.StatusForbidden, "PERMISSION_DENIED"},
		{fmt.Errorf("%w: email taken", usecase.ErrConflict), http.StatusConflict, "ALREADY_EXISTS"},
		{usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(t.Context(), rec, tt.err)

			require.Equal(t, tt.code, rec.Code)
			errorObj, ok := decodeEnvelope(t, rec)["error"].(map[string]any)
			require.True(t, ok, "expected error object")
			assert.Equal(t, tt.status, errorObj["status"])
			assert.Equal(t, tt.err.Error(), errorObj["message"])
		})
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(t.Context(), rec, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	errorObj := decodeEnvelope(t, rec)["error"].(map[string]any)
	assert.Equal(t, "internal server error", errorObj["message"])
}

func TestWriteError_ValidationFieldItems(t *testing.T) {
	h := NewHandler(Services{}, nil)
	err := h.validateRequest(t.Context(), &playerAdvertisementRequest{League: "Liga 1", Region: "Java"})
	require.Error(t, err)
	require.ErrorIs(t, err, usecase.ErrInvalidInput)

	rec := httptest.NewRecorder()
	writeError(t.Context(), rec, err)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errorObj := decodeEnvelope(t, rec)["error"].(map[string]any)
	items, ok := errorObj["errors"].([]any)
	require.True(t, ok, "expected error items")

	locations := make([]string, 0, len(items))
	for _, raw := range items {
		item := raw.(map[string]any)
		assert.Equal(t, "invalidField", item["reason"])
		assert.Equal(t, "body", item["locationType"])
		locations = append(locations, item["location"].(string))
	}
	assert.Contains(t, locations, "playerPositionId")
	assert.Contains(t, locations, "endDate")
	assert.NotContains(t, locations, "league")
}
