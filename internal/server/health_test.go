package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/customers/internal/shared"
	tu "github.com/desertthunder/customers/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	tc := []struct {
		name       string
		state      State
		countErr   error
		wantCode   int
		wantStatus string
	}{
		{name: "uninitialized", state: StateUninitialized, wantCode: http.StatusServiceUnavailable, wantStatus: "uninitialized"},
		{name: "seeded but not serving", state: StateSeeded, wantCode: http.StatusServiceUnavailable, wantStatus: "seeded"},
		{name: "serving", state: StateServing, wantCode: http.StatusOK, wantStatus: "serving"},
		{name: "serving with broken store", state: StateServing, countErr: shared.ErrStorageUnavailable, wantCode: http.StatusServiceUnavailable, wantStatus: "serving"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			lifecycle := NewLifecycle()
			lifecycle.Advance(tt.state)
			store := tu.NewMockStore()
			store.CountErr = tt.countErr

			router := NewBasicRouter()
			router.Handler(NewHealthHandler(lifecycle, store, shared.NewLogger(&bytes.Buffer{})))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			var body HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.countErr != nil, body.Error != "")
		})
	}
}

func TestHealthHandlerWriteFailure(t *testing.T) {
	lifecycle := NewLifecycle()
	lifecycle.Advance(StateServing)

	var logs bytes.Buffer
	handler := NewHealthHandler(lifecycle, tu.NewMockStore(), shared.NewLogger(&logs))

	w := tu.NewFResponseWriter()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logs.String(), "failed to write health response")
	assert.Contains(t, logs.String(), "write failed")
}
