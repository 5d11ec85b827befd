package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID string
	var gotOK bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("with header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/time-slots", nil)
		req.Header.Set(UserIDHeader, " agent-1 ")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, "agent-1", gotUserID)
	})

	t.Run("without header", func(t *testing.T) {
		gotOK = false
		req := httptest.NewRequest(http.MethodPost, "/time-slots", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, gotOK)
		assert.Contains(t, rec.Body.String(), `"code":401`)
	})
}

type observed struct {
	method, route, status string
}

type recordingMetrics struct {
	calls []observed
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route, status string, _ time.Duration) {
	m.calls = append(m.calls, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	m := &recordingMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/properties/{propertyId}/calendar", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/properties/abc/calendar", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{
		method: http.MethodGet,
		route:  "/properties/{propertyId}/calendar",
		status: "418",
	}, m.calls[0])
}
