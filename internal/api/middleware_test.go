package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/surf-terminal/internal/api"
)

func TestRequestID_Generated(t *testing.T) {
	var seen string
	handler := api.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = api.GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Contains(t, seen, "req_")
	assert.Len(t, seen, len("req_")+22)
	assert.Equal(t, seen, w.Header().Get("X-Request-Id"))
}

func TestRequestID_Propagated(t *testing.T) {
	var seen string
	handler := api.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = api.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-Id", "upstream-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "upstream-123", seen)
	assert.Equal(t, "upstream-123", w.Header().Get("X-Request-Id"))
}

func TestRequestID_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"too long", strings.Repeat("a", 65)},
		{"newline", "abc\ninjected"},
		{"spaces", "two words"},
		{"quote", `id"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := api.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = api.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-Request-Id", tt.id)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.NotEqual(t, tt.id, seen)
			assert.True(t, strings.HasPrefix(seen, "req_"), "expected a generated id, got %q", seen)
			assert.Equal(t, seen, w.Header().Get("X-Request-Id"))
		})
	}
}

func TestRequestID_AcceptsMaxLength(t *testing.T) {
	id := strings.Repeat("b", 64)
	var seen string
	handler := api.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = api.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-Id", id)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, id, seen)
}

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := api.RequestID(api.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/1/conditions", http.NoBody)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/spots/1/conditions", entry["path"])
	assert.Equal(t, float64(502), entry["status"])
	assert.Equal(t, float64(8), entry["bytes"])
	assert.Contains(t, entry["request_id"], "req_")
}

func TestRouter_RateLimited(t *testing.T) {
	router := api.NewRouter(api.NewHandlers(okFetcher(), nil, zerolog.Nop()), zerolog.Nop())

	var last int
	for i := 0; i <= api.RequestsPerMinute; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", http.NoBody)
		req.RemoteAddr = "198.51.100.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
