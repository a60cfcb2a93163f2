package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/surf-terminal/internal/api"
	"github.com/ngmaloney/surf-terminal/internal/conditions"
	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/openmeteo"
)

// ---- mock implementations ----

type mockFetcher struct {
	fetchFn func(ctx context.Context, lat, lng float64) (*models.ConditionsViewModel, error)
	calls   int
}

func (m *mockFetcher) Fetch(ctx context.Context, lat, lng float64) (*models.ConditionsViewModel, error) {
	m.calls++
	return m.fetchFn(ctx, lat, lng)
}

type mockStore struct {
	saved    []*models.Reading
	saveErr  error
	recentFn func(ctx context.Context, spotID string, limit int) ([]models.Reading, error)
}

func (m *mockStore) Save(_ context.Context, r *models.Reading) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, r)
	return nil
}

func (m *mockStore) Recent(ctx context.Context, spotID string, limit int) ([]models.Reading, error) {
	return m.recentFn(ctx, spotID, limit)
}

// ---- helpers ----

func sampleViewModel() *models.ConditionsViewModel {
	return &models.ConditionsViewModel{
		Current: models.CurrentConditions{
			WaveHeight:    1.2,
			WaveDirection: 290,
			WindSpeed:     4,
			AirTemp:       22,
			ConditionCode: 1,
		},
		Daily: []models.DayForecast{
			{Date: "2024-01-01", DayIndex: 1, WaveHeightMax: 1.2, ConditionCode: 0, TempMax: 22, TempMin: 15},
			{Date: "2024-01-02", DayIndex: 2, WaveHeightMax: 2.1, ConditionCode: 95, TempMax: 19, TempMin: 13},
		},
	}
}

func okFetcher() *mockFetcher {
	return &mockFetcher{fetchFn: func(context.Context, float64, float64) (*models.ConditionsViewModel, error) {
		return sampleViewModel(), nil
	}}
}

func serve(t *testing.T, h *api.Handlers, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := api.NewRouter(h, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// ---- health & spots ----

func TestHealth(t *testing.T) {
	w := serve(t, api.NewHandlers(okFetcher(), nil, zerolog.Nop()), "/api/v1/health")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(9), body["spots"])
	assert.Equal(t, "disabled", body["history"])
}

func TestListSpots(t *testing.T) {
	w := serve(t, api.NewHandlers(okFetcher(), nil, zerolog.Nop()), "/api/v1/spots")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 9)
	assert.Equal(t, "1", list[0]["id"])
	assert.Equal(t, "north", list[0]["region"])
	assert.Equal(t, "9", list[8]["id"])
	assert.NotEmpty(t, list[4]["timezone"])
}

// ---- conditions ----

func TestGetConditions_OK(t *testing.T) {
	fetcher := &mockFetcher{}
	var gotLat, gotLng float64
	fetcher.fetchFn = func(_ context.Context, lat, lng float64) (*models.ConditionsViewModel, error) {
		gotLat, gotLng = lat, lng
		return sampleViewModel(), nil
	}
	store := &mockStore{}

	w := serve(t, api.NewHandlers(fetcher, store, zerolog.Nop()), "/api/v1/spots/5/conditions")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 32.0645, gotLat)
	assert.Equal(t, 34.7630, gotLng)

	body := decode(t, w)
	spot := body["spot"].(map[string]any)
	assert.Equal(t, "5", spot["id"])

	rec := body["recommendation"].(map[string]any)
	assert.Equal(t, "success", rec["tone"])
	assert.Equal(t, "#009933", rec["color"])

	current := body["current"].(map[string]any)
	assert.Equal(t, 1.2, current["wave_height"])
	assert.Equal(t, float64(4), current["wind_speed"])
	assert.Equal(t, string(models.IconPartlyCloudy), current["icon"])
	assert.Equal(t, models.WaveColorIdeal, current["wave_color"])

	daily := body["daily"].([]any)
	require.Len(t, daily, 2)
	first := daily[0].(map[string]any)
	second := daily[1].(map[string]any)
	assert.Equal(t, models.TodayLabel, first["label"])
	assert.Equal(t, "Tuesday", second["label"])
	assert.Equal(t, string(models.IconThunderstorm), second["icon"])
	assert.Equal(t, models.WaveColorDanger, second["wave_color"])

	require.Len(t, store.saved, 1)
	assert.Equal(t, "5", store.saved[0].SpotID)
	assert.Equal(t, "ideal", store.saved[0].Band)
}

func TestGetConditions_UnknownSpot(t *testing.T) {
	fetcher := okFetcher()
	w := serve(t, api.NewHandlers(fetcher, nil, zerolog.Nop()), "/api/v1/spots/42/conditions")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "spot not found", decode(t, w)["error"])
	assert.Zero(t, fetcher.calls, "no fetch for an unknown spot")
}

func TestGetConditions_UpstreamFailure(t *testing.T) {
	fetcher := &mockFetcher{fetchFn: func(context.Context, float64, float64) (*models.ConditionsViewModel, error) {
		return nil, &conditions.FetchError{
			Lat: 32, Lng: 34,
			Err: &openmeteo.NetworkError{Source: openmeteo.SourceMarine, StatusCode: 500},
		}
	}}
	store := &mockStore{}

	w := serve(t, api.NewHandlers(fetcher, store, zerolog.Nop()), "/api/v1/spots/1/conditions")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decode(t, w)
	assert.Equal(t, "failed to fetch conditions", body["error"])
	assert.NotEmpty(t, body["request_id"])
	assert.Empty(t, store.saved, "failed fetches are not recorded")
}

func TestGetConditions_UnexpectedError(t *testing.T) {
	fetcher := &mockFetcher{fetchFn: func(context.Context, float64, float64) (*models.ConditionsViewModel, error) {
		return nil, errors.New("boom")
	}}

	w := serve(t, api.NewHandlers(fetcher, nil, zerolog.Nop()), "/api/v1/spots/1/conditions")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetConditions_StoreFailureStillServes(t *testing.T) {
	store := &mockStore{saveErr: errors.New("disk full")}

	w := serve(t, api.NewHandlers(okFetcher(), store, zerolog.Nop()), "/api/v1/spots/3/conditions")
	assert.Equal(t, http.StatusOK, w.Code)
}

// ---- readings ----

func TestGetReadings_OK(t *testing.T) {
	var gotSpot string
	var gotLimit int
	store := &mockStore{recentFn: func(_ context.Context, spotID string, limit int) ([]models.Reading, error) {
		gotSpot, gotLimit = spotID, limit
		return []models.Reading{{ID: 2, SpotID: spotID, WaveHeight: 1.4, Band: "ideal"}}, nil
	}}

	w := serve(t, api.NewHandlers(okFetcher(), store, zerolog.Nop()), "/api/v1/spots/7/readings?limit=5")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", gotSpot)
	assert.Equal(t, 5, gotLimit)

	body := decode(t, w)
	readings := body["readings"].([]any)
	require.Len(t, readings, 1)
	assert.Equal(t, 1.4, readings[0].(map[string]any)["wave_height"])
}

func TestGetReadings_DefaultLimit(t *testing.T) {
	gotLimit := -1
	store := &mockStore{recentFn: func(_ context.Context, _ string, limit int) ([]models.Reading, error) {
		gotLimit = limit
		return []models.Reading{}, nil
	}}

	w := serve(t, api.NewHandlers(okFetcher(), store, zerolog.Nop()), "/api/v1/spots/7/readings")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, gotLimit)
}

func TestGetReadings_Errors(t *testing.T) {
	failing := &mockStore{recentFn: func(context.Context, string, int) ([]models.Reading, error) {
		return nil, errors.New("database is locked")
	}}
	empty := &mockStore{recentFn: func(context.Context, string, int) ([]models.Reading, error) {
		return []models.Reading{}, nil
	}}

	tests := []struct {
		name       string
		store      api.ReadingStore
		path       string
		wantStatus int
	}{
		{"history disabled", nil, "/api/v1/spots/1/readings", http.StatusServiceUnavailable},
		{"unknown spot", empty, "/api/v1/spots/0/readings", http.StatusNotFound},
		{"bad limit", empty, "/api/v1/spots/1/readings?limit=abc", http.StatusBadRequest},
		{"zero limit", empty, "/api/v1/spots/1/readings?limit=0", http.StatusBadRequest},
		{"store failure", failing, "/api/v1/spots/1/readings", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, api.NewHandlers(okFetcher(), tt.store, zerolog.Nop()), tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
