package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ngmaloney/surf-terminal/internal/conditions"
	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/spots"
)

// Handlers holds the dependencies for all HTTP handlers
type Handlers struct {
	fetcher ConditionsFetcher
	store   ReadingStore
	log     zerolog.Logger
	now     func() time.Time
}

// NewHandlers constructs Handlers. store may be nil to run without history.
func NewHandlers(fetcher ConditionsFetcher, store ReadingStore, log zerolog.Logger) *Handlers {
	return &Handlers{
		fetcher: fetcher,
		store:   store,
		log:     log,
		now:     time.Now,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: GetRequestID(r.Context())})
}

// spotParam resolves the {id} URL parameter, writing a 404 when unknown
func spotParam(w http.ResponseWriter, r *http.Request) (models.Spot, bool) {
	spot, ok := spots.ByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "spot not found")
	}
	return spot, ok
}

// Health handles GET /api/v1/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	history := "disabled"
	if h.store != nil {
		history = "enabled"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"spots":   len(spots.List()),
		"history": history,
	})
}

// ListSpots handles GET /api/v1/spots
func (h *Handlers) ListSpots(w http.ResponseWriter, r *http.Request) {
	list := spots.List()
	resp := make([]spotResponse, len(list))
	for i, spot := range list {
		resp[i] = newSpotResponse(spot)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetConditions handles GET /api/v1/spots/{id}/conditions.
// Every call fetches fresh data; a failed fetch is a 502.
func (h *Handlers) GetConditions(w http.ResponseWriter, r *http.Request) {
	spot, ok := spotParam(w, r)
	if !ok {
		return
	}

	vm, err := h.fetcher.Fetch(r.Context(), spot.Lat, spot.Lng)
	if err != nil {
		var fetchErr *conditions.FetchError
		if errors.As(err, &fetchErr) {
			h.log.Warn().Err(err).Str("spot", spot.ID).Msg("upstream fetch failed")
			writeError(w, r, http.StatusBadGateway, "failed to fetch conditions")
			return
		}
		h.log.Error().Err(err).Str("spot", spot.ID).Msg("conditions fetch failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	fetchedAt := h.now()
	if h.store != nil {
		if err := h.store.Save(r.Context(), models.NewReading(spot.ID, vm, fetchedAt)); err != nil {
			h.log.Warn().Err(err).Str("spot", spot.ID).Msg("recording reading failed")
		}
	}

	writeJSON(w, http.StatusOK, newConditionsResponse(spot, vm, fetchedAt))
}

// GetReadings handles GET /api/v1/spots/{id}/readings?limit=N
func (h *Handlers) GetReadings(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reading history is disabled")
		return
	}

	spot, ok := spotParam(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	list, err := h.store.Recent(r.Context(), spot.ID, limit)
	if err != nil {
		h.log.Error().Err(err).Str("spot", spot.ID).Msg("loading readings failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, readingsResponse{Spot: newSpotResponse(spot), Readings: list})
}
