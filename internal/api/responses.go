package api

import (
	"time"

	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/spots"
)

type spotResponse struct {
	models.Spot
	Timezone string `json:"timezone"`
}

type currentResponse struct {
	models.CurrentConditions
	Icon      models.Icon `json:"icon"`
	WaveColor string      `json:"wave_color"`
}

type dayResponse struct {
	models.DayForecast
	Label     string      `json:"label"`
	Icon      models.Icon `json:"icon"`
	WaveColor string      `json:"wave_color"`
}

type conditionsResponse struct {
	Spot           spotResponse          `json:"spot"`
	FetchedAt      time.Time             `json:"fetched_at"`
	LocalTime      string                `json:"local_time"`
	Recommendation models.Recommendation `json:"recommendation"`
	Current        currentResponse       `json:"current"`
	Daily          []dayResponse         `json:"daily"`
}

type readingsResponse struct {
	Spot     spotResponse     `json:"spot"`
	Readings []models.Reading `json:"readings"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func newSpotResponse(spot models.Spot) spotResponse {
	return spotResponse{Spot: spot, Timezone: spots.TimezoneFor(spot)}
}

func newConditionsResponse(spot models.Spot, vm *models.ConditionsViewModel, fetchedAt time.Time) conditionsResponse {
	daily := make([]dayResponse, len(vm.Daily))
	for i, day := range vm.Daily {
		daily[i] = dayResponse{
			DayForecast: day,
			Label:       models.DayLabel(i, day),
			Icon:        models.IconFor(day.ConditionCode),
			WaveColor:   models.WaveColorFor(day.WaveHeightMax),
		}
	}

	return conditionsResponse{
		Spot:           newSpotResponse(spot),
		FetchedAt:      fetchedAt,
		LocalTime:      spots.LocalTime(spot, fetchedAt).Format("15:04"),
		Recommendation: vm.Recommendation(),
		Current: currentResponse{
			CurrentConditions: vm.Current,
			Icon:              vm.Current.Icon(),
			WaveColor:         models.WaveColorFor(vm.Current.WaveHeight),
		},
		Daily: daily,
	}
}
