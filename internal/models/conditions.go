package models

import "time"

// CurrentConditions is the "now" snapshot at a spot
type CurrentConditions struct {
	WaveHeight    float64 `json:"wave_height"`    // meters, 0 if the marine source omits it
	WaveDirection float64 `json:"wave_direction"` // degrees, direction waves approach from
	WindSpeed     int     `json:"wind_speed"`     // round(wind_wave_height * 10), display proxy only
	AirTemp       int     `json:"air_temp"`       // Celsius
	ConditionCode int     `json:"condition_code"` // WMO weather code from the atmospheric source
}

// Icon returns the display icon for the current weather code
func (c CurrentConditions) Icon() Icon {
	return IconFor(c.ConditionCode)
}

// DayForecast aggregates one forecast day
type DayForecast struct {
	Date          string       `json:"date"` // yyyy-mm-dd as delivered by the marine source
	DayIndex      time.Weekday `json:"day_index"`
	WaveHeightMax float64      `json:"wave_height_max"`
	ConditionCode int          `json:"condition_code"` // MissingConditionCode when the source sent null
	TempMax       int          `json:"temp_max"`
	TempMin       int          `json:"temp_min"`
}

// MissingConditionCode marks a daily weather code the source left null.
// IconFor maps it to the cloudy default.
const MissingConditionCode = -1

// ConditionsViewModel is the unified result of one fetch.
// It is built once and never mutated; a new fetch replaces it entirely.
type ConditionsViewModel struct {
	Current CurrentConditions `json:"current"`
	Daily   []DayForecast     `json:"daily"`
}

// Recommendation returns the advisory for the current wave height
func (vm *ConditionsViewModel) Recommendation() Recommendation {
	return RecommendationFor(vm.Current.WaveHeight)
}
