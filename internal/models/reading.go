package models

import "time"

// Reading is one stored snapshot of current conditions at a spot
type Reading struct {
	ID            int64     `json:"id"`
	SpotID        string    `json:"spot_id"`
	FetchedAt     time.Time `json:"fetched_at"`
	WaveHeight    float64   `json:"wave_height"`
	WaveDirection float64   `json:"wave_direction"`
	WindSpeed     int       `json:"wind_speed"`
	AirTemp       int       `json:"air_temp"`
	ConditionCode int       `json:"condition_code"`
	Band          string    `json:"band"`
}

// NewReading snapshots the current conditions of a view-model
func NewReading(spotID string, vm *ConditionsViewModel, fetchedAt time.Time) *Reading {
	c := vm.Current
	return &Reading{
		SpotID:        spotID,
		FetchedAt:     fetchedAt,
		WaveHeight:    c.WaveHeight,
		WaveDirection: c.WaveDirection,
		WindSpeed:     c.WindSpeed,
		AirTemp:       c.AirTemp,
		ConditionCode: c.ConditionCode,
		Band:          BandFor(c.WaveHeight).String(),
	}
}
