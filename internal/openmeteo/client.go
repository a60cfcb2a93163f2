// Package openmeteo fetches marine and atmospheric forecasts from Open-Meteo
package openmeteo

import "context"

// MarineClient fetches wave data for a coordinate
type MarineClient interface {
	GetMarine(ctx context.Context, lat, lng float64) (*MarineResponse, error)
}

// ForecastClient fetches temperature and weather codes for a coordinate
type ForecastClient interface {
	GetForecast(ctx context.Context, lat, lng float64) (*ForecastResponse, error)
}
