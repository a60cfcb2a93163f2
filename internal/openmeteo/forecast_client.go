package openmeteo

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultForecastURL is the Open-Meteo weather forecast endpoint
const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoForecastClient implements ForecastClient
type OpenMeteoForecastClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewForecastClient creates a forecast client against the public endpoint
func NewForecastClient() *OpenMeteoForecastClient {
	return NewForecastClientWithURL(DefaultForecastURL)
}

// NewForecastClientWithURL creates a forecast client against a custom endpoint
func NewForecastClientWithURL(baseURL string) *OpenMeteoForecastClient {
	return &OpenMeteoForecastClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(),
	}
}

// GetForecast retrieves current temperature and weather code plus the
// daily weather code and temperature range
func (c *OpenMeteoForecastClient) GetForecast(ctx context.Context, lat, lng float64) (*ForecastResponse, error) {
	params := coordParams(lat, lng)
	params.Set("current", "temperature_2m,weather_code")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var resp ForecastResponse
	if err := getJSON(ctx, c.httpClient, SourceForecast, requestURL, &resp); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}

	return &resp, nil
}
