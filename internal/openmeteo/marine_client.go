package openmeteo

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultMarineURL is the Open-Meteo marine forecast endpoint
const DefaultMarineURL = "https://marine-api.open-meteo.com/v1/marine"

// OpenMeteoMarineClient implements MarineClient
type OpenMeteoMarineClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMarineClient creates a marine client against the public endpoint
func NewMarineClient() *OpenMeteoMarineClient {
	return NewMarineClientWithURL(DefaultMarineURL)
}

// NewMarineClientWithURL creates a marine client against a custom endpoint
func NewMarineClientWithURL(baseURL string) *OpenMeteoMarineClient {
	return &OpenMeteoMarineClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(),
	}
}

// GetMarine retrieves current wave conditions and daily maximum wave height
func (c *OpenMeteoMarineClient) GetMarine(ctx context.Context, lat, lng float64) (*MarineResponse, error) {
	params := coordParams(lat, lng)
	params.Set("current", "wave_height,wave_direction,wind_wave_height")
	params.Set("daily", "wave_height_max")

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var resp MarineResponse
	if err := getJSON(ctx, c.httpClient, SourceMarine, requestURL, &resp); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}

	return &resp, nil
}
