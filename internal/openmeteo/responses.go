package openmeteo

// Pointer fields distinguish "absent or null" from zero.

// MarineResponse is the subset of the marine endpoint payload we request
type MarineResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Current   *MarineCurrent `json:"current"`
	Daily     *MarineDaily   `json:"daily"`
}

type MarineCurrent struct {
	Time           string   `json:"time"`
	WaveHeight     *float64 `json:"wave_height"`
	WaveDirection  *float64 `json:"wave_direction"`
	WindWaveHeight *float64 `json:"wind_wave_height"`
}

type MarineDaily struct {
	Time          []string   `json:"time"`
	WaveHeightMax []*float64 `json:"wave_height_max"`
}

// ForecastResponse is the subset of the forecast endpoint payload we request
type ForecastResponse struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Timezone  string           `json:"timezone"`
	Current   *ForecastCurrent `json:"current"`
	Daily     *ForecastDaily   `json:"daily"`
}

type ForecastCurrent struct {
	Time          string   `json:"time"`
	Temperature2m *float64 `json:"temperature_2m"`
	WeatherCode   *int     `json:"weather_code"`
}

type ForecastDaily struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weather_code"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
}

// Validate checks the fields the merge cannot do without. Current wave
// values may be absent; they default to zero downstream.
func (r *MarineResponse) Validate() error {
	switch {
	case r == nil:
		return &ParseError{Source: SourceMarine, Field: "response"}
	case r.Current == nil:
		return &ParseError{Source: SourceMarine, Field: "current"}
	case r.Daily == nil:
		return &ParseError{Source: SourceMarine, Field: "daily"}
	case r.Daily.Time == nil:
		return &ParseError{Source: SourceMarine, Field: "daily.time"}
	case r.Daily.WaveHeightMax == nil:
		return &ParseError{Source: SourceMarine, Field: "daily.wave_height_max"}
	}
	return nil
}

// Validate checks the fields the merge cannot do without
func (r *ForecastResponse) Validate() error {
	switch {
	case r == nil:
		return &ParseError{Source: SourceForecast, Field: "response"}
	case r.Current == nil:
		return &ParseError{Source: SourceForecast, Field: "current"}
	case r.Current.Temperature2m == nil:
		return &ParseError{Source: SourceForecast, Field: "current.temperature_2m"}
	case r.Current.WeatherCode == nil:
		return &ParseError{Source: SourceForecast, Field: "current.weather_code"}
	case r.Daily == nil:
		return &ParseError{Source: SourceForecast, Field: "daily"}
	case r.Daily.WeatherCode == nil:
		return &ParseError{Source: SourceForecast, Field: "daily.weather_code"}
	case r.Daily.Temperature2mMax == nil:
		return &ParseError{Source: SourceForecast, Field: "daily.temperature_2m_max"}
	case r.Daily.Temperature2mMin == nil:
		return &ParseError{Source: SourceForecast, Field: "daily.temperature_2m_min"}
	}
	return nil
}
