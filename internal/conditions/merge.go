package conditions

import (
	"fmt"
	"math"

	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/openmeteo"
)

// Merge combines both responses into a view-model. Days follow the marine
// daily.time series and are paired with the atmospheric arrays by index,
// not by date. Responses lacking a required field yield a *openmeteo.ParseError.
func Merge(marine *openmeteo.MarineResponse, forecast *openmeteo.ForecastResponse) (*models.ConditionsViewModel, error) {
	if err := marine.Validate(); err != nil {
		return nil, err
	}
	if err := forecast.Validate(); err != nil {
		return nil, err
	}

	days := len(marine.Daily.Time)
	atmosDays := min(
		len(forecast.Daily.WeatherCode),
		len(forecast.Daily.Temperature2mMax),
		len(forecast.Daily.Temperature2mMin),
	)
	if atmosDays < days {
		return nil, &DataAlignmentError{MarineDays: days, AtmosphereDays: atmosDays}
	}

	daily := make([]models.DayForecast, 0, days)
	for i, date := range marine.Daily.Time {
		weekday, err := models.ParseDay(date)
		if err != nil {
			return nil, &openmeteo.ParseError{
				Source: openmeteo.SourceMarine,
				Field:  fmt.Sprintf("daily.time[%d]", i),
				Err:    err,
			}
		}

		var waveMax float64
		if i < len(marine.Daily.WaveHeightMax) {
			waveMax = valueOr(marine.Daily.WaveHeightMax[i], 0)
		}

		code := models.MissingConditionCode
		if c := forecast.Daily.WeatherCode[i]; c != nil {
			code = *c
		}

		daily = append(daily, models.DayForecast{
			Date:          date,
			DayIndex:      weekday,
			WaveHeightMax: waveMax,
			ConditionCode: code,
			TempMax:       roundHalfUp(valueOr(forecast.Daily.Temperature2mMax[i], 0)),
			TempMin:       roundHalfUp(valueOr(forecast.Daily.Temperature2mMin[i], 0)),
		})
	}

	current := models.CurrentConditions{
		WaveHeight:    valueOr(marine.Current.WaveHeight, 0),
		WaveDirection: valueOr(marine.Current.WaveDirection, 0),
		AirTemp:       roundHalfUp(*forecast.Current.Temperature2m),
		ConditionCode: *forecast.Current.WeatherCode,
	}
	if wwh := marine.Current.WindWaveHeight; wwh != nil {
		current.WindSpeed = roundHalfUp(*wwh * 10)
	}

	return &models.ConditionsViewModel{Current: current, Daily: daily}, nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return fallback
	}
	return *v
}

// roundHalfUp rounds to the nearest integer with ties going toward
// positive infinity: 3.5 -> 4, -2.5 -> -2
func roundHalfUp(x float64) int {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return int(r)
}
