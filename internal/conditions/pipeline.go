// Package conditions turns the marine and atmospheric forecasts for a
// coordinate into one view-model
package conditions

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/openmeteo"
)

// Fetcher is satisfied by Pipeline
type Fetcher interface {
	Fetch(ctx context.Context, lat, lng float64) (*models.ConditionsViewModel, error)
}

// Pipeline fetches both sources concurrently and merges them. It holds no
// state between calls and performs no retries.
type Pipeline struct {
	marine   openmeteo.MarineClient
	forecast openmeteo.ForecastClient
	log      zerolog.Logger
}

// NewPipeline creates a pipeline against the public Open-Meteo endpoints
func NewPipeline(log zerolog.Logger) *Pipeline {
	return NewPipelineWithClients(openmeteo.NewMarineClient(), openmeteo.NewForecastClient(), log)
}

// NewPipelineWithClients creates a pipeline with injectable clients
func NewPipelineWithClients(marine openmeteo.MarineClient, forecast openmeteo.ForecastClient, log zerolog.Logger) *Pipeline {
	return &Pipeline{marine: marine, forecast: forecast, log: log}
}

// Fetch returns the conditions at a coordinate. Both requests must succeed;
// otherwise a *FetchError is returned and no partial result.
func (p *Pipeline) Fetch(ctx context.Context, lat, lng float64) (*models.ConditionsViewModel, error) {
	start := time.Now()
	p.log.Debug().Float64("lat", lat).Float64("lng", lng).Msg("fetching conditions")

	var (
		marine   *openmeteo.MarineResponse
		forecast *openmeteo.ForecastResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(guard("marine", func() error {
		resp, err := p.marine.GetMarine(gCtx, lat, lng)
		if err != nil {
			return err
		}
		marine = resp
		return nil
	}))

	g.Go(guard("forecast", func() error {
		resp, err := p.forecast.GetForecast(gCtx, lat, lng)
		if err != nil {
			return err
		}
		forecast = resp
		return nil
	}))

	if err := g.Wait(); err != nil {
		return nil, p.fail(lat, lng, err)
	}

	vm, err := Merge(marine, forecast)
	if err != nil {
		return nil, p.fail(lat, lng, err)
	}

	p.log.Debug().
		Float64("lat", lat).
		Float64("lng", lng).
		Int("days", len(vm.Daily)).
		Dur("duration", time.Since(start)).
		Msg("conditions fetched")

	return vm, nil
}

func (p *Pipeline) fail(lat, lng float64, err error) error {
	fetchErr := &FetchError{Lat: lat, Lng: lng, Err: err}
	p.log.Warn().Err(fetchErr).Msg("conditions fetch failed")
	return fetchErr
}

// guard turns a panic in a source call into an error so the join still
// settles exactly once
func guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s fetch panicked: %v", name, r)
			}
		}()
		return fn()
	}
}
