package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/surf-terminal/internal/conditions"
	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/readings"
)

const fetchTimeout = 30 * time.Second

// conditionsFetchedMsg is sent when a fetch settles
type conditionsFetchedMsg struct {
	generation uint64
	spot       models.Spot
	conditions *models.ConditionsViewModel
	fetchedAt  time.Time
	err        error
}

// readingRecordedMsg is sent after a successful fetch has been stored.
// previous is the reading stored before this one, if any.
type readingRecordedMsg struct {
	spotID   string
	previous *models.Reading
	err      error
}

// fetchConditions runs the pipeline for a spot in the background
func fetchConditions(fetcher conditions.Fetcher, spot models.Spot, generation uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		vm, err := fetcher.Fetch(ctx, spot.Lat, spot.Lng)
		return conditionsFetchedMsg{
			generation: generation,
			spot:       spot,
			conditions: vm,
			fetchedAt:  time.Now(),
			err:        err,
		}
	}
}

// recordReading loads the latest stored reading for the spot, then appends
// the new one
func recordReading(store readings.Store, spotID string, vm *models.ConditionsViewModel, at time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var previous *models.Reading
		recent, err := store.Recent(ctx, spotID, 1)
		if err != nil {
			return readingRecordedMsg{spotID: spotID, err: err}
		}
		if len(recent) > 0 {
			previous = &recent[0]
		}

		if err := store.Save(ctx, models.NewReading(spotID, vm, at)); err != nil {
			return readingRecordedMsg{spotID: spotID, previous: previous, err: err}
		}
		return readingRecordedMsg{spotID: spotID, previous: previous}
	}
}
