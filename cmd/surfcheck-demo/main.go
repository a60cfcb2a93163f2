package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/ui"
)

// mockFetcher serves a generated week for any beach so the UI can be
// explored offline
type mockFetcher struct{}

func (mockFetcher) Fetch(_ context.Context, lat, _ float64) (*models.ConditionsViewModel, error) {
	time.Sleep(400 * time.Millisecond)

	// Higher latitudes get bigger surf, so the beaches differ visibly
	base := (lat - 31.5) * 1.4
	codes := []int{0, 2, 61, 95, 3, 1, 80}

	now := time.Now()
	daily := make([]models.DayForecast, len(codes))
	for i, code := range codes {
		day := now.AddDate(0, 0, i)
		daily[i] = models.DayForecast{
			Date:          day.Format("2006-01-02"),
			DayIndex:      day.Weekday(),
			WaveHeightMax: float64(int((base+float64(i%3)*0.4)*100)) / 100,
			ConditionCode: code,
			TempMax:       24 - i/2,
			TempMin:       16 - i/3,
		}
	}

	return &models.ConditionsViewModel{
		Current: models.CurrentConditions{
			WaveHeight:    float64(int(base*100)) / 100,
			WaveDirection: 285,
			WindSpeed:     4,
			AirTemp:       22,
			ConditionCode: 2,
		},
		Daily: daily,
	}, nil
}

// This demo shows the UI with mock data
func main() {
	fetcher := mockFetcher{}
	m := ui.NewModel(ui.Config{Fetcher: fetcher, Log: zerolog.Nop()})

	// Start on a ready screen; later selections go through the mock fetcher
	spot := m.Spot()
	vm, err := fetcher.Fetch(context.Background(), spot.Lat, spot.Lng)
	if err != nil {
		fmt.Printf("Error building demo data: %v\n", err)
		os.Exit(1)
	}
	m.SetConditions(vm, time.Now())

	m.SetLastReading(&models.Reading{
		SpotID:     "5",
		FetchedAt:  time.Now().Add(-3 * time.Hour),
		WaveHeight: 0.9,
		Band:       models.BandIdeal.String(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
