package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/spots"
)

var directionArrows = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// directionArrow turns a bearing in degrees into the nearest of eight arrows,
// rotating clockwise from north
func directionArrow(degrees float64) string {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	idx := int(math.Floor(d/45+0.5)) % len(directionArrows)
	return directionArrows[idx]
}

// formatHeight prints a wave height the way it was delivered, without
// trailing zeros
func formatHeight(h float64) string {
	return fmt.Sprintf("%sm", strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", h), "0"), "."))
}

func renderRecommendation(rec models.Recommendation) string {
	return recommendationStyle(rec.Color).Render(rec.Text)
}

func renderCurrent(spot models.Spot, c models.CurrentConditions) string {
	lines := []string{
		bigDataStyle.Render(spot.Name),
		bigDataStyle.Render(formatHeight(c.WaveHeight)),
		"",
		fmt.Sprintf("%s %d km/h    %s %d°", directionArrow(c.WaveDirection), c.WindSpeed, c.Icon(), c.AirTemp),
	}
	return waveCardStyle(models.WaveColorFor(c.WaveHeight)).Render(strings.Join(lines, "\n"))
}

func renderDay(index int, day models.DayForecast) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		dayNameStyle.Render(models.DayLabel(index, day)),
		fmt.Sprintf("%s  %d°-%d°   ", models.IconFor(day.ConditionCode), day.TempMin, day.TempMax),
		waveTextStyle.Render("🌊 "+formatHeight(day.WaveHeightMax)),
	)
}

func renderWeek(days []models.DayForecast) string {
	if len(days) == 0 {
		return mutedStyle.Render("No forecast available")
	}
	rows := make([]string, len(days))
	for i, day := range days {
		rows[i] = renderDay(i, day)
	}
	return sectionBoxStyle.Render(strings.Join(rows, "\n"))
}

func renderLastReading(r *models.Reading, spot models.Spot) string {
	if r == nil {
		return ""
	}
	at := spots.LocalTime(spot, r.FetchedAt)
	return labelStyle.Render("Previous reading:") + " " + mutedStyle.Render(fmt.Sprintf("%s at %s (%s)",
		formatHeight(r.WaveHeight), at.Format("Jan 2 15:04"), r.Band))
}

func renderHeader(spot models.Spot, at time.Time) string {
	title := titleStyle.Render("🏄 SurfCheck Israel")
	sub := fmt.Sprintf("%s (%s)", spot.Name, spot.Label)
	if !at.IsZero() {
		sub += " • updated " + spots.LocalTime(spot, at).Format("15:04")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render(sub))
}
