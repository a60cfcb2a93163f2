package models

import (
	"fmt"
	"time"
)

// Icon is a display glyph for a weather condition
type Icon string

const (
	IconClear        Icon = "☀️"
	IconPartlyCloudy Icon = "⛅"
	IconThunderstorm Icon = "⛈️"
	IconRain         Icon = "🌧️"
	IconCloudy       Icon = "☁️"
)

// IconFor maps a WMO weather code to an icon. Rules are ordered and the
// first match wins, so the thunderstorm check must precede the rain check.
func IconFor(code int) Icon {
	switch {
	case code == 0:
		return IconClear
	case code >= 1 && code <= 3:
		return IconPartlyCloudy
	case code >= 95:
		return IconThunderstorm
	case code >= 61:
		return IconRain
	default:
		return IconCloudy
	}
}

// dateLayout is the daily date format used by Open-Meteo
const dateLayout = "2006-01-02"

// TodayLabel replaces the weekday name of the first forecast entry
const TodayLabel = "Today"

// ParseDay returns the weekday of a yyyy-mm-dd calendar date
func ParseDay(date string) (time.Weekday, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", date, err)
	}
	return t.Weekday(), nil
}

// DayNameFor returns the weekday name of a calendar date, or "" if the
// date cannot be parsed
func DayNameFor(date string) string {
	day, err := ParseDay(date)
	if err != nil {
		return ""
	}
	return day.String()
}

// DayLabel returns the row label for the forecast entry at index. The
// weekday comes from the delivered date, falling back to DayIndex.
func DayLabel(index int, day DayForecast) string {
	if index == 0 {
		return TodayLabel
	}
	if name := DayNameFor(day.Date); name != "" {
		return name
	}
	return day.DayIndex.String()
}

// Wave height band boundaries in meters. Both boundaries belong to BandIdeal.
const (
	CalmBelow   = 0.6
	DangerAbove = 1.8
)

// Band classifies a wave height
type Band int

const (
	BandCalm Band = iota
	BandIdeal
	BandDanger
)

func (b Band) String() string {
	switch b {
	case BandCalm:
		return "calm"
	case BandIdeal:
		return "ideal"
	case BandDanger:
		return "danger"
	}
	return "unknown"
}

// BandFor returns the band of a wave height
func BandFor(height float64) Band {
	if height < CalmBelow {
		return BandCalm
	}
	if height > DangerAbove {
		return BandDanger
	}
	return BandIdeal
}

// Wave card colors
const (
	WaveColorCalm   = "#4da6ff"
	WaveColorIdeal  = "#0066cc"
	WaveColorDanger = "#003366"
)

// WaveColorFor returns the card color for a wave height
func WaveColorFor(height float64) string {
	switch BandFor(height) {
	case BandCalm:
		return WaveColorCalm
	case BandDanger:
		return WaveColorDanger
	default:
		return WaveColorIdeal
	}
}

// Tone is the emphasis of a recommendation
type Tone string

const (
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneSuccess Tone = "success"
)

// Recommendation is the advisory shown above the conditions card
type Recommendation struct {
	Band  Band   `json:"-"`
	Text  string `json:"text"`
	Tone  Tone   `json:"tone"`
	Color string `json:"color"`
}

var recommendations = map[Band]Recommendation{
	BandCalm:   {Band: BandCalm, Text: "😴 Flat sea, bring a paddleboard", Tone: ToneWarning, Color: "#ff9900"},
	BandIdeal:  {Band: BandIdeal, Text: "🏄 Excellent conditions! Run to the water", Tone: ToneSuccess, Color: "#009933"},
	BandDanger: {Band: BandDanger, Text: "⚠️ High and dangerous! Experts only", Tone: ToneDanger, Color: "#cc0000"},
}

// RecommendationFor returns the advisory for a wave height. It shares its
// bands with WaveColorFor.
func RecommendationFor(height float64) Recommendation {
	return recommendations[BandFor(height)]
}
