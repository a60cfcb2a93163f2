package spots

import (
	"time"

	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/zsefvlol/timezonemapper"
)

// TimezoneFor returns the IANA zone name covering a spot
func TimezoneFor(spot models.Spot) string {
	return timezonemapper.LatLngToTimezoneString(spot.Lat, spot.Lng)
}

// LocalTime converts t to the spot's local zone. If the zone database is
// unavailable t is returned unchanged.
func LocalTime(spot models.Spot, t time.Time) time.Time {
	loc, err := time.LoadLocation(TimezoneFor(spot))
	if err != nil {
		return t
	}
	return t.In(loc)
}
