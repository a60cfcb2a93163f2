// Package spots holds the fixed catalog of surf beaches
package spots

import (
	"math"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// catalog is ordered north to south. Never mutate it; List hands out copies.
var catalog = []models.Spot{
	// North
	{ID: "1", Name: "חוף סוקולוב, נהריה", Label: "Sokolov Beach, Nahariya", Region: models.RegionNorth, Lat: 33.0055, Lng: 35.0818},
	{ID: "2", Name: "חוף ארגמן, עכו", Label: "Argaman Beach, Akko", Region: models.RegionNorth, Lat: 32.9221, Lng: 35.0719},
	{ID: "3", Name: "חוף סירונית, נתניה", Label: "Sironit Beach, Netanya", Region: models.RegionNorth, Lat: 32.3294, Lng: 34.8437},
	{ID: "4", Name: "חוף אכדיה, הרצליה", Label: "Acadia Beach, Herzliya", Region: models.RegionNorth, Lat: 32.1624, Lng: 34.7957},
	// Center
	{ID: "5", Name: `החוף המערבי, ת"א`, Label: "West Beach, Tel Aviv", Region: models.RegionCenter, Lat: 32.0645, Lng: 34.7630},
	{ID: "6", Name: "חוף תאיו, בת ים", Label: "Tayo Beach, Bat Yam", Region: models.RegionCenter, Lat: 32.0163, Lng: 34.7394},
	{ID: "7", Name: "חוף ראשון לציון", Label: "Rishon LeZion Beach", Region: models.RegionCenter, Lat: 31.9710, Lng: 34.7225},
	// South
	{ID: "8", Name: "חוף הקשתות, אשדוד", Label: "Keshatot Beach, Ashdod", Region: models.RegionSouth, Lat: 31.7915, Lng: 34.6300},
	{ID: "9", Name: "חוף דלילה, אשקלון", Label: "Delila Beach, Ashkelon", Region: models.RegionSouth, Lat: 31.6692, Lng: 34.5539},
}

// defaultIndex is the spot selected on startup (Tel Aviv)
const defaultIndex = 4

// List returns the catalog in its fixed order
func List() []models.Spot {
	out := make([]models.Spot, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a spot by its identifier
func ByID(id string) (models.Spot, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return models.Spot{}, false
}

// Default returns the spot shown before the user picks one
func Default() models.Spot {
	return catalog[defaultIndex]
}

// IndexOf returns the position of a spot in List, or -1
func IndexOf(id string) int {
	for i, s := range catalog {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Nearest returns the catalog spot closest to the given point and its
// distance in kilometers
func Nearest(lat, lng float64) (models.Spot, float64) {
	best := catalog[0]
	bestDist := HaversineDistance(lat, lng, best.Lat, best.Lng)
	for _, s := range catalog[1:] {
		if d := HaversineDistance(lat, lng, s.Lat, s.Lng); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, bestDist
}

// HaversineDistance calculates the great-circle distance in kilometers
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
