package models

// Region groups spots along the coast, north to south
type Region string

const (
	RegionNorth  Region = "north"
	RegionCenter Region = "center"
	RegionSouth  Region = "south"
)

// Spot represents a named surf beach with fixed coordinates
type Spot struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`  // Hebrew display name
	Label  string  `json:"label"` // Latin-script name for terminals without RTL support
	Region Region  `json:"region"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}
