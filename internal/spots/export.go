package spots

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// Attribute columns written to the .dbf alongside each point
const (
	fieldID = iota
	fieldName
	fieldLabel
	fieldRegion
	fieldLat
	fieldLng
)

// ExportShapefile writes spots as a point shapefile (.shp/.shx/.dbf) so the
// catalog can be loaded into GIS tools
func ExportShapefile(path string, spots []models.Spot) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return fmt.Errorf("creating shapefile: %w", err)
	}
	defer w.Close()

	fields := []shp.Field{
		shp.StringField("ID", 8),
		shp.StringField("NAME", 120), // UTF-8 Hebrew needs two bytes per letter
		shp.StringField("LABEL", 60),
		shp.StringField("REGION", 10),
		shp.FloatField("LAT", 12, 6),
		shp.FloatField("LNG", 12, 6),
	}
	if err := w.SetFields(fields); err != nil {
		return fmt.Errorf("setting shapefile fields: %w", err)
	}

	for _, s := range spots {
		row := int(w.Write(&shp.Point{X: s.Lng, Y: s.Lat}))

		attrs := map[int]interface{}{
			fieldID:     s.ID,
			fieldName:   s.Name,
			fieldLabel:  s.Label,
			fieldRegion: string(s.Region),
			fieldLat:    s.Lat,
			fieldLng:    s.Lng,
		}
		for field, value := range attrs {
			if err := w.WriteAttribute(row, field, value); err != nil {
				return fmt.Errorf("writing attribute %d for spot %s: %w", field, s.ID, err)
			}
		}
	}

	return nil
}

// ReadShapefile loads spots back from a shapefile written by ExportShapefile
func ReadShapefile(path string) ([]models.Spot, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile: %w", err)
	}
	defer r.Close()

	attr := func(row, field int) string {
		return strings.Trim(r.ReadAttribute(row, field), " \x00")
	}

	var out []models.Spot
	for r.Next() {
		n, p := r.Shape()
		point, ok := p.(*shp.Point)
		if !ok {
			continue
		}

		lat, err := strconv.ParseFloat(attr(n, fieldLat), 64)
		if err != nil {
			lat = point.Y
		}
		lng, err := strconv.ParseFloat(attr(n, fieldLng), 64)
		if err != nil {
			lng = point.X
		}

		out = append(out, models.Spot{
			ID:     attr(n, fieldID),
			Name:   attr(n, fieldName),
			Label:  attr(n, fieldLabel),
			Region: models.Region(attr(n, fieldRegion)),
			Lat:    lat,
			Lng:    lng,
		})
	}

	return out, nil
}
