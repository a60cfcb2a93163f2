package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ngmaloney/surf-terminal/internal/conditions"
	"github.com/ngmaloney/surf-terminal/internal/logging"
	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/readings"
	"github.com/ngmaloney/surf-terminal/internal/spots"
	"github.com/ngmaloney/surf-terminal/internal/ui"
)

func main() {
	spotID := flag.String("spot", "", "ID of the beach to load on start (1-9)")
	near := flag.String("near", "", `Start at the beach nearest to "lat,lng" (e.g. 32.08,34.77)`)
	logPath := flag.String("log", "", "Write debug logs to this file")
	dbPath := flag.String("db", "", "Record readings history in this sqlite file")
	exportPath := flag.String("export-shp", "", "Export the beaches as a point shapefile and exit")
	flag.Parse()

	if *spotID != "" && *near != "" {
		fmt.Println("Error: --spot and --near cannot be used together.")
		os.Exit(1)
	}

	if *exportPath != "" {
		n, err := exportSpots(*exportPath)
		if err != nil {
			fmt.Printf("Error exporting shapefile: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d beaches to %s\n", n, *exportPath)
		return
	}

	spot, err := startSpot(*spotID, *near)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logging.NewFile(*logPath, "surfcheck", zerolog.DebugLevel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg := ui.Config{
		Fetcher: conditions.NewPipeline(log),
		Log:     log,
		Spot:    spot,
	}
	if *dbPath != "" {
		repo := readings.NewRepository(*dbPath)
		if err := repo.Init(); err != nil {
			fmt.Printf("Error opening readings database: %v\n", err)
			os.Exit(1)
		}
		cfg.Store = repo
	}

	p := tea.NewProgram(ui.NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// exportSpots writes the catalog as a shapefile and reads it back to make
// sure every beach landed
func exportSpots(path string) (int, error) {
	list := spots.List()
	if err := spots.ExportShapefile(path, list); err != nil {
		return 0, err
	}

	written, err := spots.ReadShapefile(path)
	if err != nil {
		return 0, fmt.Errorf("verifying export: %w", err)
	}
	if len(written) != len(list) {
		return 0, fmt.Errorf("verifying export: wrote %d beaches, read back %d", len(list), len(written))
	}
	for i := range list {
		if written[i].ID != list[i].ID {
			return 0, fmt.Errorf("verifying export: beach %d is %q, want %q", i, written[i].ID, list[i].ID)
		}
	}
	return len(written), nil
}

// startSpot resolves the -spot and -near flags to a beach
func startSpot(id, near string) (models.Spot, error) {
	switch {
	case id != "":
		spot, ok := spots.ByID(id)
		if !ok {
			return models.Spot{}, fmt.Errorf("unknown beach %q (expected 1-9)", id)
		}
		return spot, nil

	case near != "":
		lat, lng, err := parseCoords(near)
		if err != nil {
			return models.Spot{}, err
		}
		spot, _ := spots.Nearest(lat, lng)
		return spot, nil
	}
	return spots.Default(), nil
}

func parseCoords(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinates %q, want \"lat,lng\"", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %w", err)
	}
	return lat, lng, nil
}
