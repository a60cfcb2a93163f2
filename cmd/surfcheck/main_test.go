package main

import (
	"path/filepath"
	"testing"
)

func TestStartSpot(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		near    string
		want    string
		wantErr bool
	}{
		{"default", "", "", "5", false},
		{"by id", "9", "", "9", false},
		{"unknown id", "12", "", "", true},
		{"near Haifa bay", "", "32.93,35.08", "2", false},
		{"near with spaces", "", " 31.80 , 34.64 ", "8", false},
		{"bad coords", "", "north", "", true},
		{"bad latitude", "", "x,34.6", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot, err := startSpot(tt.id, tt.near)
			if tt.wantErr {
				if err == nil {
					t.Errorf("startSpot(%q, %q) expected error", tt.id, tt.near)
				}
				return
			}
			if err != nil {
				t.Fatalf("startSpot(%q, %q) error: %v", tt.id, tt.near, err)
			}
			if spot.ID != tt.want {
				t.Errorf("startSpot(%q, %q) = %s, want %s", tt.id, tt.near, spot.ID, tt.want)
			}
		})
	}
}

func TestExportSpots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gis", "beaches.shp")

	n, err := exportSpots(path)
	if err != nil {
		t.Fatalf("exportSpots failed: %v", err)
	}
	if n != 9 {
		t.Errorf("exportSpots wrote %d beaches, want 9", n)
	}
}
