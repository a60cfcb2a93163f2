package models

import (
	"testing"
	"time"
)

func TestCurrentConditions_Icon(t *testing.T) {
	c := CurrentConditions{ConditionCode: 63}
	if got := c.Icon(); got != IconRain {
		t.Errorf("Icon() = %q, want %q", got, IconRain)
	}
}

func TestConditionsViewModel_Recommendation(t *testing.T) {
	vm := &ConditionsViewModel{Current: CurrentConditions{WaveHeight: 2.2}}
	if got := vm.Recommendation(); got.Band != BandDanger {
		t.Errorf("Recommendation().Band = %v, want BandDanger", got.Band)
	}
}

func TestNewReading(t *testing.T) {
	vm := &ConditionsViewModel{
		Current: CurrentConditions{WaveHeight: 1.9, WaveDirection: 250, WindSpeed: 7, AirTemp: 17, ConditionCode: 95},
	}
	at := time.Date(2024, 1, 1, 6, 30, 0, 0, time.UTC)

	r := NewReading("8", vm, at)

	if r.SpotID != "8" || !r.FetchedAt.Equal(at) {
		t.Errorf("NewReading() identity = %s/%v", r.SpotID, r.FetchedAt)
	}
	if r.WaveHeight != 1.9 || r.WaveDirection != 250 || r.WindSpeed != 7 || r.AirTemp != 17 || r.ConditionCode != 95 {
		t.Errorf("NewReading() did not copy current conditions: %+v", r)
	}
	if r.Band != "danger" {
		t.Errorf("NewReading() band = %q, want danger", r.Band)
	}
	if r.ID != 0 {
		t.Error("ID is assigned by the store")
	}
}
