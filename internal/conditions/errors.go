package conditions

import "fmt"

// FetchError is the single error a failed Fetch returns. Err is one of
// *openmeteo.NetworkError, *openmeteo.ParseError or *DataAlignmentError.
type FetchError struct {
	Lat float64
	Lng float64
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching conditions for %.4f,%.4f: %v", e.Lat, e.Lng, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DataAlignmentError means the atmospheric daily series is too short to be
// paired index-for-index with the marine days
type DataAlignmentError struct {
	MarineDays     int
	AtmosphereDays int
}

func (e *DataAlignmentError) Error() string {
	return fmt.Sprintf("daily series misaligned: %d marine days, %d atmospheric days", e.MarineDays, e.AtmosphereDays)
}
