package openmeteo

import (
	"fmt"
	"strings"
)

// Source names the upstream endpoint an error came from
type Source string

const (
	SourceMarine   Source = "marine"
	SourceForecast Source = "forecast"
)

// NetworkError means the request could not be sent, no response arrived,
// or the provider answered with a non-success status
type NetworkError struct {
	Source     Source
	URL        string
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s request failed", e.Source)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
		if e.Body != "" {
			fmt.Fprintf(&b, ": %s", e.Body)
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError means the body was malformed or lacked a required field
type ParseError struct {
	Source Source
	Field  string // empty when the body itself failed to decode
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s response missing %s", e.Source, e.Field)
	}
	return fmt.Sprintf("decoding %s response: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
