package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	userAgent      = "SurfTerminal/1.0 (github.com/ngmaloney/surf-terminal)"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 512
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

// coordParams returns the query shared by both endpoints. Timezone is
// resolved by the provider from the coordinates.
func coordParams(lat, lng float64) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("timezone", "auto")
	return params
}

// getJSON performs a GET and decodes the body into dst, classifying
// failures as NetworkError or ParseError
func getJSON(ctx context.Context, client *http.Client, source Source, requestURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return &NetworkError{Source: source, URL: requestURL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return &NetworkError{Source: source, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &NetworkError{
			Source:     source,
			URL:        requestURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &ParseError{Source: source, Err: err}
	}

	return nil
}
