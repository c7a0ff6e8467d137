// Package feeds provides clients for the external data sources the engine
// polls: current weather observations and match records.
//
// Both sources are best-effort. A non-success response or network failure
// means "no data this cycle" and is reported to the caller as an error so it
// can be logged and swallowed; the next evaluation cycle retries implicitly.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"matchtrip/internal/model"
)

const maxBodyBytes = 1 * 1024 * 1024

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherClient fetches current weather observations per city key.
type WeatherClient struct {
	client  HTTPClient
	baseURL string
}

// NewWeatherClient creates a WeatherClient against the given base URL.
func NewWeatherClient(client HTTPClient, baseURL string) *WeatherClient {
	return &WeatherClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Current returns the current observation for a city.
func (c *WeatherClient) Current(ctx context.Context, cityKey string) (*model.WeatherObservation, error) {
	var obs model.WeatherObservation
	url := fmt.Sprintf("%s/weather/%s", c.baseURL, cityKey)
	if err := getJSON(ctx, c.client, url, &obs); err != nil {
		return nil, err
	}
	return &obs, nil
}

// MatchClient fetches match records from the tournament data source.
type MatchClient struct {
	client  HTTPClient
	baseURL string
}

// NewMatchClient creates a MatchClient against the given base URL.
func NewMatchClient(client HTTPClient, baseURL string) *MatchClient {
	return &MatchClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Results returns recent match records. Callers filter on status.
func (c *MatchClient) Results(ctx context.Context) ([]model.MatchResult, error) {
	var results []model.MatchResult
	url := c.baseURL + "/matches/results"
	if err := getJSON(ctx, c.client, url, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Upcoming returns matches kicking off within the given number of hours.
func (c *MatchClient) Upcoming(ctx context.Context, hours int) ([]model.UpcomingMatch, error) {
	var matches []model.UpcomingMatch
	url := fmt.Sprintf("%s/gameday/upcoming?hours=%d", c.baseURL, hours)
	if err := getJSON(ctx, c.client, url, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func getJSON(ctx context.Context, client HTTPClient, url string, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
