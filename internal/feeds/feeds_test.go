package feeds

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"matchtrip/internal/model"
)

type mockTransport struct {
	body       string
	statusCode int
	err        error
	lastURL    string
}

func (m *mockTransport) Do(req *http.Request) (*http.Response, error) {
	m.lastURL = req.URL.String()
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{
		StatusCode: m.statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(m.body)),
	}, nil
}

func TestWeatherCurrent(t *testing.T) {
	tests := []struct {
		name      string
		transport *mockTransport
		want      *model.WeatherObservation
		wantErr   bool
	}{
		{
			name: "successful fetch",
			transport: &mockTransport{
				body:       `{"city":"Dallas","temperatureF":97.5,"feelsLikeF":104,"humidity":55,"description":"sunny"}`,
				statusCode: 200,
			},
			want: &model.WeatherObservation{City: "Dallas", TemperatureF: 97.5, FeelsLikeF: 104, Humidity: 55, Description: "sunny"},
		},
		{
			name:      "http error status",
			transport: &mockTransport{body: "oops", statusCode: 500},
			wantErr:   true,
		},
		{
			name:      "network error",
			transport: &mockTransport{err: io.ErrUnexpectedEOF},
			wantErr:   true,
		},
		{
			name:      "invalid json",
			transport: &mockTransport{body: "not json", statusCode: 200},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewWeatherClient(tt.transport, "http://test/api/")
			got, err := c.Current(context.Background(), "dallas")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("current: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Current mismatch (-want +got):\n%s", diff)
			}
			if tt.transport.lastURL != "http://test/api/weather/dallas" {
				t.Errorf("url = %q", tt.transport.lastURL)
			}
		})
	}
}

func TestMatchEndpoints(t *testing.T) {
	transport := &mockTransport{
		body:       `[{"matchId":101,"homeTeam":"United States","awayTeam":"Mexico","homeScore":2,"awayScore":1,"status":"finished","venue":"Arrowhead Stadium"}]`,
		statusCode: 200,
	}
	c := NewMatchClient(transport, "http://test/api")

	results, err := c.Results(context.Background())
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	want := []model.MatchResult{{
		MatchID: 101, HomeTeam: "United States", AwayTeam: "Mexico",
		HomeScore: 2, AwayScore: 1, Status: model.MatchFinished, Venue: "Arrowhead Stadium",
	}}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("Results mismatch (-want +got):\n%s", diff)
	}
	if transport.lastURL != "http://test/api/matches/results" {
		t.Errorf("url = %q", transport.lastURL)
	}

	transport.body = `[{"id":201,"homeTeam":"United States","awayTeam":"Canada","venue":"Arrowhead Stadium","city":"Kansas City","dateTime":"2026-06-15T19:00:00Z","hoursUntilKickoff":3}]`
	matches, err := c.Upcoming(context.Background(), 6)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(matches) != 1 || matches[0].HoursUntilKickoff != 3 {
		t.Errorf("matches = %+v", matches)
	}
	if transport.lastURL != "http://test/api/gameday/upcoming?hours=6" {
		t.Errorf("url = %q", transport.lastURL)
	}
}
