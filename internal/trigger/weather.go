package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"matchtrip/internal/feeds"
	"matchtrip/internal/model"
	"matchtrip/internal/notify"
	"matchtrip/internal/refdata"
	"matchtrip/internal/storage"
)

// weatherCooldown is the minimum interval between heat alerts for one city.
// Calendar-day dedup is wrong here: still-hazardous conditions should
// re-alert within the same day once the cooldown elapses.
const weatherCooldown = 4 * time.Hour

// Heat thresholds in °F.
const (
	heatAlertTempF     = 90.0
	heatMediumTempF    = 95.0
	heatHighTempF      = 100.0
	humidityAlertPct   = 80.0
	humidityMinTempF   = 80.0
	maxRecommendations = 3
)

// Weather fires hydration/heat alerts from current observations, rate
// limited by a per-city cooldown.
type Weather struct {
	store   storage.Storage
	center  *notify.Center
	weather *feeds.WeatherClient
	log     *slog.Logger
	now     func() time.Time
}

// NewWeather creates the weather-threshold trigger.
func NewWeather(store storage.Storage, center *notify.Center, weather *feeds.WeatherClient, log *slog.Logger) *Weather {
	return &Weather{store: store, center: center, weather: weather, log: log, now: time.Now}
}

// SetNow overrides the clock, for tests.
func (w *Weather) SetNow(now func() time.Time) { w.now = now }

// Name implements Source.
func (w *Weather) Name() string { return "weather" }

// Evaluate fetches the current observation for the city and fires a heat or
// humidity alert when thresholds are met and the cooldown has elapsed.
// Fetch failures are no-data, not errors.
func (w *Weather) Evaluate(ctx context.Context, cityKey string) error {
	scope := "weather:" + cityKey
	now := w.now()

	last, exists, err := w.store.LastFired(ctx, scope)
	if err != nil {
		return fmt.Errorf("read weather cooldown: %w", err)
	}
	if exists && now.Sub(last) < weatherCooldown {
		return nil
	}

	obs, err := w.weather.Current(ctx, cityKey)
	if err != nil {
		w.log.Debug("weather fetch failed", "city", cityKey, "error", err)
		return nil
	}

	title, severity, lead := classify(obs, cityKey)
	if title == "" {
		return nil
	}

	body := composeWeatherBody(lead, obs.TemperatureF, cityKey)

	_, err = w.center.Add(ctx, notify.Draft{
		Category: model.CategoryWeather,
		Title:    title,
		Body:     body,
		Priority: severity,
		Payload: map[string]string{
			"cityKey":      cityKey,
			"temperatureF": fmt.Sprintf("%.0f", obs.TemperatureF),
		},
	})
	if err != nil {
		return err
	}
	return w.store.TouchCooldown(ctx, scope, now)
}

// classify decides whether an observation warrants an alert and returns the
// title, severity, and leading recommendation. Empty title means no alert.
func classify(obs *model.WeatherObservation, cityKey string) (string, model.Priority, string) {
	cityName := refdata.CityName(cityKey)

	if obs.TemperatureF >= heatAlertTempF {
		severity := model.PriorityLow
		switch {
		case obs.TemperatureF >= heatHighTempF:
			severity = model.PriorityHigh
		case obs.TemperatureF >= heatMediumTempF:
			severity = model.PriorityMedium
		}
		title := fmt.Sprintf("Hydration Alert: %s is %.0f°F today", cityName, math.Round(obs.TemperatureF))
		return title, severity, "Stay hydrated and seek air-conditioned areas."
	}

	if obs.Humidity >= humidityAlertPct && obs.TemperatureF >= humidityMinTempF {
		title := fmt.Sprintf("High Humidity Alert: %s has %.0f%% humidity", cityName, obs.Humidity)
		return title, model.PriorityMedium,
			"Take frequent breaks and stay hydrated. The heat index makes it feel hotter."
	}

	return "", "", ""
}

// composeWeatherBody appends up to three graduated recommendations and the
// nearest cooling station to the leading recommendation.
func composeWeatherBody(lead string, temperatureF float64, cityKey string) string {
	var b strings.Builder
	b.WriteString(lead)

	recs := refdata.HydrationRecommendations(temperatureF)
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	if len(recs) > 0 {
		b.WriteString("\n\n• ")
		b.WriteString(strings.Join(recs, "\n• "))
	}

	if stations := refdata.CoolingStations(cityKey); len(stations) > 0 {
		b.WriteString("\n\nNearest cooling station: ")
		b.WriteString(stations[0].Name)
	}
	return b.String()
}
