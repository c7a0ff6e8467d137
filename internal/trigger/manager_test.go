package trigger

import (
	"context"
	"testing"
	"time"

	"matchtrip/internal/feeds"
	"matchtrip/internal/notify"
	"matchtrip/internal/reminder"
	"matchtrip/internal/storage"
)

// managerTestNoon pins every trigger clock to a daytime hour so night tips
// never fire incidentally.
var managerTestNoon = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) (*Manager, *notify.Center, *storage.SQLite) {
	t.Helper()
	store := newTestStore(t)
	log := discardLogger()
	center := notify.NewCenter(store, nil, log)

	matchClient := feeds.NewMatchClient(&mockHTTP{body: `[]`}, "http://test/api")
	weatherClient := feeds.NewWeatherClient(&mockHTTP{body: `{"city":"Dallas","temperatureF":97,"humidity":50}`}, "http://test/api")

	now := func() time.Time { return managerTestNoon }

	gameDay := NewGameDay(store, center, matchClient, log)
	gameDay.SetNow(now)
	weather := NewWeather(store, center, weatherClient, log)
	weather.SetNow(now)
	safety := NewSafety(store, center, log)
	safety.SetNow(now)
	stadium := NewStadium(store, center, log)
	stadium.SetNow(now)

	reminders := reminder.NewScheduler(store, center, log)
	m := NewManager(store, reminders,
		gameDay,
		NewMatchResult(store, center, matchClient, log),
		weather,
		safety,
		stadium,
		NewCurrency(store, center, log),
		log,
	)
	m.SetNow(now)
	return m, center, store
}

func TestRunAllChecksMinSpacing(t *testing.T) {
	ctx := context.Background()
	m, center, _ := newTestManager(t)

	m.SetCurrentCity(ctx, "dallas")
	if got := len(listNotifications(t, center)); got != 0 {
		t.Fatalf("got %d alerts from the first city update, want 0", got)
	}

	m.RunAllChecks(ctx)
	got := listNotifications(t, center)
	if len(got) != 1 {
		t.Fatalf("got %d alerts from first cycle, want 1 weather alert", len(got))
	}
	if got[0].Category != "weather" {
		t.Errorf("category = %s, want weather", got[0].Category)
	}

	// Thirty seconds later the spacing guard suppresses the whole cycle.
	m.SetNow(func() time.Time { return managerTestNoon.Add(30 * time.Second) })
	m.RunAllChecks(ctx)
	if got := len(listNotifications(t, center)); got != 1 {
		t.Errorf("got %d alerts after guarded cycle, want 1", got)
	}

	// Past the guard the cycle runs again, but the weather cooldown holds.
	m.SetNow(func() time.Time { return managerTestNoon.Add(2 * time.Minute) })
	m.RunAllChecks(ctx)
	if got := len(listNotifications(t, center)); got != 1 {
		t.Errorf("got %d alerts after second cycle, want 1", got)
	}
}

func TestSetCurrentCityFiresOnChange(t *testing.T) {
	ctx := context.Background()
	m, center, _ := newTestManager(t)

	m.SetCurrentCity(ctx, "kansasCity")
	if got := len(listNotifications(t, center)); got != 0 {
		t.Fatalf("got %d alerts from the first city update, want 0", got)
	}

	// Same city again: nothing new.
	m.SetCurrentCity(ctx, "kansasCity")
	if got := len(listNotifications(t, center)); got != 0 {
		t.Errorf("got %d alerts after same-city update, want 0", got)
	}

	// Crossing the border fires the currency alert.
	m.SetCurrentCity(ctx, "mexicoCity")
	got := listNotifications(t, center)
	if len(got) != 1 {
		t.Fatalf("got %d alerts after country change, want 1", len(got))
	}
	if got[0].Title != "Currency Change: MXN" {
		t.Errorf("title = %q", got[0].Title)
	}
	if m.CurrentCity() != "mexicoCity" {
		t.Errorf("CurrentCity = %q, want mexicoCity", m.CurrentCity())
	}
}

func TestUpdateLocationRunsGeofences(t *testing.T) {
	ctx := context.Background()
	m, center, _ := newTestManager(t)

	m.UpdateLocation(ctx, nearArrowheadLat, nearArrowheadLon)
	got := listNotifications(t, center)
	if len(got) != 1 {
		t.Fatalf("got %d alerts near stadium, want 1", len(got))
	}
	if got[0].Title != "Arriving at Arrowhead Stadium" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestManagerStartStopIdempotent(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	m.Start(ctx)
	m.Start(ctx)

	status, err := m.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.IsRunning {
		t.Error("status reports not running after Start")
	}

	m.Stop()
	m.Stop()

	status, err = m.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.IsRunning {
		t.Error("status reports running after Stop")
	}
}

func TestManagerStatus(t *testing.T) {
	ctx := context.Background()
	m, _, store := newTestManager(t)

	if err := store.FollowTeam(ctx, "USA"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	kickoff := time.Now().UTC().Add(48 * time.Hour)
	if err := m.ScheduleMatchReminders(ctx, 42, kickoff, "United States", "Canada", "Arrowhead Stadium"); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	m.SetCurrentCity(ctx, "kansasCity")

	status, err := m.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.CurrentCity != "kansasCity" {
		t.Errorf("CurrentCity = %q", status.CurrentCity)
	}
	if len(status.FollowedTeams) != 1 || status.FollowedTeams[0] != "USA" {
		t.Errorf("FollowedTeams = %v", status.FollowedTeams)
	}
	if status.PendingReminders != 3 {
		t.Errorf("PendingReminders = %d, want 3", status.PendingReminders)
	}
}
