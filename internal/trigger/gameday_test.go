package trigger

import (
	"context"
	"strings"
	"testing"
	"time"

	"matchtrip/internal/feeds"
	"matchtrip/internal/model"
	"matchtrip/internal/notify"
)

const upcomingBody = `[
	{"id": 201, "homeTeam": "United States", "awayTeam": "Canada", "venue": "Arrowhead Stadium", "city": "Kansas City", "dateTime": "2026-06-15T19:00:00Z", "hoursUntilKickoff": 3},
	{"id": 202, "homeTeam": "Brazil", "awayTeam": "France", "venue": "MetLife Stadium", "city": "New York/New Jersey", "dateTime": "2026-06-15T21:00:00Z", "hoursUntilKickoff": 5}
]`

func newGameDayTrigger(t *testing.T, body string) (*GameDay, *notify.Center) {
	t.Helper()
	store := newTestStore(t)
	center := notify.NewCenter(store, nil, discardLogger())
	client := feeds.NewMatchClient(&mockHTTP{body: body}, "http://test/api")
	return NewGameDay(store, center, client, discardLogger()), center
}

func TestGameDayFiresAtThreeHours(t *testing.T) {
	ctx := context.Background()
	trig, center := newGameDayTrigger(t, upcomingBody)

	day := time.Date(2026, 6, 15, 16, 0, 0, 0, time.UTC)
	trig.SetNow(func() time.Time { return day })

	if err := trig.Evaluate(ctx, ""); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	// Only the 3-hour match alerts; the 5-hour one does not.
	got := listNotifications(t, center)
	if len(got) != 1 {
		t.Fatalf("got %d alerts, want 1", len(got))
	}
	if got[0].Category != model.CategoryGameDay {
		t.Errorf("category = %s", got[0].Category)
	}
	if got[0].Title != "United States vs Canada in 3 hours" {
		t.Errorf("title = %q", got[0].Title)
	}
	if !strings.Contains(got[0].Body, "Heading to Arrowhead Stadium?") {
		t.Errorf("body missing venue: %q", got[0].Body)
	}
	if !strings.Contains(got[0].Body, "402 Bus") {
		t.Errorf("body missing transport tip: %q", got[0].Body)
	}

	// Re-evaluating the same day is suppressed.
	if err := trig.Evaluate(ctx, ""); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got := listNotifications(t, center); len(got) != 1 {
		t.Errorf("got %d alerts after re-evaluation, want 1", len(got))
	}
}

func TestGameDayFetchFailureIsNoData(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	center := notify.NewCenter(store, nil, discardLogger())
	client := feeds.NewMatchClient(&mockHTTP{statusCode: 500}, "http://test/api")
	trig := NewGameDay(store, center, client, discardLogger())

	if err := trig.Evaluate(ctx, ""); err != nil {
		t.Fatalf("fetch failure surfaced as error: %v", err)
	}
	if got := listNotifications(t, center); len(got) != 0 {
		t.Errorf("got %d alerts on fetch failure, want 0", len(got))
	}
}

func TestGameDayEmptyWindow(t *testing.T) {
	ctx := context.Background()
	trig, center := newGameDayTrigger(t, `[]`)

	if err := trig.Evaluate(ctx, ""); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got := listNotifications(t, center); len(got) != 0 {
		t.Errorf("got %d alerts for empty window, want 0", len(got))
	}
}
