package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"matchtrip/internal/model"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("new sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNotificationRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	n := model.Notification{
		ID:           "weather-abc",
		Category:     model.CategoryWeather,
		Title:        "Hydration Alert",
		Body:         "Stay hydrated",
		CreatedAt:    time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC),
		ActionTarget: "/weather",
		Payload:      map[string]string{"cityKey": "dallas"},
	}
	if err := s.InsertNotification(ctx, &n); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.ListNotifications(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]model.Notification{n}, got); diff != "" {
		t.Errorf("ListNotifications mismatch (-want +got):\n%s", diff)
	}
}

func TestNotificationEviction(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	total := NotificationCap + 10
	for i := 0; i < total; i++ {
		n := model.Notification{
			ID:        fmt.Sprintf("general-%03d", i),
			Category:  model.CategoryGeneral,
			Title:     fmt.Sprintf("alert %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.InsertNotification(ctx, &n); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	got, err := s.ListNotifications(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != NotificationCap {
		t.Fatalf("got %d notifications, want %d", len(got), NotificationCap)
	}
	// Most recent first, oldest 10 evicted.
	if got[0].ID != fmt.Sprintf("general-%03d", total-1) {
		t.Errorf("newest = %s, want general-%03d", got[0].ID, total-1)
	}
	if got[len(got)-1].ID != fmt.Sprintf("general-%03d", 10) {
		t.Errorf("oldest retained = %s, want general-010", got[len(got)-1].ID)
	}
}

func TestNotificationReadFlags(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	for i := 0; i < 3; i++ {
		n := model.Notification{
			ID:        fmt.Sprintf("general-%d", i),
			Category:  model.CategoryGeneral,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.InsertNotification(ctx, &n); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	if err := s.MarkNotificationRead(ctx, "general-1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	list, _ := s.ListNotifications(ctx)
	readCount := 0
	for _, n := range list {
		if n.Read {
			readCount++
		}
	}
	if readCount != 1 {
		t.Errorf("read count after MarkNotificationRead = %d, want 1", readCount)
	}

	if err := s.MarkAllNotificationsRead(ctx); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	list, _ = s.ListNotifications(ctx)
	for _, n := range list {
		if !n.Read {
			t.Errorf("notification %s still unread after MarkAllNotificationsRead", n.ID)
		}
	}

	if err := s.ClearNotifications(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	list, _ = s.ListNotifications(ctx)
	if len(list) != 0 {
		t.Errorf("got %d notifications after clear, want 0", len(list))
	}
}

func TestFiredKeys(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	fired, err := s.HasFired(ctx, "stadium:Arrowhead Stadium:2026-06-15")
	if err != nil {
		t.Fatalf("has fired: %v", err)
	}
	if fired {
		t.Fatal("key fired before marking")
	}

	if err := s.MarkFired(ctx, "stadium", "stadium:Arrowhead Stadium:2026-06-15", 0); err != nil {
		t.Fatalf("mark fired: %v", err)
	}
	// Marking again must be a no-op, not an error.
	if err := s.MarkFired(ctx, "stadium", "stadium:Arrowhead Stadium:2026-06-15", 0); err != nil {
		t.Fatalf("mark fired twice: %v", err)
	}

	fired, err = s.HasFired(ctx, "stadium:Arrowhead Stadium:2026-06-15")
	if err != nil {
		t.Fatalf("has fired: %v", err)
	}
	if !fired {
		t.Error("key not fired after marking")
	}
}

func TestFiredKeysNamespaceTrim(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	const max = 5
	for i := 0; i < max+3; i++ {
		key := fmt.Sprintf("matchResult:%d", i)
		if err := s.MarkFired(ctx, "matchResult", key, max); err != nil {
			t.Fatalf("mark fired %d: %v", i, err)
		}
	}

	// Oldest keys trimmed away, newest retained.
	fired, _ := s.HasFired(ctx, "matchResult:0")
	if fired {
		t.Error("oldest key survived trim")
	}
	fired, _ = s.HasFired(ctx, fmt.Sprintf("matchResult:%d", max+2))
	if !fired {
		t.Error("newest key missing after trim")
	}
}

func TestCooldowns(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	_, exists, err := s.LastFired(ctx, "weather:dallas")
	if err != nil {
		t.Fatalf("last fired: %v", err)
	}
	if exists {
		t.Fatal("cooldown exists before touch")
	}

	at := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)
	if err := s.TouchCooldown(ctx, "weather:dallas", at); err != nil {
		t.Fatalf("touch: %v", err)
	}

	got, exists, err := s.LastFired(ctx, "weather:dallas")
	if err != nil {
		t.Fatalf("last fired: %v", err)
	}
	if !exists {
		t.Fatal("cooldown missing after touch")
	}
	if !got.Equal(at) {
		t.Errorf("LastFired = %v, want %v", got, at)
	}

	later := at.Add(4 * time.Hour)
	if err := s.TouchCooldown(ctx, "weather:dallas", later); err != nil {
		t.Fatalf("touch again: %v", err)
	}
	got, _, _ = s.LastFired(ctx, "weather:dallas")
	if !got.Equal(later) {
		t.Errorf("LastFired after second touch = %v, want %v", got, later)
	}
}

func TestReminderLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	kickoff := time.Date(2026, 6, 20, 19, 0, 0, 0, time.UTC)
	batch := []model.Reminder{
		{ID: "reminder-1", MatchID: 42, Kind: model.ReminderPackBag, TriggerAt: kickoff.Add(-24 * time.Hour), Message: "pack"},
		{ID: "reminder-2", MatchID: 42, Kind: model.ReminderLeaveHotel, TriggerAt: kickoff.Add(-4 * time.Hour), Message: "leave"},
		{ID: "reminder-3", MatchID: 99, Kind: model.ReminderGatesOpen, TriggerAt: kickoff.Add(-2 * time.Hour), Message: "gates"},
	}
	if err := s.InsertReminders(ctx, batch); err != nil {
		t.Fatalf("insert: %v", err)
	}

	forMatch, err := s.ListRemindersForMatch(ctx, 42)
	if err != nil {
		t.Fatalf("list for match: %v", err)
	}
	if diff := cmp.Diff(batch[:2], forMatch); diff != "" {
		t.Errorf("ListRemindersForMatch mismatch (-want +got):\n%s", diff)
	}

	firedAt := kickoff.Add(-24 * time.Hour)
	if err := s.MarkReminderFired(ctx, "reminder-1", firedAt); err != nil {
		t.Fatalf("mark fired: %v", err)
	}
	all, _ := s.ListReminders(ctx)
	want := append([]model.Reminder{}, batch...)
	want[0].Fired = true
	want[0].FiredAt = &firedAt
	if diff := cmp.Diff(want, all, cmpopts.SortSlices(func(a, b model.Reminder) bool { return a.ID < b.ID })); diff != "" {
		t.Errorf("ListReminders mismatch (-want +got):\n%s", diff)
	}

	// Prune removes only fired reminders older than the cutoff.
	if err := s.PruneFiredRemindersBefore(ctx, firedAt.Add(time.Hour)); err != nil {
		t.Fatalf("prune: %v", err)
	}
	all, _ = s.ListReminders(ctx)
	if len(all) != 2 {
		t.Fatalf("got %d reminders after prune, want 2", len(all))
	}

	if err := s.DeleteRemindersForMatch(ctx, 42); err != nil {
		t.Fatalf("delete for match: %v", err)
	}
	all, _ = s.ListReminders(ctx)
	if len(all) != 1 || all[0].MatchID != 99 {
		t.Errorf("unexpected reminders after delete: %+v", all)
	}
}

func TestAppState(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	_, exists, err := s.GetState(ctx, "last_detected_country")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if exists {
		t.Fatal("state exists before set")
	}

	if err := s.SetState(ctx, "last_detected_country", "US"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetState(ctx, "last_detected_country", "MX"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, exists, _ := s.GetState(ctx, "last_detected_country")
	if !exists || got != "MX" {
		t.Errorf("GetState = (%q, %v), want (MX, true)", got, exists)
	}

	if err := s.DeleteState(ctx, "last_detected_country"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, exists, _ = s.GetState(ctx, "last_detected_country")
	if exists {
		t.Error("state exists after delete")
	}
}

func TestFollowedTeams(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	if err := s.FollowTeam(ctx, "USA"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := s.FollowTeam(ctx, "MEX"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	// Following the same team twice is a no-op.
	if err := s.FollowTeam(ctx, "USA"); err != nil {
		t.Fatalf("follow twice: %v", err)
	}

	got, err := s.ListFollowedTeams(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"USA", "MEX"}, got); diff != "" {
		t.Errorf("ListFollowedTeams mismatch (-want +got):\n%s", diff)
	}

	if err := s.UnfollowTeam(ctx, "USA"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	got, _ = s.ListFollowedTeams(ctx)
	if diff := cmp.Diff([]string{"MEX"}, got); diff != "" {
		t.Errorf("ListFollowedTeams after unfollow mismatch (-want +got):\n%s", diff)
	}
}
