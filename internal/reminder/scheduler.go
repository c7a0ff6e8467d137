// Package reminder schedules pre-match reminders at fixed offsets before
// kickoff and fires them through the notification center as their trigger
// times pass.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"matchtrip/internal/model"
	"matchtrip/internal/notify"
	"matchtrip/internal/storage"
)

// checkInterval is how often the scheduler scans for due reminders. Fired
// reminders older than pruneAfter are removed on each scan.
const (
	checkInterval = time.Minute
	pruneAfter    = 24 * time.Hour
)

// offset pairs a reminder kind with its lead time before kickoff and its
// message template.
type offset struct {
	kind    model.ReminderKind
	before  time.Duration
	title   string
	message func(home, away, venue string) string
}

var offsets = []offset{
	{
		kind:   model.ReminderPackBag,
		before: 24 * time.Hour,
		title:  "Pack Your Match Day Bag",
		message: func(home, away, venue string) string {
			return fmt.Sprintf("Pack your bag for tomorrow's match: %s vs %s at %s. Don't forget: tickets, ID, comfortable shoes, and a portable charger!", home, away, venue)
		},
	},
	{
		kind:   model.ReminderLeaveHotel,
		before: 4 * time.Hour,
		title:  "Time to Leave",
		message: func(home, away, _ string) string {
			return fmt.Sprintf("Time to head out! %s vs %s kicks off in 4 hours. Leave now to avoid traffic and explore the stadium area.", home, away)
		},
	},
	{
		kind:   model.ReminderGatesOpen,
		before: 2 * time.Hour,
		title:  "Stadium Gates Open",
		message: func(home, away, _ string) string {
			return fmt.Sprintf("Stadium gates are now open for %s vs %s! Arrive early for the best experience and pre-match atmosphere.", home, away)
		},
	},
}

// Scheduler persists per-match reminders and fires the due ones.
type Scheduler struct {
	store  storage.Storage
	center *notify.Center
	log    *slog.Logger
	now    func() time.Time
}

// NewScheduler creates a Scheduler.
func NewScheduler(store storage.Storage, center *notify.Center, log *slog.Logger) *Scheduler {
	return &Scheduler{store: store, center: center, log: log, now: time.Now}
}

// SetNow overrides the clock, for tests.
func (s *Scheduler) SetNow(now func() time.Time) { s.now = now }

// Schedule creates the standard reminders for a match kickoff. Offsets that
// are already in the past are skipped. Scheduling a match that already has
// reminders is a no-op, so repeated calls are safe.
func (s *Scheduler) Schedule(ctx context.Context, matchID int64, kickoff time.Time, home, away, venue string) ([]model.Reminder, error) {
	existing, err := s.store.ListRemindersForMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	now := s.now()
	var batch []model.Reminder
	for _, o := range offsets {
		triggerAt := kickoff.Add(-o.before)
		if !triggerAt.After(now) {
			continue
		}
		batch = append(batch, model.Reminder{
			ID:        fmt.Sprintf("reminder-%s", uuid.NewString()),
			MatchID:   matchID,
			Kind:      o.kind,
			TriggerAt: triggerAt.UTC(),
			Message:   o.message(home, away, venue),
		})
	}
	if len(batch) == 0 {
		return nil, nil
	}

	if err := s.store.InsertReminders(ctx, batch); err != nil {
		return nil, fmt.Errorf("insert reminders: %w", err)
	}
	s.log.Info("reminders scheduled", "match_id", matchID, "count", len(batch))
	return batch, nil
}

// Cancel removes every reminder for a match, fired or pending.
func (s *Scheduler) Cancel(ctx context.Context, matchID int64) error {
	return s.store.DeleteRemindersForMatch(ctx, matchID)
}

// Pending returns scheduled reminders that have not fired yet, soonest first.
func (s *Scheduler) Pending(ctx context.Context) ([]model.Reminder, error) {
	all, err := s.store.ListReminders(ctx)
	if err != nil {
		return nil, err
	}
	var pending []model.Reminder
	for _, r := range all {
		if !r.Fired {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

// Check fires every due reminder and prunes fired reminders older than the
// retention window. Called once per scheduler tick.
func (s *Scheduler) Check(ctx context.Context) error {
	now := s.now()

	all, err := s.store.ListReminders(ctx)
	if err != nil {
		return fmt.Errorf("list reminders: %w", err)
	}

	for _, r := range all {
		if r.Fired || r.TriggerAt.After(now) {
			continue
		}
		if err := s.fire(ctx, r, now); err != nil {
			s.log.Error("failed to fire reminder", "id", r.ID, "error", err)
		}
	}

	return s.store.PruneFiredRemindersBefore(ctx, now.Add(-pruneAfter))
}

func (s *Scheduler) fire(ctx context.Context, r model.Reminder, now time.Time) error {
	title := "Reminder"
	priority := model.PriorityMedium
	for _, o := range offsets {
		if o.kind == r.Kind {
			title = o.title
			break
		}
	}
	if r.Kind == model.ReminderLeaveHotel {
		priority = model.PriorityHigh
	}

	_, err := s.center.Add(ctx, notify.Draft{
		Category: model.CategoryReminder,
		Title:    title,
		Body:     r.Message,
		Priority: priority,
		Payload: map[string]string{
			"matchId": fmt.Sprintf("%d", r.MatchID),
			"kind":    string(r.Kind),
		},
	})
	if err != nil {
		return err
	}
	return s.store.MarkReminderFired(ctx, r.ID, now)
}

// Run checks immediately and then once per interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("reminder scheduler started", "interval", checkInterval)

	if err := s.Check(ctx); err != nil {
		s.log.Error("reminder check failed", "error", err)
	}

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			if err := s.Check(ctx); err != nil {
				s.log.Error("reminder check failed", "error", err)
			}
		}
	}
}
