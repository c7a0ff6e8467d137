// Package storage defines the persistence interface and its implementations.
//
// The store is shared by every trigger source, the reminder scheduler, and
// the notification center. Access is read-modify-write without cross-process
// locking: a single companion process is the unit of serialization, and two
// processes sharing one database file may double-fire. That limitation is
// accepted, matching the single-tab assumption of the source application.
package storage

import (
	"context"
	"time"

	"matchtrip/internal/model"
)

// NotificationCap is the maximum number of stored notifications. Inserting
// beyond the cap evicts the oldest entries first.
const NotificationCap = 50

// Storage is the interface for all persistence operations.
type Storage interface {
	// Notifications — capped, most-recent-first list.
	InsertNotification(ctx context.Context, n *model.Notification) error
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	ClearNotifications(ctx context.Context) error

	// Dedup ledger. MarkFired is idempotent; keys in one namespace are
	// capped to the most recent maxKeys entries.
	HasFired(ctx context.Context, key string) (bool, error)
	MarkFired(ctx context.Context, namespace, key string, maxKeys int) error

	// Cooldowns.
	LastFired(ctx context.Context, scope string) (time.Time, bool, error)
	TouchCooldown(ctx context.Context, scope string, at time.Time) error

	// Reminders.
	InsertReminders(ctx context.Context, rs []model.Reminder) error
	ListReminders(ctx context.Context) ([]model.Reminder, error)
	ListRemindersForMatch(ctx context.Context, matchID int64) ([]model.Reminder, error)
	MarkReminderFired(ctx context.Context, id string, at time.Time) error
	DeleteRemindersForMatch(ctx context.Context, matchID int64) error
	PruneFiredRemindersBefore(ctx context.Context, cutoff time.Time) error

	// App state — small string key/value pairs (last country, run guards).
	GetState(ctx context.Context, key string) (string, bool, error)
	SetState(ctx context.Context, key, value string) error
	DeleteState(ctx context.Context, key string) error

	// Followed teams.
	FollowTeam(ctx context.Context, code string) error
	UnfollowTeam(ctx context.Context, code string) error
	ListFollowedTeams(ctx context.Context) ([]string, error)

	Close() error
}
