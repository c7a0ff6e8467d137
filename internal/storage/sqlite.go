package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"matchtrip/internal/model"
	"matchtrip/migrations"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

// SQLite implements Storage backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// --------------------------------------------------------------------------
// Notifications
// --------------------------------------------------------------------------

// InsertNotification persists a notification and evicts the oldest entries
// beyond NotificationCap.
func (s *SQLite) InsertNotification(ctx context.Context, n *model.Notification) error {
	payload := ""
	if len(n.Payload) > 0 {
		raw, err := json.Marshal(n.Payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		payload = string(raw)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO notifications (id, category, title, body, action_target, payload, read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, string(n.Category), n.Title, n.Body, n.ActionTarget, payload,
		boolToInt(n.Read), n.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM notifications WHERE id NOT IN (
		     SELECT id FROM notifications ORDER BY created_at DESC, rowid DESC LIMIT ?
		 )`, NotificationCap,
	)
	if err != nil {
		return fmt.Errorf("evict notifications: %w", err)
	}
	return tx.Commit()
}

// ListNotifications returns all stored notifications, most recent first.
func (s *SQLite) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, title, body, action_target, payload, read, created_at
		 FROM notifications ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var list []model.Notification
	for rows.Next() {
		var n model.Notification
		var category, payload, created string
		var read int
		if err := rows.Scan(&n.ID, &category, &n.Title, &n.Body, &n.ActionTarget, &payload, &read, &created); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Category = model.Category(category)
		n.Read = read == 1
		n.CreatedAt, _ = time.Parse(timeLayout, created)
		if payload != "" {
			// Corrupt payloads degrade to an empty map, not an error.
			_ = json.Unmarshal([]byte(payload), &n.Payload)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// MarkNotificationRead flips the read flag on a single notification.
func (s *SQLite) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE notifications SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// MarkAllNotificationsRead flips the read flag on every notification.
func (s *SQLite) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `UPDATE notifications SET read = 1`)
	if err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

// ClearNotifications removes all stored notifications.
func (s *SQLite) ClearNotifications(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM notifications`)
	if err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Dedup ledger
// --------------------------------------------------------------------------

// HasFired reports whether a dedup key has already been recorded.
func (s *SQLite) HasFired(ctx context.Context, key string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM fired_keys WHERE key = ?`, key,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check fired: %w", err)
	}
	return count > 0, nil
}

// MarkFired records a dedup key. Recording the same key twice is a no-op.
// When maxKeys > 0 the namespace is trimmed to its most recent maxKeys
// entries so unbounded sources cannot grow the ledger forever.
func (s *SQLite) MarkFired(ctx context.Context, namespace, key string, maxKeys int) error {
	now := time.Now().UTC().Format(timeLayout)
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO fired_keys (key, namespace, fired_at) VALUES (?, ?, ?)`,
		key, namespace, now,
	)
	if err != nil {
		return fmt.Errorf("mark fired: %w", err)
	}

	if maxKeys > 0 {
		_, err = s.db.ExecContext(ctx,
			`DELETE FROM fired_keys WHERE namespace = ? AND key NOT IN (
			     SELECT key FROM fired_keys WHERE namespace = ?
			     ORDER BY fired_at DESC, rowid DESC LIMIT ?
			 )`, namespace, namespace, maxKeys,
		)
		if err != nil {
			return fmt.Errorf("trim fired keys: %w", err)
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// Cooldowns
// --------------------------------------------------------------------------

// LastFired returns the last time a cooldown scope fired, if ever.
func (s *SQLite) LastFired(ctx context.Context, scope string) (time.Time, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT last_fired_at FROM cooldowns WHERE scope = ?`, scope,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get cooldown: %w", err)
	}
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		// Corrupt timestamp: treat as never fired.
		return time.Time{}, false, nil
	}
	return t, true, nil
}

// TouchCooldown records the firing time for a cooldown scope.
func (s *SQLite) TouchCooldown(ctx context.Context, scope string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cooldowns (scope, last_fired_at) VALUES (?, ?)
		 ON CONFLICT(scope) DO UPDATE SET last_fired_at = excluded.last_fired_at`,
		scope, at.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("touch cooldown: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Reminders
// --------------------------------------------------------------------------

// InsertReminders persists a batch of reminders.
func (s *SQLite) InsertReminders(ctx context.Context, rs []model.Reminder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range rs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO reminders (id, match_id, kind, trigger_at, message, fired, fired_at)
			 VALUES (?, ?, ?, ?, ?, ?, NULL)`,
			r.ID, r.MatchID, string(r.Kind), r.TriggerAt.UTC().Format(timeLayout),
			r.Message, boolToInt(r.Fired),
		)
		if err != nil {
			return fmt.Errorf("insert reminder: %w", err)
		}
	}
	return tx.Commit()
}

// ListReminders returns all reminders ordered by trigger time.
func (s *SQLite) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	return s.queryReminders(ctx,
		`SELECT id, match_id, kind, trigger_at, message, fired, fired_at
		 FROM reminders ORDER BY trigger_at`)
}

// ListRemindersForMatch returns all reminders for one match.
func (s *SQLite) ListRemindersForMatch(ctx context.Context, matchID int64) ([]model.Reminder, error) {
	return s.queryReminders(ctx,
		`SELECT id, match_id, kind, trigger_at, message, fired, fired_at
		 FROM reminders WHERE match_id = ? ORDER BY trigger_at`, matchID)
}

func (s *SQLite) queryReminders(ctx context.Context, query string, args ...any) ([]model.Reminder, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var list []model.Reminder
	for rows.Next() {
		var r model.Reminder
		var kind, triggerAt string
		var fired int
		var firedAt sql.NullString
		if err := rows.Scan(&r.ID, &r.MatchID, &kind, &triggerAt, &r.Message, &fired, &firedAt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		r.Kind = model.ReminderKind(kind)
		r.TriggerAt, _ = time.Parse(timeLayout, triggerAt)
		r.Fired = fired == 1
		if firedAt.Valid {
			t, err := time.Parse(timeLayout, firedAt.String)
			if err == nil {
				r.FiredAt = &t
			}
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

// MarkReminderFired flags a reminder as fired at the given time.
func (s *SQLite) MarkReminderFired(ctx context.Context, id string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE reminders SET fired = 1, fired_at = ? WHERE id = ?`,
		at.UTC().Format(timeLayout), id,
	)
	if err != nil {
		return fmt.Errorf("mark reminder fired: %w", err)
	}
	return nil
}

// DeleteRemindersForMatch removes every reminder for a match, fired or not.
func (s *SQLite) DeleteRemindersForMatch(ctx context.Context, matchID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM reminders WHERE match_id = ?`, matchID)
	if err != nil {
		return fmt.Errorf("delete reminders: %w", err)
	}
	return nil
}

// PruneFiredRemindersBefore removes fired reminders whose trigger time is
// older than cutoff, bounding retained state.
func (s *SQLite) PruneFiredRemindersBefore(ctx context.Context, cutoff time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM reminders WHERE fired = 1 AND trigger_at < ?`,
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("prune reminders: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------------
// App state
// --------------------------------------------------------------------------

// GetState returns a state value and whether it exists.
func (s *SQLite) GetState(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get state: %w", err)
	}
	return value, true, nil
}

// SetState stores a state value, replacing any previous one.
func (s *SQLite) SetState(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set state: %w", err)
	}
	return nil
}

// DeleteState removes a state value.
func (s *SQLite) DeleteState(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Followed teams
// --------------------------------------------------------------------------

// FollowTeam adds a team code to the followed set. Following twice is a no-op.
func (s *SQLite) FollowTeam(ctx context.Context, code string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO followed_teams (code, followed_at) VALUES (?, ?)`,
		code, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("follow team: %w", err)
	}
	return nil
}

// UnfollowTeam removes a team code from the followed set.
func (s *SQLite) UnfollowTeam(ctx context.Context, code string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM followed_teams WHERE code = ?`, code)
	if err != nil {
		return fmt.Errorf("unfollow team: %w", err)
	}
	return nil
}

// ListFollowedTeams returns the followed team codes in follow order.
func (s *SQLite) ListFollowedTeams(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT code FROM followed_teams ORDER BY followed_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query followed teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var codes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan team code: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
