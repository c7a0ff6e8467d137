// Package notify owns the uniform notification shape shared by every trigger
// source and the reminder scheduler, and the single write path into the
// persisted alert list.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"matchtrip/internal/model"
	"matchtrip/internal/storage"
)

// Pusher delivers a notification through the platform push facility.
// Implementations must be fire-and-forget.
type Pusher interface {
	Push(title, body string)
}

// Draft is a notification before the center assigns its identity.
type Draft struct {
	Category     model.Category
	Title        string
	Body         string
	Priority     model.Priority
	ActionTarget string
	Payload      map[string]string
}

// Center assigns IDs and timestamps, persists notifications with eviction,
// and pushes high-priority alerts.
type Center struct {
	store  storage.Storage
	pusher Pusher
	log    *slog.Logger
	now    func() time.Time
}

// NewCenter creates a Center. pusher may be nil (push disabled).
func NewCenter(store storage.Storage, pusher Pusher, log *slog.Logger) *Center {
	return &Center{
		store:  store,
		pusher: pusher,
		log:    log,
		now:    time.Now,
	}
}

// SetNow overrides the clock, for tests.
func (c *Center) SetNow(now func() time.Time) {
	c.now = now
}

// Add persists a new notification and returns it with ID and timestamp
// assigned. High-priority drafts are also pushed; push failure never affects
// the stored notification.
func (c *Center) Add(ctx context.Context, d Draft) (model.Notification, error) {
	n := model.Notification{
		ID:           fmt.Sprintf("%s-%s", d.Category, uuid.NewString()),
		Category:     d.Category,
		Title:        d.Title,
		Body:         d.Body,
		CreatedAt:    c.now().UTC(),
		ActionTarget: d.ActionTarget,
		Payload:      d.Payload,
	}

	if err := c.store.InsertNotification(ctx, &n); err != nil {
		return model.Notification{}, fmt.Errorf("store notification: %w", err)
	}

	c.log.Info("notification added", "category", n.Category, "title", n.Title)

	if d.Priority == model.PriorityHigh && c.pusher != nil {
		c.pusher.Push(n.Title, n.Body)
	}
	return n, nil
}

// List returns all stored notifications, most recent first.
func (c *Center) List(ctx context.Context) ([]model.Notification, error) {
	return c.store.ListNotifications(ctx)
}

// MarkRead flips the read flag on one notification.
func (c *Center) MarkRead(ctx context.Context, id string) error {
	return c.store.MarkNotificationRead(ctx, id)
}

// MarkAllRead flips the read flag on every notification.
func (c *Center) MarkAllRead(ctx context.Context) error {
	return c.store.MarkAllNotificationsRead(ctx)
}

// Clear removes all stored notifications.
func (c *Center) Clear(ctx context.Context) error {
	return c.store.ClearNotifications(ctx)
}
