package notify

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"matchtrip/internal/model"
	"matchtrip/internal/storage"
)

type pushedMsg struct {
	Title string
	Body  string
}

type mockPusher struct {
	mu     sync.Mutex
	pushed []pushedMsg
}

func (m *mockPusher) Push(title, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushed = append(m.pushed, pushedMsg{Title: title, Body: body})
}

func (m *mockPusher) all() []pushedMsg {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]pushedMsg, len(m.pushed))
	copy(cp, m.pushed)
	return cp
}

func newTestStore(t *testing.T) *storage.SQLite {
	t.Helper()
	s, err := storage.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("new sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	center := NewCenter(newTestStore(t), nil, discardLogger())

	at := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	center.SetNow(func() time.Time { return at })

	got, err := center.Add(ctx, Draft{
		Category: model.CategoryCurrency,
		Title:    "Currency Change: MXN",
		Body:     "Welcome to Mexico!",
		Priority: model.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if !strings.HasPrefix(got.ID, "currency-") {
		t.Errorf("ID = %q, want currency- prefix", got.ID)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, at)
	}

	list, err := center.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]model.Notification{got}, list); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestAddPushesOnlyHighPriority(t *testing.T) {
	ctx := context.Background()
	pusher := &mockPusher{}
	center := NewCenter(newTestStore(t), pusher, discardLogger())

	tests := []struct {
		name     string
		priority model.Priority
		wantPush bool
	}{
		{name: "low", priority: model.PriorityLow, wantPush: false},
		{name: "medium", priority: model.PriorityMedium, wantPush: false},
		{name: "high", priority: model.PriorityHigh, wantPush: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(pusher.all())
			_, err := center.Add(ctx, Draft{
				Category: model.CategoryGeneral,
				Title:    "title",
				Body:     "body",
				Priority: tt.priority,
			})
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			pushed := len(pusher.all()) > before
			if pushed != tt.wantPush {
				t.Errorf("pushed = %v, want %v", pushed, tt.wantPush)
			}
		})
	}
}

func TestMarkReadAndClear(t *testing.T) {
	ctx := context.Background()
	center := NewCenter(newTestStore(t), nil, discardLogger())

	first, err := center.Add(ctx, Draft{Category: model.CategoryGeneral, Title: "a"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := center.Add(ctx, Draft{Category: model.CategoryGeneral, Title: "b"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := center.MarkRead(ctx, first.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	list, _ := center.List(ctx)
	for _, n := range list {
		if n.ID == first.ID && !n.Read {
			t.Error("first notification still unread")
		}
		if n.ID != first.ID && n.Read {
			t.Error("other notification unexpectedly read")
		}
	}

	if err := center.MarkAllRead(ctx); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	list, _ = center.List(ctx)
	for _, n := range list {
		if !n.Read {
			t.Errorf("notification %s unread after MarkAllRead", n.ID)
		}
	}

	if err := center.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	list, _ = center.List(ctx)
	if len(list) != 0 {
		t.Errorf("got %d notifications after clear, want 0", len(list))
	}
}
