package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"matchtrip/internal/reminder"
	"matchtrip/internal/storage"
)

// Cycle and spacing constants. The min-check spacing guards against overlap
// between the periodic cycle and on-demand checks triggered by context
// changes.
const (
	cycleInterval   = 5 * time.Minute
	minCheckSpacing = time.Minute

	lastCheckKey = "trigger_last_check"
)

// Status is a snapshot of the manager for diagnostics.
type Status struct {
	IsRunning        bool     `json:"isRunning"`
	CurrentCity      string   `json:"currentCity"`
	FollowedTeams    []string `json:"followedTeams"`
	PendingReminders int      `json:"pendingReminders"`
}

// Manager owns the trigger cycle and the reminder loop, and serializes all
// context mutations (city, location) behind one mutex.
type Manager struct {
	store     storage.Storage
	reminders *reminder.Scheduler
	log       *slog.Logger
	now       func() time.Time

	gameDay     *GameDay
	matchResult *MatchResult
	weather     *Weather
	safety      *Safety
	stadium     *Stadium
	currency    *Currency

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	city    string
}

// NewManager wires the trigger sources and reminder scheduler together.
func NewManager(store storage.Storage, reminders *reminder.Scheduler,
	gameDay *GameDay, matchResult *MatchResult, weather *Weather,
	safety *Safety, stadium *Stadium, currency *Currency, log *slog.Logger) *Manager {
	return &Manager{
		store:       store,
		reminders:   reminders,
		log:         log,
		now:         time.Now,
		gameDay:     gameDay,
		matchResult: matchResult,
		weather:     weather,
		safety:      safety,
		stadium:     stadium,
		currency:    currency,
	}
}

// SetNow overrides the clock, for tests.
func (m *Manager) SetNow(now func() time.Time) { m.now = now }

// Start launches the reminder loop and the periodic trigger cycle. Calling
// Start on a running manager is a no-op.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}
	m.running = true

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.reminders.Run(runCtx)
	go m.runCycle(runCtx)

	m.log.Info("trigger manager started", "interval", cycleInterval)
}

// Stop cancels both loops and waits for the trigger cycle to exit. Calling
// Stop on a stopped manager is a no-op.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	cancel()
	<-done
	m.log.Info("trigger manager stopped")
}

func (m *Manager) runCycle(ctx context.Context) {
	defer close(m.done)

	m.RunAllChecks(ctx)

	ticker := time.NewTicker(cycleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.RunAllChecks(ctx)
		}
	}
}

// RunAllChecks evaluates every periodic source once. Checks closer together
// than the min spacing are skipped. Source failures are logged and do not
// abort the remaining sources.
func (m *Manager) RunAllChecks(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runAllChecksLocked(ctx)
}

func (m *Manager) runAllChecksLocked(ctx context.Context) {
	now := m.now()

	raw, exists, err := m.store.GetState(ctx, lastCheckKey)
	if err != nil {
		m.log.Error("read last check time", "error", err)
		return
	}
	if exists {
		// Corrupt values parse to 0 and never suppress a check.
		millis, _ := strconv.ParseInt(raw, 10, 64)
		if now.Sub(time.UnixMilli(millis)) < minCheckSpacing {
			return
		}
	}
	if err := m.store.SetState(ctx, lastCheckKey, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		m.log.Error("record check time", "error", err)
	}

	m.evaluate(ctx, m.gameDay, "")
	m.evaluate(ctx, m.matchResult, "")

	if m.city != "" {
		m.evaluate(ctx, m.weather, m.city)
		m.evaluate(ctx, m.safety, m.city)
	}
}

func (m *Manager) evaluate(ctx context.Context, src Source, cityKey string) {
	if ctx.Err() != nil {
		return
	}
	if err := src.Evaluate(ctx, cityKey); err != nil {
		m.log.Error("trigger check failed", "source", src.Name(), "error", err)
	}
}

// SetCurrentCity updates the current city. Moving to a different city fires
// the currency and safety checks immediately; setting the same city again
// does nothing.
func (m *Manager) SetCurrentCity(ctx context.Context, cityKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.city
	m.city = cityKey

	if cityKey != "" && cityKey != previous {
		m.evaluate(ctx, m.currency, cityKey)
		m.evaluate(ctx, m.safety, cityKey)
	}
}

// CurrentCity returns the current city key, empty when unset.
func (m *Manager) CurrentCity() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.city
}

// UpdateLocation feeds live coordinates through the geofence checks: stadium
// proximity always, safety-zone proximity when a city is set.
func (m *Manager) UpdateLocation(ctx context.Context, lat, lon float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.stadium.EvaluateLocation(ctx, lat, lon); err != nil {
		m.log.Error("stadium check failed", "error", err)
	}

	if m.city != "" {
		if err := m.safety.EvaluateProximity(ctx, m.city, lat, lon); err != nil {
			m.log.Error("safety zone check failed", "error", err)
		}
	}
}

// ScheduleMatchReminders delegates to the reminder scheduler.
func (m *Manager) ScheduleMatchReminders(ctx context.Context, matchID int64, kickoff time.Time, home, away, venue string) error {
	_, err := m.reminders.Schedule(ctx, matchID, kickoff, home, away, venue)
	return err
}

// CancelMatchReminders removes every reminder for a match.
func (m *Manager) CancelMatchReminders(ctx context.Context, matchID int64) error {
	return m.reminders.Cancel(ctx, matchID)
}

// Status reports whether the cycle is running, the current city, the
// followed teams, and the pending reminder count.
func (m *Manager) Status(ctx context.Context) (Status, error) {
	m.mu.Lock()
	running, city := m.running, m.city
	m.mu.Unlock()

	teams, err := m.store.ListFollowedTeams(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("list followed teams: %w", err)
	}
	pending, err := m.reminders.Pending(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("list pending reminders: %w", err)
	}

	return Status{
		IsRunning:        running,
		CurrentCity:      city,
		FollowedTeams:    teams,
		PendingReminders: len(pending),
	}, nil
}
