package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"matchtrip/internal/feeds"
	"matchtrip/internal/model"
	"matchtrip/internal/notify"
	"matchtrip/internal/refdata"
	"matchtrip/internal/storage"
)

// gameDayLookaheadHours is the window requested from the upcoming-matches
// source. The alert itself fires only at exactly 3 hours before kickoff,
// matching the source's whole-hour reporting granularity.
const (
	gameDayLookaheadHours = 6
	gameDayAlertHours     = 3
)

// GameDay fires a transport-tip alert three hours before kickoff for
// matches reported by the upcoming-matches source.
type GameDay struct {
	store   storage.Storage
	center  *notify.Center
	matches *feeds.MatchClient
	log     *slog.Logger
	now     func() time.Time
}

// NewGameDay creates the match-day trigger.
func NewGameDay(store storage.Storage, center *notify.Center, matches *feeds.MatchClient, log *slog.Logger) *GameDay {
	return &GameDay{store: store, center: center, matches: matches, log: log, now: time.Now}
}

// SetNow overrides the clock, for tests.
func (g *GameDay) SetNow(now func() time.Time) { g.now = now }

// Name implements Source.
func (g *GameDay) Name() string { return "gameday" }

// Evaluate fetches upcoming matches and alerts on those exactly three hours
// from kickoff, once per (match, calendar day). Fetch failures are no-data.
func (g *GameDay) Evaluate(ctx context.Context, _ string) error {
	matches, err := g.matches.Upcoming(ctx, gameDayLookaheadHours)
	if err != nil {
		g.log.Debug("upcoming matches fetch failed", "error", err)
		return nil
	}

	for _, match := range matches {
		if match.HoursUntilKickoff != gameDayAlertHours {
			continue
		}

		key := fmt.Sprintf("gameday:%d:%s", match.ID, dayKey(g.now()))
		fired, err := g.store.HasFired(ctx, key)
		if err != nil {
			return fmt.Errorf("check gameday ledger: %w", err)
		}
		if fired {
			continue
		}

		home, away, venue := match.HomeTeam, match.AwayTeam, match.Venue
		if home == "" {
			home = "TBD"
		}
		if away == "" {
			away = "TBD"
		}
		if venue == "" {
			venue = "Stadium"
		}

		cityKey := refdata.CityKeyForName(match.City)
		tip := refdata.TransportTip(cityKey)

		_, err = g.center.Add(ctx, notify.Draft{
			Category: model.CategoryGameDay,
			Title:    fmt.Sprintf("%s vs %s in %d hours", home, away, match.HoursUntilKickoff),
			Body:     fmt.Sprintf("Heading to %s? %s", venue, tip),
			Priority: model.PriorityHigh,
			Payload:  map[string]string{"cityKey": cityKey},
		})
		if err != nil {
			return err
		}
		if err := g.store.MarkFired(ctx, "gameday", key, 0); err != nil {
			return fmt.Errorf("mark gameday fired: %w", err)
		}
	}
	return nil
}
