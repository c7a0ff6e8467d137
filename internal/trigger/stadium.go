package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"matchtrip/internal/geo"
	"matchtrip/internal/model"
	"matchtrip/internal/notify"
	"matchtrip/internal/refdata"
	"matchtrip/internal/storage"
)

// proximityThresholdMiles is the geofence radius around every stadium.
const proximityThresholdMiles = 1.0

// Stadium fires an arrival alert when live coordinates come within the
// proximity threshold of a configured stadium, once per (stadium, day).
type Stadium struct {
	store  storage.Storage
	center *notify.Center
	log    *slog.Logger
	now    func() time.Time
}

// NewStadium creates the stadium-proximity trigger.
func NewStadium(store storage.Storage, center *notify.Center, log *slog.Logger) *Stadium {
	return &Stadium{store: store, center: center, log: log, now: time.Now}
}

// SetNow overrides the clock, for tests.
func (s *Stadium) SetNow(now func() time.Time) { s.now = now }

// NearbyStadium returns the first stadium within the proximity threshold of
// the coordinates.
func NearbyStadium(lat, lon float64) (refdata.Stadium, bool) {
	for _, st := range refdata.Stadiums() {
		if geo.DistanceMiles(lat, lon, st.Lat, st.Lon) <= proximityThresholdMiles {
			return st, true
		}
	}
	return refdata.Stadium{}, false
}

// EvaluateLocation checks the coordinates against every stadium geofence and
// fires an arrival alert naming the nearest entry gate and the nearest
// dropoff-capable rideshare zone. Either piece is omitted when the stadium
// has no candidates; the alert still fires.
func (s *Stadium) EvaluateLocation(ctx context.Context, lat, lon float64) error {
	stadium, ok := NearbyStadium(lat, lon)
	if !ok {
		return nil
	}

	key := fmt.Sprintf("stadium:%s:%s", stadium.Name, dayKey(s.now()))
	fired, err := s.store.HasFired(ctx, key)
	if err != nil {
		return fmt.Errorf("check stadium ledger: %w", err)
	}
	if fired {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You're approaching %s! ", stadium.Name)

	gate, hasGate := geo.Nearest(lat, lon, stadium.EntryGates, func(g refdata.EntryGate) (float64, float64) {
		return g.Lat, g.Lon
	})
	if hasGate {
		fmt.Fprintf(&b, "Nearest entry: %s (%s). ", gate.Name, gate.ForSections)
	}

	dropoff, hasDropoff := geo.Nearest(lat, lon, stadium.DropoffZones(), func(z refdata.RideShareZone) (float64, float64) {
		return z.Lat, z.Lon
	})
	if hasDropoff {
		fmt.Fprintf(&b, "RideShare drop-off: %s (~%d min walk).", dropoff.Name, dropoff.WalkingMinutes)
	}

	_, err = s.center.Add(ctx, notify.Draft{
		Category: model.CategoryStadium,
		Title:    fmt.Sprintf("Arriving at %s", stadium.Name),
		Body:     strings.TrimSpace(b.String()),
		Priority: model.PriorityHigh,
		Payload:  map[string]string{"stadium": stadium.Name, "cityKey": stadium.CityKey},
	})
	if err != nil {
		return err
	}
	return s.store.MarkFired(ctx, "stadium", key, 0)
}
