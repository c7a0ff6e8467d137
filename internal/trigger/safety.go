package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"matchtrip/internal/geo"
	"matchtrip/internal/model"
	"matchtrip/internal/notify"
	"matchtrip/internal/refdata"
	"matchtrip/internal/storage"
)

// lastSafetyTipKey is the app-state key holding the scope of the most recent
// night tip: "{city}:{phase}:{yyyy-mm-dd}".
const lastSafetyTipKey = "last_safety_alert"

// Safety runs two independent checks: a night-time tip for the current city
// and a geofence check against caution/avoid zones.
type Safety struct {
	store  storage.Storage
	center *notify.Center
	log    *slog.Logger
	now    func() time.Time
}

// NewSafety creates the safety trigger.
func NewSafety(store storage.Storage, center *notify.Center, log *slog.Logger) *Safety {
	return &Safety{store: store, center: center, log: log, now: time.Now}
}

// SetNow overrides the clock, for tests.
func (s *Safety) SetNow(now func() time.Time) { s.now = now }

// Name implements Source.
func (s *Safety) Name() string { return "safety" }

// Evaluate runs the night-tip check: between 22:00 and 06:00 local time the
// first configured night tip for the city fires once per (city, phase, day).
func (s *Safety) Evaluate(ctx context.Context, cityKey string) error {
	info, ok := refdata.SafetyForCity(cityKey)
	if !ok {
		return nil
	}

	now := s.now()
	hour := now.Hour()
	isNight := hour >= 22 || hour < 6

	phase := "day"
	if isNight {
		phase = "night"
	}
	scope := fmt.Sprintf("%s:%s:%s", cityKey, phase, dayKey(now))

	last, _, err := s.store.GetState(ctx, lastSafetyTipKey)
	if err != nil {
		return fmt.Errorf("read last safety tip: %w", err)
	}
	if last == scope {
		return nil
	}

	if !isNight || len(info.NightTips) == 0 {
		return nil
	}

	_, err = s.center.Add(ctx, notify.Draft{
		Category: model.CategorySafety,
		Title:    fmt.Sprintf("Night Safety Tips - %s", info.CityName),
		Body:     info.NightTips[0],
		Priority: model.PriorityMedium,
	})
	if err != nil {
		return err
	}
	return s.store.SetState(ctx, lastSafetyTipKey, scope)
}

// ZoneAt returns the first caution/avoid zone containing the coordinates
// whose active-time window (if any) includes the current local hour. Safe
// zones never match.
func (s *Safety) ZoneAt(cityKey string, lat, lon float64) (refdata.SafetyZone, bool) {
	info, ok := refdata.SafetyForCity(cityKey)
	if !ok {
		return refdata.SafetyZone{}, false
	}

	hour := s.now().Hour()
	for _, zone := range info.Zones {
		if zone.Class == refdata.ZoneSafe {
			continue
		}
		if zone.Window != nil && !zone.Window.Contains(hour) {
			continue
		}
		if geo.DistanceMiles(lat, lon, zone.Lat, zone.Lon) <= zone.RadiusMiles {
			return zone, true
		}
	}
	return refdata.SafetyZone{}, false
}

// EvaluateProximity fires a zone alert when the coordinates fall inside an
// active caution/avoid zone, at most once per (zone, calendar day).
func (s *Safety) EvaluateProximity(ctx context.Context, cityKey string, lat, lon float64) error {
	zone, ok := s.ZoneAt(cityKey, lat, lon)
	if !ok {
		return nil
	}

	key := fmt.Sprintf("safetyZone:%s:%s:%s", cityKey, zone.Name, dayKey(s.now()))
	fired, err := s.store.HasFired(ctx, key)
	if err != nil {
		return fmt.Errorf("check zone ledger: %w", err)
	}
	if fired {
		return nil
	}

	info, _ := refdata.SafetyForCity(cityKey)

	title := fmt.Sprintf("Stay Alert - %s", zone.Name)
	priority := model.PriorityMedium
	if zone.Class == refdata.ZoneAvoid {
		title = fmt.Sprintf("Caution Area - %s", info.CityName)
		priority = model.PriorityHigh
	}

	_, err = s.center.Add(ctx, notify.Draft{
		Category: model.CategorySafety,
		Title:    title,
		Body:     zone.Description,
		Priority: priority,
		Payload:  map[string]string{"zone": zone.Name, "class": string(zone.Class)},
	})
	if err != nil {
		return err
	}
	return s.store.MarkFired(ctx, "safetyZone", key, 0)
}
