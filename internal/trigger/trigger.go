// Package trigger implements the alert engine: independent trigger sources
// evaluated on a periodic cycle or on location updates, composed by the
// Manager. Every source writes through the dedup/cooldown ledger before
// adding to the notification center, so re-evaluation is idempotent.
package trigger

import (
	"context"
	"time"
)

// Source is a single evaluator. Evaluate inspects current context and
// reference data and emits zero or one notification. cityKey may be empty
// for sources that do not depend on the current city.
type Source interface {
	Name() string
	Evaluate(ctx context.Context, cityKey string) error
}

// dayKey formats a time as the calendar-day component of a dedup key.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
