package trigger

import (
	"context"
	"fmt"
	"log/slog"

	"matchtrip/internal/model"
	"matchtrip/internal/notify"
	"matchtrip/internal/refdata"
	"matchtrip/internal/storage"
)

// lastCountryKey is the app-state key recording the most recently detected
// country. The recorded value is itself the dedup mechanism: no alert fires
// while the country is unchanged.
const lastCountryKey = "last_detected_country"

// Currency fires when the country implied by the current city differs from
// the last recorded country.
type Currency struct {
	store  storage.Storage
	center *notify.Center
	log    *slog.Logger
}

// NewCurrency creates the currency-zone trigger.
func NewCurrency(store storage.Storage, center *notify.Center, log *slog.Logger) *Currency {
	return &Currency{store: store, center: center, log: log}
}

// Name implements Source.
func (c *Currency) Name() string { return "currency" }

// Evaluate checks for a country change and records the current country
// either way. Unknown city keys skip the evaluation entirely.
func (c *Currency) Evaluate(ctx context.Context, cityKey string) error {
	country, ok := refdata.CountryForCity(cityKey)
	if !ok {
		return nil
	}

	last, exists, err := c.store.GetState(ctx, lastCountryKey)
	if err != nil {
		return fmt.Errorf("read last country: %w", err)
	}

	if exists && last != country {
		if err := c.fire(ctx, last, country); err != nil {
			return err
		}
	}
	return c.store.SetState(ctx, lastCountryKey, country)
}

func (c *Currency) fire(ctx context.Context, fromCountry, toCountry string) error {
	from, okFrom := refdata.CurrencyForCountry(fromCountry)
	to, okTo := refdata.CurrencyForCountry(toCountry)
	if !okFrom || !okTo {
		return nil
	}

	topTip := ""
	if len(to.Tips) > 0 {
		topTip = to.Tips[0]
	}

	_, err := c.center.Add(ctx, notify.Draft{
		Category: model.CategoryCurrency,
		Title:    fmt.Sprintf("Currency Change: %s", to.Code),
		Body: fmt.Sprintf("Welcome to %s! You're now using %s (%s)%s. %s",
			to.CountryName, to.Name, to.Symbol, to.ConversionExample(), topTip),
		Priority: model.PriorityMedium,
		Payload: map[string]string{
			"fromCurrency": from.Code,
			"toCurrency":   to.Code,
		},
	})
	return err
}
