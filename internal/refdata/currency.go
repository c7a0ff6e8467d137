package refdata

import "fmt"

// Currency describes the money used in one host country, with traveler tips.
type Currency struct {
	Country           string
	CountryName       string
	Code              string
	Symbol            string
	Name              string
	ExchangeRateToUSD float64
	Tips              []string
	ATMNetworks       []string
	CardAcceptance    string
}

var currencies = map[string]Currency{
	"US": {
		Country:           "US",
		CountryName:       "United States",
		Code:              "USD",
		Symbol:            "$",
		Name:              "US Dollar",
		ExchangeRateToUSD: 1,
		Tips: []string{
			"Tipping is customary: 15-20% at restaurants, $1-2 per drink at bars",
			"Most places accept credit cards, but keep small bills for tips",
			"Sales tax is added at checkout (varies by state: 0-10%)",
		},
		ATMNetworks:    []string{"Visa/Plus", "Mastercard/Cirrus", "Allpoint", "MoneyPass"},
		CardAcceptance: "Excellent - cards accepted almost everywhere",
	},
	"CA": {
		Country:           "CA",
		CountryName:       "Canada",
		Code:              "CAD",
		Symbol:            "C$",
		Name:              "Canadian Dollar",
		ExchangeRateToUSD: 0.74,
		Tips: []string{
			"Tipping similar to US: 15-20% at restaurants",
			"$1 and $2 coins (Loonie and Toonie) are common",
			"HST/GST tax (5-15%) added at checkout",
		},
		ATMNetworks:    []string{"Interac", "Visa/Plus", "Mastercard/Cirrus"},
		CardAcceptance: "Excellent - tap-to-pay widely used",
	},
	"MX": {
		Country:           "MX",
		CountryName:       "Mexico",
		Code:              "MXN",
		Symbol:            "$",
		Name:              "Mexican Peso",
		ExchangeRateToUSD: 0.058,
		Tips: []string{
			"Tipping is expected: 10-15% at restaurants",
			`Many places show prices with "MXN" to distinguish from USD`,
			"Street vendors and small shops prefer cash",
			"ATMs at banks (not convenience stores) offer better rates",
		},
		ATMNetworks:    []string{"Visa/Plus", "Mastercard/Cirrus"},
		CardAcceptance: "Good in tourist areas, cash preferred in local spots",
	},
}

// CurrencyForCountry returns the currency used in a country.
func CurrencyForCountry(country string) (Currency, bool) {
	c, ok := currencies[country]
	return c, ok
}

// CurrencyForCity returns the currency used in a city.
func CurrencyForCity(cityKey string) (Currency, bool) {
	city, ok := cities[cityKey]
	if !ok {
		return Currency{}, false
	}
	return CurrencyForCountry(city.Country)
}

// CountryForCity returns the country code for a city key.
func CountryForCity(cityKey string) (string, bool) {
	city, ok := cities[cityKey]
	if !ok {
		return "", false
	}
	return city.Country, true
}

// ConversionRate returns the multiplier converting an amount in the from
// city's currency to the to city's currency.
func ConversionRate(fromCityKey, toCityKey string) (rate float64, fromCode, toCode string, ok bool) {
	from, okFrom := CurrencyForCity(fromCityKey)
	to, okTo := CurrencyForCity(toCityKey)
	if !okFrom || !okTo {
		return 0, "", "", false
	}
	return from.ExchangeRateToUSD / to.ExchangeRateToUSD, from.Code, to.Code, true
}

// ConvertAmount converts an amount between two cities' currencies.
func ConvertAmount(amount float64, fromCityKey, toCityKey string) (float64, bool) {
	rate, _, _, ok := ConversionRate(fromCityKey, toCityKey)
	if !ok {
		return 0, false
	}
	return amount * rate, true
}

// ConversionExample renders the "~N XXX = 100 USD" hint shown in currency
// alerts. Empty for USD itself.
func (c Currency) ConversionExample() string {
	if c.Code == "USD" {
		return ""
	}
	return fmt.Sprintf(" (~%.0f %s = 100 USD)", 100/c.ExchangeRateToUSD, c.Code)
}
