// Package refdata holds the static reference data consulted by the trigger
// sources: host cities, currencies, stadiums, safety zones, transport tips,
// and team codes. Nothing in this package is mutated at runtime.
package refdata

// City is a host city known to the engine.
type City struct {
	Key     string
	Name    string
	Country string // ISO-ish country code: US, CA, MX
	Lat     float64
	Lon     float64
}

var cities = map[string]City{
	"kansasCity":    {Key: "kansasCity", Name: "Kansas City", Country: "US", Lat: 39.0997, Lon: -94.5786},
	"newYork":       {Key: "newYork", Name: "New York", Country: "US", Lat: 40.7128, Lon: -74.0060},
	"losAngeles":    {Key: "losAngeles", Name: "Los Angeles", Country: "US", Lat: 34.0522, Lon: -118.2437},
	"miami":         {Key: "miami", Name: "Miami", Country: "US", Lat: 25.7617, Lon: -80.1918},
	"dallas":        {Key: "dallas", Name: "Dallas", Country: "US", Lat: 32.7767, Lon: -96.7970},
	"houston":       {Key: "houston", Name: "Houston", Country: "US", Lat: 29.7604, Lon: -95.3698},
	"atlanta":       {Key: "atlanta", Name: "Atlanta", Country: "US", Lat: 33.7490, Lon: -84.3880},
	"philadelphia":  {Key: "philadelphia", Name: "Philadelphia", Country: "US", Lat: 39.9526, Lon: -75.1652},
	"seattle":       {Key: "seattle", Name: "Seattle", Country: "US", Lat: 47.6062, Lon: -122.3321},
	"boston":        {Key: "boston", Name: "Boston", Country: "US", Lat: 42.3601, Lon: -71.0589},
	"sanFrancisco":  {Key: "sanFrancisco", Name: "San Francisco", Country: "US", Lat: 37.7749, Lon: -122.4194},
	"toronto":       {Key: "toronto", Name: "Toronto", Country: "CA", Lat: 43.6532, Lon: -79.3832},
	"vancouver":     {Key: "vancouver", Name: "Vancouver", Country: "CA", Lat: 49.2827, Lon: -123.1207},
	"mexicoCity":    {Key: "mexicoCity", Name: "Mexico City", Country: "MX", Lat: 19.4326, Lon: -99.1332},
	"guadalajara":   {Key: "guadalajara", Name: "Guadalajara", Country: "MX", Lat: 20.6597, Lon: -103.3496},
	"monterrey":     {Key: "monterrey", Name: "Monterrey", Country: "MX", Lat: 25.6866, Lon: -100.3161},
}

// cityKeyByName maps the display names used by the match data source back to
// city keys.
var cityKeyByName = map[string]string{
	"Kansas City":         "kansasCity",
	"New York":            "newYork",
	"New York/New Jersey": "newYork",
	"Los Angeles":         "losAngeles",
	"Miami":               "miami",
	"Dallas":              "dallas",
	"Houston":             "houston",
	"Atlanta":             "atlanta",
	"Philadelphia":        "philadelphia",
	"Seattle":             "seattle",
	"Boston":              "boston",
	"San Francisco":       "sanFrancisco",
	"Toronto":             "toronto",
	"Vancouver":           "vancouver",
	"Mexico City":         "mexicoCity",
	"Guadalajara":         "guadalajara",
	"Monterrey":           "monterrey",
}

// CityByKey returns the city for a key, or false for unknown keys.
func CityByKey(key string) (City, bool) {
	c, ok := cities[key]
	return c, ok
}

// CityName returns the display name for a city key, falling back to the raw
// key for unknown cities.
func CityName(key string) string {
	if c, ok := cities[key]; ok {
		return c.Name
	}
	return key
}

// CityKeyForName resolves a data-source city name to a city key. Unknown
// names fall back to the lowercased name with spaces removed.
func CityKeyForName(name string) string {
	if key, ok := cityKeyByName[name]; ok {
		return key
	}
	return normalizeKey(name)
}

func normalizeKey(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == ' ' {
			continue
		}
		if r >= 'A' && r <= 'Z' && len(out) == 0 {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
