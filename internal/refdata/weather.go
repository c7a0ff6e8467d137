package refdata

// CoolingStation is a place to escape extreme heat.
type CoolingStation struct {
	Name string
	Type string // Stadium | Mall | Library
}

var coolingStations = map[string][]CoolingStation{
	"dallas": {
		{Name: "AT&T Stadium Cooling Zones", Type: "Stadium"},
		{Name: "Galleria Dallas", Type: "Mall"},
		{Name: "Dallas Public Library", Type: "Library"},
	},
	"houston": {
		{Name: "NRG Stadium Cooling Areas", Type: "Stadium"},
		{Name: "The Galleria", Type: "Mall"},
		{Name: "Houston Public Library", Type: "Library"},
	},
	"miami": {
		{Name: "Hard Rock Stadium Misting Zones", Type: "Stadium"},
		{Name: "Aventura Mall", Type: "Mall"},
		{Name: "Miami-Dade Public Library", Type: "Library"},
	},
	"mexicoCity": {
		{Name: "Estadio Azteca Fan Zones", Type: "Stadium"},
		{Name: "Centro Santa Fe", Type: "Mall"},
		{Name: "Biblioteca Central UNAM", Type: "Library"},
	},
	"monterrey": {
		{Name: "Estadio BBVA Cooling Areas", Type: "Stadium"},
		{Name: "Galerías Monterrey", Type: "Mall"},
		{Name: "Biblioteca Central", Type: "Library"},
	},
}

// genericCoolingStations is the fallback for cities without a curated list.
var genericCoolingStations = []CoolingStation{
	{Name: "Stadium Cooling Zones", Type: "Stadium"},
	{Name: "Nearby Shopping Centers", Type: "Mall"},
}

// CoolingStations returns the cooling stations for a city, falling back to
// generic labels when the city has no curated list.
func CoolingStations(cityKey string) []CoolingStation {
	if stations, ok := coolingStations[cityKey]; ok {
		return stations
	}
	return genericCoolingStations
}

// HydrationRecommendations returns heat guidance graduated by temperature.
// Bands accumulate: hotter temperatures include everything from the cooler
// bands.
func HydrationRecommendations(temperatureF float64) []string {
	var recs []string

	if temperatureF >= 85 {
		recs = append(recs,
			"Drink water every 15-20 minutes",
			"Wear light, loose-fitting clothing",
			"Use sunscreen SPF 30+",
		)
	}
	if temperatureF >= 95 {
		recs = append(recs,
			"Limit outdoor exposure during peak hours (11am-4pm)",
			"Seek air-conditioned venues",
			"Carry a portable fan or cooling towel",
		)
	}
	if temperatureF >= 100 {
		recs = append(recs,
			"Consider watching match at an indoor venue",
			"Know the location of medical tents",
			"Watch for signs of heat exhaustion",
		)
	}
	return recs
}
