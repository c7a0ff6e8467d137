package refdata

var transportTips = map[string]string{
	"kansasCity":   "The 402 Bus runs every 10 minutes to Arrowhead Stadium. Tap for your ticket QR code.",
	"newYork":      "NJ Transit has extra trains to MetLife Stadium. Penn Station departures every 15 mins.",
	"losAngeles":   "Metro C Line connects to SoFi Stadium. Allow 45 mins from Downtown LA.",
	"miami":        "Shuttle buses run from Aventura Mall to Hard Rock Stadium. $5 round trip.",
	"dallas":       "DART runs express service to AT&T Stadium. Board at Victory Station.",
	"houston":      "METRORail connects to NRG Stadium. Red Line from Downtown.",
	"atlanta":      "MARTA connects directly to Mercedes-Benz Stadium. Vine City station is closest.",
	"philadelphia": "SEPTA Regional Rail has express service to Lincoln Financial Field.",
	"seattle":      "Light Rail runs to Lumen Field. International District station recommended.",
	"boston":       "MBTA Red Line to JFK/UMass, then shuttle to Gillette Stadium.",
	"sanFrancisco": "Caltrain runs express to Levi's Stadium. Board at 4th & King.",
	"toronto":      "TTC Line 1 to Finch, then shuttle to BMO Field area.",
	"vancouver":    "SkyTrain Canada Line to Waterfront for BC Place access.",
	"mexicoCity":   "Metro Line 2 to Tasqueña, then shuttle to Estadio Azteca.",
	"guadalajara":  "Macrobús Line 2 to Estadio Akron. Service every 5 mins on match days.",
	"monterrey":    "Metrorrey Line 1 connects to Estadio BBVA area.",
}

// TransportTip returns the stadium transit tip for a city, with a generic
// fallback for unknown cities.
func TransportTip(cityKey string) string {
	if tip, ok := transportTips[cityKey]; ok {
		return tip
	}
	return "Check local transit for stadium access information."
}

// MatchDayChecklist returns the preparation checklist applicable at the
// given number of hours before kickoff.
func MatchDayChecklist(hoursUntilKickoff int) []string {
	var checklist []string

	if hoursUntilKickoff >= 4 {
		checklist = append(checklist,
			"Review your match ticket and ensure it's accessible",
			"Check weather forecast and dress accordingly",
			"Plan your route to the stadium",
		)
	}
	if hoursUntilKickoff >= 3 {
		checklist = append(checklist,
			"Start heading to stadium area",
			"Download offline maps of stadium area",
			"Ensure phone is charged (stadium areas may be crowded)",
		)
	}
	if hoursUntilKickoff >= 2 {
		checklist = append(checklist,
			"Arrive at stadium vicinity",
			"Locate your entry gate",
			"Find restrooms and concession areas",
		)
	}
	if hoursUntilKickoff >= 1 {
		checklist = append(checklist,
			"Enter stadium and find your seat",
			"Locate nearest emergency exits",
			"Buy refreshments before kickoff rush",
		)
	}
	return checklist
}
