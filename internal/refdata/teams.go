package refdata

import "strings"

var teamCodes = map[string]string{
	"United States":       "USA",
	"Mexico":              "MEX",
	"Canada":              "CAN",
	"Brazil":              "BRA",
	"Argentina":           "ARG",
	"England":             "ENG",
	"France":              "FRA",
	"Germany":             "GER",
	"Spain":               "ESP",
	"Portugal":            "POR",
	"Netherlands":         "NED",
	"Belgium":             "BEL",
	"Italy":               "ITA",
	"Croatia":             "CRO",
	"Morocco":             "MAR",
	"Japan":               "JPN",
	"South Korea":         "KOR",
	"Australia":           "AUS",
	"Saudi Arabia":        "KSA",
	"Qatar":               "QAT",
	"Iran":                "IRN",
	"Uruguay":             "URU",
	"Colombia":            "COL",
	"Ecuador":             "ECU",
	"Chile":               "CHI",
	"Peru":                "PER",
	"Paraguay":            "PAR",
	"Venezuela":           "VEN",
	"Bolivia":             "BOL",
	"Senegal":             "SEN",
	"Ghana":               "GHA",
	"Cameroon":            "CMR",
	"Nigeria":             "NGA",
	"Egypt":               "EGY",
	"Tunisia":             "TUN",
	"Algeria":             "ALG",
	"South Africa":        "RSA",
	"Poland":              "POL",
	"Denmark":             "DEN",
	"Switzerland":         "SUI",
	"Austria":             "AUT",
	"Serbia":              "SRB",
	"Ukraine":             "UKR",
	"Czech Republic":      "CZE",
	"Sweden":              "SWE",
	"Norway":              "NOR",
	"Scotland":            "SCO",
	"Wales":               "WAL",
	"Republic of Ireland": "IRL",
	"Costa Rica":          "CRC",
	"Panama":              "PAN",
	"Honduras":            "HON",
	"Jamaica":             "JAM",
	"New Zealand":         "NZL",
}

// TeamCode maps a team name to its short code. Unmapped teams fall back to
// an uppercased 3-letter prefix of the name; collisions between two unmapped
// teams sharing a prefix are possible and tolerated.
func TeamCode(teamName string) string {
	if code, ok := teamCodes[teamName]; ok {
		return code
	}
	name := teamName
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name)
}
