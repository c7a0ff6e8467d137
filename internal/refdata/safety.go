package refdata

// ZoneClass classifies a safety zone.
type ZoneClass string

// Zone classifications. Safe zones never produce alerts.
const (
	ZoneSafe    ZoneClass = "safe"
	ZoneCaution ZoneClass = "caution"
	ZoneAvoid   ZoneClass = "avoid"
)

// HourWindow is an active-time window in local hours. Start > End means the
// window wraps past midnight (e.g. 22..6).
type HourWindow struct {
	Start int
	End   int
}

// Contains reports whether the given hour falls inside the window.
func (w HourWindow) Contains(hour int) bool {
	if w.Start > w.End {
		return hour >= w.Start || hour < w.End
	}
	return hour >= w.Start && hour < w.End
}

// SafetyZone is a geofenced area with a classification and an optional
// active-time window. Zones without a window apply at all hours.
type SafetyZone struct {
	Name        string
	Class       ZoneClass
	Description string
	Window      *HourWindow
	Lat         float64
	Lon         float64
	RadiusMiles float64
}

// EmergencyNumbers are the local emergency contacts for a city.
type EmergencyNumbers struct {
	Police    string
	Ambulance string
	Fire      string
	Tourist   string
}

// CitySafety bundles everything safety-related known about one city.
type CitySafety struct {
	CityKey         string
	CityName        string
	GeneralTips     []string
	Emergency       EmergencyNumbers
	Zones           []SafetyZone
	NightTips       []string
	TransitSafety   string
}

var citySafety = map[string]CitySafety{
	"kansasCity": {
		CityKey:  "kansasCity",
		CityName: "Kansas City",
		GeneralTips: []string{
			"Stay in well-lit areas around Power & Light District at night",
			"The Crossroads and Plaza areas are generally very safe",
			"Use designated parking lots near Arrowhead Stadium",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "911", Fire: "911", Tourist: "816-474-4FUN"},
		Zones: []SafetyZone{
			{Name: "Power & Light District", Class: ZoneSafe, Description: "Well-patrolled entertainment area", Lat: 39.0997, Lon: -94.5786, RadiusMiles: 0.3},
			{Name: "Independence Ave (east)", Class: ZoneCaution, Description: "Stay alert after dark", Lat: 39.0920, Lon: -94.5450, RadiusMiles: 0.5, Window: &HourWindow{Start: 22, End: 6}},
		},
		NightTips:     []string{"Stick to the Power & Light and Crossroads areas", "Use rideshare after midnight"},
		TransitSafety: "KC Streetcar is safe and free. Buses are generally safe during daytime.",
	},
	"newYork": {
		CityKey:  "newYork",
		CityName: "New York",
		GeneralTips: []string{
			"Times Square and Midtown are heavily patrolled 24/7",
			"Keep valuables secure on subway - pickpockets target tourists",
			"Stick to main streets in unfamiliar neighborhoods",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "911", Fire: "911", Tourist: "212-484-1222"},
		Zones: []SafetyZone{
			{Name: "Times Square", Class: ZoneSafe, Description: "Heavy police presence 24/7", Lat: 40.7580, Lon: -73.9855, RadiusMiles: 0.3},
			{Name: "Penn Station Area", Class: ZoneCaution, Description: "Stay alert late at night", Lat: 40.7506, Lon: -73.9935, RadiusMiles: 0.2, Window: &HourWindow{Start: 0, End: 6}},
		},
		NightTips:     []string{"Subway is generally safe but stay in populated cars", "Avoid walking alone in unfamiliar areas after midnight"},
		TransitSafety: "Subway is safe but stay alert. Sit near the conductor (middle of train). NJ Transit to MetLife Stadium is safe.",
	},
	"losAngeles": {
		CityKey:  "losAngeles",
		CityName: "Los Angeles",
		GeneralTips: []string{
			"LA is car-centric - rideshares are often safer than walking long distances",
			"Santa Monica, Beverly Hills, and West Hollywood are very safe",
			"Lock car doors and hide valuables - car break-ins are common",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "911", Fire: "911", Tourist: "213-624-7300"},
		Zones: []SafetyZone{
			{Name: "Hollywood Blvd", Class: ZoneCaution, Description: "Tourist area - watch for scams", Lat: 34.1016, Lon: -118.3267, RadiusMiles: 0.3},
			{Name: "Santa Monica", Class: ZoneSafe, Description: "Well-patrolled beach community", Lat: 34.0195, Lon: -118.4912, RadiusMiles: 1.0},
		},
		NightTips:     []string{"Use rideshare after events - parking lots can be isolated", "Downtown LA has improved but use caution at night"},
		TransitSafety: "Metro is improving but use caution late at night. Metro C Line to SoFi Stadium is safe on game days.",
	},
	"miami": {
		CityKey:  "miami",
		CityName: "Miami",
		GeneralTips: []string{
			"South Beach and Brickell are tourist-friendly and well-patrolled",
			"Be aware of belongings on the beach - dont leave valuables unattended",
			"Drink plenty of water in the heat",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "911", Fire: "911", Tourist: "305-539-3000"},
		Zones: []SafetyZone{
			{Name: "South Beach", Class: ZoneSafe, Description: "Heavy tourist and police presence", Lat: 25.7825, Lon: -80.1340, RadiusMiles: 0.5},
			{Name: "Brickell", Class: ZoneSafe, Description: "Business district - very safe", Lat: 25.7617, Lon: -80.1918, RadiusMiles: 0.5},
		},
		NightTips:     []string{"Stick to Ocean Drive and Collins Ave areas", "Use rideshare when leaving clubs late"},
		TransitSafety: "Metrorail is safe during the day. Metromover in downtown is free and safe.",
	},
	"dallas": {
		CityKey:  "dallas",
		CityName: "Dallas",
		GeneralTips: []string{
			"Uptown and Victory Park are very safe entertainment areas",
			"Texas Live! near the stadium is the official fan zone",
			"Summer heat can be dangerous - stay hydrated",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "911", Fire: "911", Tourist: "214-571-1000"},
		Zones: []SafetyZone{
			{Name: "Uptown", Class: ZoneSafe, Description: "Popular nightlife area with good security", Lat: 32.7990, Lon: -96.8024, RadiusMiles: 0.5},
			{Name: "Deep Ellum", Class: ZoneCaution, Description: "Great nightlife but stay alert late", Lat: 32.7843, Lon: -96.7833, RadiusMiles: 0.3, Window: &HourWindow{Start: 2, End: 6}},
		},
		NightTips:     []string{"Deep Ellum is popular but parking can be sketchy - use rideshare", "Uptown has great restaurants and is very safe"},
		TransitSafety: "DART light rail is safe. Express service runs to AT&T Stadium on game days.",
	},
	"houston": {
		CityKey:  "houston",
		CityName: "Houston",
		GeneralTips: []string{
			"Montrose and The Heights are trendy, safe neighborhoods",
			"Museum District is well-patrolled",
			"Summer heat is extreme - stay hydrated and seek shade",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "911", Fire: "911", Tourist: "713-437-5200"},
		Zones: []SafetyZone{
			{Name: "Museum District", Class: ZoneSafe, Description: "Cultural area with security", Lat: 29.7225, Lon: -95.3905, RadiusMiles: 0.5},
			{Name: "Midtown", Class: ZoneSafe, Description: "Good nightlife and restaurants", Lat: 29.7410, Lon: -95.3738, RadiusMiles: 0.3},
		},
		NightTips:     []string{"Downtown has improved but some areas are still quiet at night", "Montrose and Midtown are better for nightlife"},
		TransitSafety: "METRORail is safe during events. Red Line connects to NRG Stadium.",
	},
	"mexicoCity": {
		CityKey:  "mexicoCity",
		CityName: "Mexico City",
		GeneralTips: []string{
			"Polanco, Roma, and Condesa are very safe tourist areas",
			"Use official taxis or apps (Uber, Didi) - avoid street hails",
			"Drink bottled water and be cautious with street food",
			"Keep valuables hidden and dont flash expensive items",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "065", Fire: "068", Tourist: "55-5658-1111"},
		Zones: []SafetyZone{
			{Name: "Polanco", Class: ZoneSafe, Description: "Upscale area with excellent security", Lat: 19.4331, Lon: -99.1981, RadiusMiles: 1.0},
			{Name: "Roma/Condesa", Class: ZoneSafe, Description: "Trendy neighborhoods popular with expats", Lat: 19.4146, Lon: -99.1716, RadiusMiles: 0.7},
			{Name: "Tepito", Class: ZoneAvoid, Description: "Avoid this area", Lat: 19.4453, Lon: -99.1261, RadiusMiles: 0.5},
		},
		NightTips:     []string{"Stick to Roma, Condesa, and Polanco for nightlife", "Always use Uber or Didi at night", "Avoid showing expensive phones on the street"},
		TransitSafety: "Metro is safe but crowded. Pink cars are women-only during rush hour. Metrobús is a good alternative.",
	},
	"guadalajara": {
		CityKey:  "guadalajara",
		CityName: "Guadalajara",
		GeneralTips: []string{
			"Centro Historico and Tlaquepaque are tourist-friendly",
			"Use registered taxis or ride apps",
			"The city is generally safer than it is often portrayed",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "065", Fire: "068", Tourist: "33-3668-1600"},
		Zones: []SafetyZone{
			{Name: "Centro Historico", Class: ZoneSafe, Description: "Historic downtown with police presence", Lat: 20.6767, Lon: -103.3475, RadiusMiles: 0.5},
			{Name: "Tlaquepaque", Class: ZoneSafe, Description: "Artisan village - very tourist friendly", Lat: 20.6407, Lon: -103.3133, RadiusMiles: 0.4},
		},
		NightTips:     []string{"Chapultepec Ave has good nightlife", "Use Uber or Didi after dark"},
		TransitSafety: "Macrobús and Tren Ligero are safe during the day.",
	},
	"monterrey": {
		CityKey:  "monterrey",
		CityName: "Monterrey",
		GeneralTips: []string{
			"San Pedro Garza Garcia is one of the safest areas in Mexico",
			"The Macroplaza and Barrio Antiguo are well-patrolled",
			"The city is very business-oriented and generally safe",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "065", Fire: "068", Tourist: "81-2020-6700"},
		Zones: []SafetyZone{
			{Name: "San Pedro", Class: ZoneSafe, Description: "Wealthy suburb - excellent security", Lat: 25.6571, Lon: -100.3989, RadiusMiles: 2.0},
			{Name: "Macroplaza", Class: ZoneSafe, Description: "Downtown cultural area", Lat: 25.6693, Lon: -100.3097, RadiusMiles: 0.3},
		},
		NightTips:     []string{"Barrio Antiguo has good nightlife with security", "San Pedro has upscale venues"},
		TransitSafety: "Metrorrey is safe and efficient. Line 1 connects to the stadium area.",
	},
	"toronto": {
		CityKey:  "toronto",
		CityName: "Toronto",
		GeneralTips: []string{
			"Toronto is one of the safest major cities in North America",
			"Downtown, Yorkville, and the Waterfront are all very safe",
			"TTC is safe to use at all hours",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "911", Fire: "911", Tourist: "416-203-2500"},
		Zones: []SafetyZone{
			{Name: "Downtown Core", Class: ZoneSafe, Description: "Very safe business and entertainment district", Lat: 43.6532, Lon: -79.3832, RadiusMiles: 1.0},
		},
		NightTips:     []string{"King West and Queen West have great nightlife", "TTC runs until about 1:30 AM, then use night buses or rideshare"},
		TransitSafety: "TTC is very safe. Subway runs until about 1:30 AM on weekends.",
	},
	"vancouver": {
		CityKey:  "vancouver",
		CityName: "Vancouver",
		GeneralTips: []string{
			"Vancouver is extremely safe for tourists",
			"Gastown, Yaletown, and the West End are all safe areas",
			"The Downtown Eastside (DTES) has visible homelessness but is not dangerous to tourists",
		},
		Emergency: EmergencyNumbers{Police: "911", Ambulance: "911", Fire: "911", Tourist: "604-683-2000"},
		Zones: []SafetyZone{
			{Name: "Gastown", Class: ZoneSafe, Description: "Historic area with good restaurants", Lat: 49.2837, Lon: -123.1089, RadiusMiles: 0.3},
			{Name: "Yaletown", Class: ZoneSafe, Description: "Trendy neighborhood near BC Place", Lat: 49.2750, Lon: -123.1209, RadiusMiles: 0.3},
		},
		NightTips:     []string{"Granville Street has nightlife but can get rowdy on weekends", "Yaletown is a calmer alternative"},
		TransitSafety: "SkyTrain is very safe. Canada Line connects airport to downtown.",
	},
}

// SafetyForCity returns the safety profile for a city, or false for cities
// without curated data.
func SafetyForCity(cityKey string) (CitySafety, bool) {
	s, ok := citySafety[cityKey]
	return s, ok
}
