package refdata

// GateZoneType describes which direction a rideshare zone serves.
type GateZoneType string

// Rideshare zone types.
const (
	ZonePickup  GateZoneType = "pickup"
	ZoneDropoff GateZoneType = "dropoff"
	ZoneBoth    GateZoneType = "both"
)

// EntryGate is a stadium entrance with the seat sections it serves.
type EntryGate struct {
	Name        string
	Description string
	Lat         float64
	Lon         float64
	ForSections string
}

// RideShareZone is a designated pickup/dropoff area near a stadium.
type RideShareZone struct {
	Provider       string // uber | lyft | all
	Type           GateZoneType
	Name           string
	Description    string
	Lat            float64
	Lon            float64
	WalkingMinutes int
}

// Stadium is a venue with its entry gates and rideshare zones.
type Stadium struct {
	Name           string
	City           string
	CityKey        string
	Lat            float64
	Lon            float64
	EntryGates     []EntryGate
	RideShareZones []RideShareZone
}

var stadiums = []Stadium{
	{
		Name: "Arrowhead Stadium", City: "Kansas City", CityKey: "kansasCity", Lat: 39.0489, Lon: -94.4839,
		EntryGates: []EntryGate{
			{Name: "Gate A", Description: "North entrance near Lot A", Lat: 39.0502, Lon: -94.4839, ForSections: "100-112"},
			{Name: "Gate B", Description: "East entrance near Lot B", Lat: 39.0489, Lon: -94.4815, ForSections: "113-124"},
			{Name: "Gate C", Description: "South entrance near Lot C", Lat: 39.0476, Lon: -94.4839, ForSections: "125-136"},
			{Name: "Gate D", Description: "West entrance near Lot D", Lat: 39.0489, Lon: -94.4863, ForSections: "301-324"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Lot N RideShare Zone", Description: "Primary rideshare location - north of stadium", Lat: 39.0525, Lon: -94.4839, WalkingMinutes: 8},
			{Provider: "all", Type: ZonePickup, Name: "Red Lot Exit", Description: "Post-game pickup - follow signs", Lat: 39.0510, Lon: -94.4875, WalkingMinutes: 10},
		},
	},
	{
		Name: "MetLife Stadium", City: "New York/New Jersey", CityKey: "newYork", Lat: 40.8128, Lon: -74.0742,
		EntryGates: []EntryGate{
			{Name: "Gate A", Description: "East entrance - main gate", Lat: 40.8138, Lon: -74.0725, ForSections: "100-112, 201-212"},
			{Name: "Gate B", Description: "South entrance", Lat: 40.8115, Lon: -74.0742, ForSections: "113-124, 213-224"},
			{Name: "Gate C", Description: "West entrance", Lat: 40.8128, Lon: -74.0765, ForSections: "125-136, 225-236"},
			{Name: "Gate D", Description: "North entrance", Lat: 40.8145, Lon: -74.0742, ForSections: "137-148, 237-248"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneDropoff, Name: "Lot E RideShare Drop-off", Description: "Before game - east side", Lat: 40.8150, Lon: -74.0710, WalkingMinutes: 7},
			{Provider: "all", Type: ZonePickup, Name: "Lot K RideShare Pickup", Description: "After game - follow blue signs", Lat: 40.8100, Lon: -74.0780, WalkingMinutes: 12},
		},
	},
	{
		Name: "SoFi Stadium", City: "Los Angeles", CityKey: "losAngeles", Lat: 33.9534, Lon: -118.3390,
		EntryGates: []EntryGate{
			{Name: "American Airlines Plaza", Description: "Main entrance - north side", Lat: 33.9548, Lon: -118.3390, ForSections: "100-115, C100-C115"},
			{Name: "YouTube Theater Entrance", Description: "East side entrance", Lat: 33.9534, Lon: -118.3365, ForSections: "116-130, C116-C130"},
			{Name: "South Gate", Description: "South entrance near VIP", Lat: 33.9520, Lon: -118.3390, ForSections: "131-145, C131-C145"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Pink Zone", Description: "Hollywood Park Casino area", Lat: 33.9575, Lon: -118.3360, WalkingMinutes: 10},
			{Provider: "uber", Type: ZonePickup, Name: "Uber Lot", Description: "Designated Uber pickup - east", Lat: 33.9510, Lon: -118.3340, WalkingMinutes: 8},
			{Provider: "lyft", Type: ZonePickup, Name: "Lyft Zone", Description: "Designated Lyft pickup - west", Lat: 33.9510, Lon: -118.3420, WalkingMinutes: 9},
		},
	},
	{
		Name: "Hard Rock Stadium", City: "Miami", CityKey: "miami", Lat: 25.9580, Lon: -80.2389,
		EntryGates: []EntryGate{
			{Name: "Gate 1", Description: "Northwest entrance", Lat: 25.9595, Lon: -80.2405, ForSections: "100-112"},
			{Name: "Gate 2", Description: "Northeast entrance", Lat: 25.9595, Lon: -80.2373, ForSections: "113-125"},
			{Name: "Gate 3", Description: "Southeast entrance", Lat: 25.9565, Lon: -80.2373, ForSections: "126-138"},
			{Name: "Gate 4", Description: "Southwest entrance", Lat: 25.9565, Lon: -80.2405, ForSections: "139-150"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneDropoff, Name: "RideShare Lot", Description: "Enter from 199th Street", Lat: 25.9620, Lon: -80.2389, WalkingMinutes: 8},
			{Provider: "all", Type: ZonePickup, Name: "Post-Game Pickup", Description: "Lot 18 - follow illuminated signs", Lat: 25.9550, Lon: -80.2420, WalkingMinutes: 10},
		},
	},
	{
		Name: "AT&T Stadium", City: "Dallas", CityKey: "dallas", Lat: 32.7473, Lon: -97.0945,
		EntryGates: []EntryGate{
			{Name: "Gate A", Description: "West plaza main entrance", Lat: 32.7473, Lon: -97.0970, ForSections: "100-115, C200-C215"},
			{Name: "Gate B", Description: "East plaza entrance", Lat: 32.7473, Lon: -97.0920, ForSections: "116-130, C216-C230"},
			{Name: "Gate C", Description: "North entrance", Lat: 32.7490, Lon: -97.0945, ForSections: "131-145, C231-C245"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Lot 4 RideShare", Description: "Primary rideshare - Collins Street", Lat: 32.7500, Lon: -97.0980, WalkingMinutes: 12},
			{Provider: "all", Type: ZonePickup, Name: "Texas Live! Pickup", Description: "Entertainment district pickup", Lat: 32.7510, Lon: -97.0900, WalkingMinutes: 10},
		},
	},
	{
		Name: "NRG Stadium", City: "Houston", CityKey: "houston", Lat: 29.6847, Lon: -95.4107,
		EntryGates: []EntryGate{
			{Name: "Gate A", Description: "East entrance", Lat: 29.6847, Lon: -95.4080, ForSections: "100-115"},
			{Name: "Gate B", Description: "West entrance", Lat: 29.6847, Lon: -95.4134, ForSections: "116-130"},
			{Name: "Gate C", Description: "North entrance - NRG Center", Lat: 29.6865, Lon: -95.4107, ForSections: "500-530"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Yellow Lot", Description: "Kirby Drive entrance", Lat: 29.6880, Lon: -95.4080, WalkingMinutes: 10},
		},
	},
	{
		Name: "Mercedes-Benz Stadium", City: "Atlanta", CityKey: "atlanta", Lat: 33.7553, Lon: -84.4006,
		EntryGates: []EntryGate{
			{Name: "Gate 1", Description: "Northwest corner - main", Lat: 33.7570, Lon: -84.4020, ForSections: "100-112"},
			{Name: "Gate 2", Description: "Northeast corner", Lat: 33.7570, Lon: -84.3992, ForSections: "113-124"},
			{Name: "Gate 3", Description: "Southeast corner", Lat: 33.7536, Lon: -84.3992, ForSections: "125-136"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneDropoff, Name: "Gulch Drop-off", Description: "Martin Luther King Jr Dr", Lat: 33.7530, Lon: -84.4030, WalkingMinutes: 5},
			{Provider: "all", Type: ZonePickup, Name: "State Farm Arena Pickup", Description: "Post-game designated area", Lat: 33.7573, Lon: -84.3963, WalkingMinutes: 8},
		},
	},
	{
		Name: "Lincoln Financial Field", City: "Philadelphia", CityKey: "philadelphia", Lat: 39.9008, Lon: -75.1675,
		EntryGates: []EntryGate{
			{Name: "Gate A", Description: "Northeast entrance", Lat: 39.9020, Lon: -75.1660, ForSections: "100-112"},
			{Name: "Gate B", Description: "Southeast entrance", Lat: 39.8996, Lon: -75.1660, ForSections: "113-124"},
			{Name: "Gate C", Description: "Southwest entrance", Lat: 39.8996, Lon: -75.1690, ForSections: "125-136"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Lot K RideShare", Description: "Darien Street entrance", Lat: 39.9035, Lon: -75.1650, WalkingMinutes: 8},
		},
	},
	{
		Name: "Lumen Field", City: "Seattle", CityKey: "seattle", Lat: 47.5952, Lon: -122.3316,
		EntryGates: []EntryGate{
			{Name: "North Gate", Description: "Main entrance - S Royal Brougham", Lat: 47.5968, Lon: -122.3316, ForSections: "100-115"},
			{Name: "South Gate", Description: "S Atlantic Street entrance", Lat: 47.5936, Lon: -122.3316, ForSections: "116-130"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneDropoff, Name: "Occidental Ave Drop-off", Description: "Near Pioneer Square", Lat: 47.5990, Lon: -122.3330, WalkingMinutes: 5},
			{Provider: "all", Type: ZonePickup, Name: "1st Ave S Pickup", Description: "Post-game pickup zone", Lat: 47.5920, Lon: -122.3340, WalkingMinutes: 7},
		},
	},
	{
		Name: "Gillette Stadium", City: "Boston", CityKey: "boston", Lat: 42.0909, Lon: -71.2643,
		EntryGates: []EntryGate{
			{Name: "Gate A", Description: "North entrance - Patriot Place", Lat: 42.0925, Lon: -71.2643, ForSections: "100-115"},
			{Name: "Gate B", Description: "West entrance", Lat: 42.0909, Lon: -71.2665, ForSections: "116-130"},
			{Name: "Gate C", Description: "East entrance", Lat: 42.0909, Lon: -71.2621, ForSections: "131-145"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "P5 RideShare Lot", Description: "Route 1 entrance", Lat: 42.0940, Lon: -71.2620, WalkingMinutes: 10},
		},
	},
	{
		Name: "Levi's Stadium", City: "San Francisco", CityKey: "sanFrancisco", Lat: 37.4033, Lon: -121.9695,
		EntryGates: []EntryGate{
			{Name: "Gate A", Description: "Intel Gate - northeast", Lat: 37.4045, Lon: -121.9680, ForSections: "100-115"},
			{Name: "Gate B", Description: "Dignity Health Gate - southeast", Lat: 37.4021, Lon: -121.9680, ForSections: "116-130"},
			{Name: "Gate F", Description: "Yahoo! Gate - northwest", Lat: 37.4045, Lon: -121.9710, ForSections: "200-215"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneDropoff, Name: "Great America Pkwy Drop-off", Description: "Near VTA station", Lat: 37.4060, Lon: -121.9720, WalkingMinutes: 8},
			{Provider: "all", Type: ZonePickup, Name: "Lot 1 Pickup", Description: "Post-game designated zone", Lat: 37.4010, Lon: -121.9730, WalkingMinutes: 10},
		},
	},
	{
		Name: "BMO Field", City: "Toronto", CityKey: "toronto", Lat: 43.6332, Lon: -79.4186,
		EntryGates: []EntryGate{
			{Name: "Gate 1", Description: "Main entrance - Princes Blvd", Lat: 43.6340, Lon: -79.4186, ForSections: "100-115"},
			{Name: "Gate 2", Description: "South entrance", Lat: 43.6324, Lon: -79.4186, ForSections: "116-130"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Exhibition Place Drop Zone", Description: "Near CNE grounds", Lat: 43.6355, Lon: -79.4170, WalkingMinutes: 6},
		},
	},
	{
		Name: "BC Place", City: "Vancouver", CityKey: "vancouver", Lat: 49.2768, Lon: -123.1118,
		EntryGates: []EntryGate{
			{Name: "Gate A", Description: "North entrance - Robson Street", Lat: 49.2780, Lon: -123.1118, ForSections: "200-215"},
			{Name: "Gate B", Description: "East entrance - Terry Fox Plaza", Lat: 49.2768, Lon: -123.1095, ForSections: "216-230"},
			{Name: "Gate C", Description: "West entrance", Lat: 49.2768, Lon: -123.1141, ForSections: "231-245"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Pacific Blvd Zone", Description: "Near Costco", Lat: 49.2755, Lon: -123.1150, WalkingMinutes: 5},
		},
	},
	{
		Name: "Estadio Azteca", City: "Mexico City", CityKey: "mexicoCity", Lat: 19.3029, Lon: -99.1505,
		EntryGates: []EntryGate{
			{Name: "Puerta 1", Description: "Entrance north - Calzada de Tlalpan", Lat: 19.3045, Lon: -99.1505, ForSections: "100-115"},
			{Name: "Puerta 2", Description: "Entrance east", Lat: 19.3029, Lon: -99.1480, ForSections: "116-130"},
			{Name: "Puerta 3", Description: "Entrance south - main", Lat: 19.3013, Lon: -99.1505, ForSections: "131-145"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Zona Uber/Didi", Description: "Calzada de Tlalpan entrance", Lat: 19.3055, Lon: -99.1490, WalkingMinutes: 8},
		},
	},
	{
		Name: "Estadio Akron", City: "Guadalajara", CityKey: "guadalajara", Lat: 20.6810, Lon: -103.4621,
		EntryGates: []EntryGate{
			{Name: "Acceso Norte", Description: "North entrance", Lat: 20.6825, Lon: -103.4621, ForSections: "100-115"},
			{Name: "Acceso Sur", Description: "South entrance", Lat: 20.6795, Lon: -103.4621, ForSections: "116-130"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Zona de Rideshare", Description: "Via Av. de las Torres", Lat: 20.6840, Lon: -103.4600, WalkingMinutes: 10},
		},
	},
	{
		Name: "Estadio BBVA", City: "Monterrey", CityKey: "monterrey", Lat: 25.6699, Lon: -100.2445,
		EntryGates: []EntryGate{
			{Name: "Acceso Principal", Description: "Main entrance - Av. Pablo Livas", Lat: 25.6710, Lon: -100.2445, ForSections: "100-120"},
			{Name: "Acceso Este", Description: "East entrance", Lat: 25.6699, Lon: -100.2420, ForSections: "121-140"},
		},
		RideShareZones: []RideShareZone{
			{Provider: "all", Type: ZoneBoth, Name: "Zona Uber/Didi", Description: "Av. Pablo Livas", Lat: 25.6725, Lon: -100.2430, WalkingMinutes: 7},
		},
	},
}

// Stadiums returns all configured stadiums.
func Stadiums() []Stadium {
	return stadiums
}

// StadiumByCity returns the stadium for a city key.
func StadiumByCity(cityKey string) (Stadium, bool) {
	for _, s := range stadiums {
		if s.CityKey == cityKey {
			return s, true
		}
	}
	return Stadium{}, false
}

// DropoffZones filters a stadium's rideshare zones to those usable for
// drop-off (dropoff or both).
func (s Stadium) DropoffZones() []RideShareZone {
	var zones []RideShareZone
	for _, z := range s.RideShareZones {
		if z.Type == ZoneDropoff || z.Type == ZoneBoth {
			zones = append(zones, z)
		}
	}
	return zones
}
