// Package gazetteer is a static lookup table of known DMV neighborhoods and
// cities. It is the only geocoding the system performs; anything not in this
// table resolves through the state-level anchors or the DC-center default.
package gazetteer

import "strings"

// Entry is a named place with its unjittered center coordinate.
type Entry struct {
	Name string
	Lat  float64
	Lng  float64
}

// entries holds every known place in authored order. Substring matches walk
// this slice front to back and the first hit wins, so the order here is the
// documented tie-break order: DC neighborhoods, then Virginia, then Maryland.
var entries = []Entry{
	// District of Columbia
	{"Washington", 38.9072, -77.0369},
	{"Dupont Circle", 38.9097, -77.0365},
	{"Georgetown", 38.9076, -77.0723},
	{"Capitol Hill", 38.8866, -76.9962},
	{"Columbia Heights", 38.9268, -77.0316},
	{"Adams Morgan", 38.9214, -77.0425},
	{"Logan Circle", 38.9097, -77.0296},
	{"Shaw", 38.9122, -77.0228},
	{"U Street", 38.9170, -77.0281},
	{"Navy Yard", 38.8762, -77.0001},
	{"Foggy Bottom", 38.8998, -77.0503},
	{"Petworth", 38.9420, -77.0253},
	{"Brookland", 38.9334, -76.9907},
	{"Anacostia", 38.8626, -76.9950},
	{"NoMa", 38.9067, -77.0039},
	{"Tenleytown", 38.9477, -77.0794},
	{"Cleveland Park", 38.9344, -77.0581},
	{"H Street", 38.9001, -76.9885},
	// Northern Virginia
	{"Arlington", 38.8816, -77.0910},
	{"Clarendon", 38.8869, -77.0958},
	{"Ballston", 38.8820, -77.1111},
	{"Crystal City", 38.8526, -77.0506},
	{"Alexandria", 38.8048, -77.0469},
	{"Falls Church", 38.8823, -77.1711},
	{"Fairfax", 38.8462, -77.3064},
	{"Vienna", 38.9012, -77.2653},
	{"Tysons", 38.9187, -77.2311},
	{"McLean", 38.9339, -77.1773},
	{"Reston", 38.9586, -77.3570},
	{"Herndon", 38.9696, -77.3861},
	{"Springfield", 38.7893, -77.1872},
	{"Annandale", 38.8304, -77.1964},
	// Maryland
	{"Silver Spring", 38.9907, -77.0261},
	{"Bethesda", 38.9847, -77.0947},
	{"Chevy Chase", 38.9687, -77.0772},
	{"Rockville", 39.0840, -77.1528},
	{"Gaithersburg", 39.1434, -77.2014},
	{"Wheaton", 39.0398, -77.0553},
	{"Takoma Park", 38.9779, -77.0075},
	{"College Park", 38.9897, -76.9378},
	{"Hyattsville", 38.9559, -76.9455},
	{"Greenbelt", 39.0046, -76.8755},
	{"Bowie", 38.9428, -76.7303},
	{"Laurel", 39.0993, -76.8483},
}

// Fixed anchors referenced by the resolver's fallback ladder.
var (
	DCCenter     = Entry{"Washington DC", 38.9072, -77.0369}
	Arlington    = Entry{"Arlington", 38.8816, -77.0910}
	SilverSpring = Entry{"Silver Spring", 38.9907, -77.0261}
)

// Lookup returns the entry whose name equals place, case-insensitively.
func Lookup(place string) (Entry, bool) {
	place = strings.TrimSpace(place)
	for _, e := range entries {
		if strings.EqualFold(e.Name, place) {
			return e, true
		}
	}
	return Entry{}, false
}

// Match runs the lookup ladder for a candidate location string: exact match,
// then substring containment in either direction (the candidate contains a
// known name, or a known name contains the candidate).
func Match(candidate string) (Entry, bool) {
	candidate = strings.TrimSpace(candidate)
	if e, ok := Lookup(candidate); ok {
		return e, true
	}
	lc := strings.ToLower(candidate)
	if lc == "" {
		return Entry{}, false
	}
	for _, e := range entries {
		name := strings.ToLower(e.Name)
		if strings.Contains(lc, name) || strings.Contains(name, lc) {
			return e, true
		}
	}
	return Entry{}, false
}

// ExtractPlace scans free text (typically a group name) for the first known
// place name it contains.
func ExtractPlace(text string) (Entry, bool) {
	lc := strings.ToLower(text)
	if strings.TrimSpace(lc) == "" {
		return Entry{}, false
	}
	for _, e := range entries {
		if strings.Contains(lc, strings.ToLower(e.Name)) {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the gazetteer in its authored order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
