package locate

import "groupmap/internal/models"

// Anchor is a fixed fallback point used to spread unplaceable records across
// the service area instead of stacking them on one coordinate.
type Anchor struct {
	Name  string
	Coord models.Coordinates
}

// Anchors spans DC, Northern Virginia, and Maryland. Assignment walks this
// slice round-robin in input order.
var Anchors = []Anchor{
	{"Washington DC", models.Coordinates{Lat: 38.9072, Lng: -77.0369}},
	{"Capitol Hill", models.Coordinates{Lat: 38.8866, Lng: -76.9962}},
	{"Columbia Heights", models.Coordinates{Lat: 38.9268, Lng: -77.0316}},
	{"Arlington", models.Coordinates{Lat: 38.8816, Lng: -77.0910}},
	{"Alexandria", models.Coordinates{Lat: 38.8048, Lng: -77.0469}},
	{"Tysons", models.Coordinates{Lat: 38.9187, Lng: -77.2311}},
	{"Fairfax", models.Coordinates{Lat: 38.8462, Lng: -77.3064}},
	{"Reston", models.Coordinates{Lat: 38.9586, Lng: -77.3570}},
	{"Silver Spring", models.Coordinates{Lat: 38.9907, Lng: -77.0261}},
	{"Bethesda", models.Coordinates{Lat: 38.9847, Lng: -77.0947}},
	{"Rockville", models.Coordinates{Lat: 39.0840, Lng: -77.1528}},
	{"College Park", models.Coordinates{Lat: 38.9897, Lng: -76.9378}},
}

// Distribute runs one distribution pass starting from anchor index 0.
func Distribute(groups []models.GroupRecord) []models.GroupRecord {
	out, _ := DistributeFrom(groups, 0)
	return out
}

// DistributeFrom assigns anchors round-robin to every record that lacks a
// specific location, starting at counter next, and returns the advanced
// counter so callers can thread it across passes. Records that already have
// a specific location pass through unchanged. The counter is shared across
// the whole pass, not reset per record, so given the same input order the
// assignment is deterministic up to jitter.
func DistributeFrom(groups []models.GroupRecord, next int) ([]models.GroupRecord, int) {
	out := make([]models.GroupRecord, len(groups))
	for i, g := range groups {
		if g.Location.HasSpecificLocation {
			out[i] = g
			continue
		}
		a := Anchors[next%len(Anchors)]
		next++
		coord := Jitter(a.Coord)
		g.Location = models.Location{
			Address:             a.Name + " area",
			Neighborhood:        a.Name,
			Coordinates:         &coord,
			HasSpecificLocation: true,
		}
		out[i] = g
	}
	return out, next
}
