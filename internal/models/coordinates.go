package models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location describes where a group is displayed on the map. Coordinates is
// nil only while a record is mid-resolution; every record handed to the
// presentation layer carries a non-nil, already jittered coordinate.
type Location struct {
	Address             string       `json:"address"`
	Neighborhood        string       `json:"neighborhood"`
	Coordinates         *Coordinates `json:"coordinates,omitempty"`
	HasSpecificLocation bool         `json:"hasSpecificLocation"`
}
