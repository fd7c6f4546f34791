// Package locate turns the inconsistent, often-missing location text on raw
// group records into displayable coordinates: gazetteer resolution with
// state-level fallbacks, privacy jitter, and round-robin distribution for
// records that cannot be placed at all.
package locate

import (
	"strings"

	"groupmap/internal/models"
	"groupmap/pkg/gazetteer"
)

// DefaultArea is the neighborhood shown when no more specific display text
// can be derived from a record.
const DefaultArea = "DMV Area"

// noInfoSentinels are candidate values that carry no usable location
// information. Comparison is case-insensitive after trimming; any value
// starting with "varies" is also treated as no-info.
var noInfoSentinels = []string{
	"",
	"dmv area",
	"contact for location",
}

func isNoInfo(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(t, "varies") {
		return true
	}
	for _, sentinel := range noInfoSentinels {
		if t == sentinel {
			return true
		}
	}
	return false
}

// Resolve picks the first usable candidate location string, resolves it
// against the gazetteer, and returns a display location with a jittered
// coordinate. When every candidate is a no-info sentinel it falls back to
// extracting a known place name from fallbackName; when that also fails the
// record is left without coordinates for the distributor to place.
//
// The lookup ladder for a chosen candidate never misses: exact match, then
// substring match in either direction, then a state-level anchor when the
// text mentions Virginia or Maryland, then the DC-center anchor.
func Resolve(candidates []string, fallbackName string) models.Location {
	candidate := ""
	for _, c := range candidates {
		if !isNoInfo(c) {
			candidate = strings.TrimSpace(c)
			break
		}
	}

	if candidate == "" {
		if e, ok := gazetteer.ExtractPlace(fallbackName); ok {
			coord := Jitter(models.Coordinates{Lat: e.Lat, Lng: e.Lng})
			return models.Location{
				Address:             e.Name,
				Neighborhood:        e.Name,
				Coordinates:         &coord,
				HasSpecificLocation: true,
			}
		}
		return models.Location{
			Address:      DefaultArea,
			Neighborhood: DefaultArea,
		}
	}

	entry := lookup(candidate)
	coord := Jitter(models.Coordinates{Lat: entry.Lat, Lng: entry.Lng})
	return models.Location{
		Address:             candidate,
		Neighborhood:        neighborhoodOf(candidate),
		Coordinates:         &coord,
		HasSpecificLocation: true,
	}
}

func lookup(candidate string) gazetteer.Entry {
	if e, ok := gazetteer.Match(candidate); ok {
		return e
	}
	lc := strings.ToLower(candidate)
	switch {
	case strings.Contains(lc, "virginia") || strings.Contains(lc, "va"):
		return gazetteer.Arlington
	case strings.Contains(lc, "maryland") || strings.Contains(lc, "md"):
		return gazetteer.SilverSpring
	}
	return gazetteer.DCCenter
}

// neighborhoodOf is the display text before the first comma, trimmed.
func neighborhoodOf(candidate string) string {
	n := candidate
	if i := strings.Index(n, ","); i != -1 {
		n = n[:i]
	}
	n = strings.TrimSpace(n)
	if n == "" {
		return DefaultArea
	}
	return n
}
