package locate

import (
	"math/rand/v2"

	"groupmap/internal/models"
)

// JitterDegrees bounds the uniform offset added to each axis of a displayed
// coordinate, roughly a quarter mile at DMV latitudes. Display positions
// approximate meeting locations without revealing them.
const JitterDegrees = 0.0036

// Jitter returns c displaced by an independent uniform offset in
// [-JitterDegrees, +JitterDegrees] on each axis. It is applied exactly once
// per displayed coordinate, at the moment a resolver or distributor assigns
// it; stored records are never re-jittered.
func Jitter(c models.Coordinates) models.Coordinates {
	return models.Coordinates{
		Lat: c.Lat + offset(),
		Lng: c.Lng + offset(),
	}
}

func offset() float64 {
	return (rand.Float64()*2 - 1) * JitterDegrees
}
