package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	mumbai := LatLng{Lat: 19.0760, Lng: 72.8777}

	assert.Zero(t, DistanceMeters(mumbai, mumbai))

	// One degree of latitude is about 111.2 km.
	north := LatLng{Lat: 20.0760, Lng: 72.8777}
	assert.InDelta(t, 111195, DistanceMeters(mumbai, north), 300)

	// Symmetric.
	assert.Equal(t, DistanceMeters(mumbai, north), DistanceMeters(north, mumbai))
}

func TestWalker(t *testing.T) {
	origin := LatLng{Lat: 19.0760, Lng: 72.8777}
	w := NewWalker(origin, 0.0005, 42)

	assert.Equal(t, origin, w.Current())

	pos := w.Step()
	assert.InDelta(t, origin.Lat, pos.Lat, 0.00025)
	assert.InDelta(t, origin.Lng, pos.Lng, 0.00025)
	assert.Equal(t, pos, w.Current())
}

func TestWalkerETA(t *testing.T) {
	w := NewWalker(LatLng{Lat: 19.0760, Lng: 72.8777}, 0.0005, 42)

	assert.Zero(t, w.ETA(w.Current()))

	dest := LatLng{Lat: 19.0860, Lng: 72.8777}
	eta := w.ETA(dest)
	assert.Positive(t, eta)
	// Roughly 1.1 km at walking pace, somewhere over ten minutes.
	assert.Greater(t, eta.Minutes(), 10.0)
}
