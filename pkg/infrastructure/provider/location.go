package provider

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Walking pace used for the ETA shown on the tracking screen.
const walkingSpeedMPS = 1.4

const earthRadiusM = 6371000

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceMeters is the haversine great-circle distance between two points.
func DistanceMeters(a, b LatLng) float64 {
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(la1)*math.Cos(la2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Walker simulates the milkman's position as a random walk around the dairy.
// It is the demo stand-in for a real location feed.
type Walker struct {
	mu       sync.Mutex
	position LatLng
	stepDeg  float64
	rng      *rand.Rand
}

func NewWalker(origin LatLng, stepDeg float64, seed int64) *Walker {
	return &Walker{
		position: origin,
		stepDeg:  stepDeg,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (w *Walker) Current() LatLng {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.position
}

// Step moves the walker one random increment in each axis.
func (w *Walker) Step() LatLng {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.position.Lat += (w.rng.Float64() - 0.5) * w.stepDeg
	w.position.Lng += (w.rng.Float64() - 0.5) * w.stepDeg
	return w.position
}

// Run steps the walk on every tick until the context is cancelled.
func (w *Walker) Run(ctx context.Context, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Step()
		}
	}
}

// ETA estimates arrival time at a destination from the current position,
// assuming walking pace.
func (w *Walker) ETA(dest LatLng) time.Duration {
	meters := DistanceMeters(w.Current(), dest)
	return time.Duration(meters/walkingSpeedMPS) * time.Second
}
