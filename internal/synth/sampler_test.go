package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/poiforge/internal/geo"
)

func TestSampler_OffsetsBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	center := geo.Point{Latitude: 28.6139, Longitude: 77.2090}
	s := Sampler{Center: center, RadiusKM: 20}

	// Widest possible offset: full radius, max jitter.
	maxOff := 20 * degPerKM * 1.3

	for i := 0; i < 5000; i++ {
		p := s.Sample(rng)
		assert.LessOrEqual(t, math.Abs(p.Latitude-center.Latitude), maxOff)
		assert.LessOrEqual(t, math.Abs(p.Longitude-center.Longitude), maxOff)
	}
}

func TestSampler_HubDrawsClusterNearHubs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	center := geo.Point{Latitude: 28.6139, Longitude: 77.2090}
	hub := Hub{Name: "tight", Center: geo.Point{Latitude: 28.6506, Longitude: 77.2295}, Weight: 10}
	s := Sampler{Center: center, RadiusKM: 20, Hubs: []Hub{hub}}

	hubMaxOff := hub.RadiusKM() * degPerKM * 1.2
	outerMaxOff := 20 * degPerKM * 1.3

	nearHub := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		p := s.Sample(rng)
		if math.Abs(p.Latitude-hub.Center.Latitude) <= hubMaxOff &&
			math.Abs(p.Longitude-hub.Center.Longitude) <= hubMaxOff {
			nearHub++
			continue
		}
		// Background draws stay within the outer disc.
		assert.LessOrEqual(t, math.Abs(p.Latitude-center.Latitude), outerMaxOff)
		assert.LessOrEqual(t, math.Abs(p.Longitude-center.Longitude), outerMaxOff)
	}

	// 80% of draws target the hub; background draws can also land in the
	// hub window, so only assert a generous lower bound.
	assert.Greater(t, nearHub, draws*7/10, "expected most draws near the hub")
}

func TestSampler_Deterministic(t *testing.T) {
	center := geo.Point{Latitude: 28.6139, Longitude: 77.2090}
	s := Sampler{Center: center, RadiusKM: 20}

	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		assert.Equal(t, s.Sample(a), s.Sample(b))
	}
}
