package synth

import (
	"math/rand"

	"github.com/sells-group/poiforge/internal/geo"
)

const (
	// degPerKM converts kilometers to approximate degrees of latitude or
	// longitude near Delhi's latitude. A tuning constant, not a survey
	// figure; per-axis jitter below swamps its inaccuracy anyway.
	degPerKM = 0.009

	// hubDrawShare is the fraction of draws biased toward a hub when hubs
	// are configured. The remainder samples the full outer disc so the
	// dataset keeps a background of non-clustered points.
	hubDrawShare = 0.8
)

// Sampler draws candidate points around a metropolitan center, optionally
// biased toward a weighted hub table. All randomness comes from the
// caller-supplied source, so a seeded source makes draws reproducible.
type Sampler struct {
	Center   geo.Point // dataset center for background draws
	RadiusKM float64   // outer radius for background draws
	Hubs     []Hub     // optional; empty disables hub biasing
}

// Sample returns one candidate point. No boundary or spacing checks are
// applied here; the generator rejects invalid candidates.
func (s Sampler) Sample(rng *rand.Rand) geo.Point {
	if len(s.Hubs) > 0 && rng.Float64() < hubDrawShare {
		h := SelectHub(rng, s.Hubs)
		return sampleNear(rng, h.Center, h.RadiusKM(), 0.8, 1.2)
	}
	return sampleNear(rng, s.Center, s.RadiusKM, 0.7, 1.3)
}

// sampleNear offsets center by a uniform random distance up to radiusKM.
// The distance converts to a lat/lon delta through a small-angle
// approximation where each axis independently scales by a jitter factor in
// [jitterLo, jitterHi] and independently flips sign. That keeps the cloud
// roughly isotropic without trigonometry.
func sampleNear(rng *rand.Rand, center geo.Point, radiusKM, jitterLo, jitterHi float64) geo.Point {
	dist := rng.Float64() * radiusKM

	latOff := dist * degPerKM * jitter(rng, jitterLo, jitterHi)
	lonOff := dist * degPerKM * jitter(rng, jitterLo, jitterHi)
	if rng.Float64() > 0.5 {
		latOff = -latOff
	}
	if rng.Float64() > 0.5 {
		lonOff = -lonOff
	}

	return geo.Point{
		Latitude:  center.Latitude + latOff,
		Longitude: center.Longitude + lonOff,
	}
}

func jitter(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
