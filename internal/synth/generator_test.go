package synth

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/poiforge/internal/geo"
)

var delhiBox = geo.BBox{LatMin: 28.40, LatMax: 28.80, LonMin: 76.95, LonMax: 77.40}

func delhiGenerator(minSpacingKM float64) Generator {
	return Generator{
		Box:          delhiBox,
		MinSpacingKM: minSpacingKM,
		Sampler:      Sampler{Center: geo.Point{Latitude: 28.6139, Longitude: 77.2090}, RadiusKM: 20},
	}
}

func TestGenerate_BoundaryAndSpacing(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := delhiGenerator(0.5)

	pts := g.Generate(rng, nil, 50, 50*20)
	require.Len(t, pts, 50)

	for _, p := range pts {
		assert.True(t, delhiBox.Contains(p), "point %v outside box", p)
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			d := geo.HaversineKM(pts[i], pts[j])
			assert.GreaterOrEqual(t, d, 0.5-1e-9, "points %d and %d too close", i, j)
		}
	}
}

func TestGenerate_RespectsSeedSpacing(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := delhiGenerator(1.0)

	seed := []geo.Point{
		{Latitude: 28.6139, Longitude: 77.2090},
		{Latitude: 28.6500, Longitude: 77.2300},
	}
	pts := g.Generate(rng, seed, 30, 30*20)
	require.NotEmpty(t, pts)

	for _, p := range pts {
		for _, s := range seed {
			assert.GreaterOrEqual(t, geo.HaversineKM(p, s), 1.0-1e-9)
		}
	}
	// Seed points are never part of the result.
	for _, p := range pts {
		assert.NotContains(t, seed, p)
	}
}

func TestGenerate_CountBound(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	g := delhiGenerator(0.2)

	pts := g.Generate(rng, nil, 25, 25*20)
	assert.Len(t, pts, 25)
}

func TestGenerate_UnderfillOnExhaustedBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	// A box barely a kilometer across with 5 km spacing holds one point.
	box := geo.BBox{LatMin: 28.610, LatMax: 28.620, LonMin: 77.205, LonMax: 77.215}
	g := Generator{
		Box:          box,
		MinSpacingKM: 5,
		Sampler:      Sampler{Center: box.Center(), RadiusKM: 0.5},
	}

	pts := g.Generate(rng, nil, 10, 200)
	assert.Len(t, pts, 1, "spacing should block every point after the first")
}

func TestGenerate_ZeroAttempts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := delhiGenerator(0.5)
	assert.Empty(t, g.Generate(rng, nil, 10, 0))
}

func TestGenerate_DeterministicUnderFixedSeed(t *testing.T) {
	g := delhiGenerator(0.5)
	seed := []geo.Point{{Latitude: 28.6139, Longitude: 77.2090}}

	a := g.Generate(rand.New(rand.NewSource(99)), seed, 40, 40*20)
	b := g.Generate(rand.New(rand.NewSource(99)), seed, 40, 40*20)
	assert.Equal(t, a, b)
}
