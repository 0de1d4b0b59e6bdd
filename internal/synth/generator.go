package synth

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/sells-group/poiforge/internal/geo"
)

// Generator produces synthetic points inside a bounding box by rejection
// sampling: candidates outside the box, or closer than MinSpacingKM to any
// previously accepted point, are discarded and resampled.
type Generator struct {
	Box          geo.BBox
	MinSpacingKM float64
	Sampler      Sampler
}

// Generate draws up to target new points, spending at most maxAttempts
// candidates. Seed points participate in the spacing check but are never
// returned; the result holds newly generated points only, in acceptance
// order. A result shorter than target means the attempt budget ran out
// first, which is an accepted degradation rather than an error.
//
// The spacing check scans every accepted point, so a call costs
// O(maxAttempts * (len(seed) + target)). That is fine for targets in the
// low thousands; a grid or k-d index is the upgrade path past that.
func (g Generator) Generate(rng *rand.Rand, seed []geo.Point, target, maxAttempts int) []geo.Point {
	working := make([]geo.Point, len(seed), len(seed)+target)
	copy(working, seed)
	out := make([]geo.Point, 0, target)

	attempts := 0
	for ; attempts < maxAttempts && len(out) < target; attempts++ {
		cand := g.Sampler.Sample(rng)
		if !g.Box.Contains(cand) {
			continue
		}
		if tooClose(cand, working, g.MinSpacingKM) {
			continue
		}
		working = append(working, cand)
		out = append(out, cand)
	}

	zap.L().Debug("rejection sampling finished",
		zap.Int("generated", len(out)),
		zap.Int("target", target),
		zap.Int("attempts", attempts),
	)
	return out
}

func tooClose(p geo.Point, accepted []geo.Point, minKM float64) bool {
	for _, q := range accepted {
		if geo.HaversineKM(p, q) < minKM {
			return true
		}
	}
	return false
}
