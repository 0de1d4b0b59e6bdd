// Package synth generates synthetic coordinates by bounded rejection
// sampling, optionally biased toward weighted density hubs.
package synth

import (
	"math/rand"

	"github.com/sells-group/poiforge/internal/geo"
)

// Hub is a named sub-center with a density weight. Weights run 1 to 10;
// higher weights pull points into a tighter cluster around the hub.
// Hub tables are static configuration and never change at runtime.
type Hub struct {
	Name   string
	Center geo.Point
	Weight float64
}

// RadiusKM maps the hub weight to its local sampling radius. The mapping is
// linear and monotonically decreasing: weight 1 gives the widest disc
// (2.0 km), weight 10 the tightest (0.2 km).
func (h Hub) RadiusKM() float64 {
	return 2.0 * (11 - h.Weight) / 10
}

// SelectHub picks one hub with probability proportional to its weight:
// draw r uniform in [0, total weight), walk the table accumulating weight,
// and return the first hub whose cumulative weight reaches r.
// hubs must be non-empty.
func SelectHub(rng *rand.Rand, hubs []Hub) Hub {
	var total float64
	for _, h := range hubs {
		total += h.Weight
	}

	r := rng.Float64() * total
	var cum float64
	for _, h := range hubs {
		cum += h.Weight
		if r <= cum {
			return h
		}
	}
	return hubs[0]
}
