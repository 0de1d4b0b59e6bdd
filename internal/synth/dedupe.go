package synth

import "github.com/sells-group/poiforge/internal/geo"

// Dedupe removes exact coordinate duplicates, keeping the first occurrence
// and preserving order. Equality is bit-exact on both axes: externally
// fetched data can repeat a coordinate verbatim, and that is the one kind
// of duplication the spacing check never sees.
func Dedupe(points []geo.Point) []geo.Point {
	seen := make(map[geo.Point]struct{}, len(points))
	out := make([]geo.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
