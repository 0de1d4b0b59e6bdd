// Package dataset defines the built-in dataset categories and the assembler
// that turns fetched and synthetic coordinates into a finished point set.
package dataset

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/poiforge/internal/geo"
	"github.com/sells-group/poiforge/internal/synth"
)

// Category names one point-of-interest dataset variant.
type Category string

const (
	Educational Category = "educational"
	Residential Category = "residential"
	Shopping    Category = "shopping"
)

func (c Category) String() string { return string(c) }

// Spec carries every tunable for one dataset category. Values are fixed at
// build time; the CLI only overrides the target count and output path.
type Spec struct {
	Category     Category
	TargetCount  int
	Box          geo.BBox
	Center       geo.Point   // dataset center for background sampling
	RadiusKM     float64     // outer sampling radius
	MinSpacingKM float64     // minimum spacing between synthetic points
	Hubs         []synth.Hub // optional density hubs
	SeedPoints   []geo.Point // curated coordinates merged with fetched data
	Queries      []string    // Overpass QL queries, results concatenated

	// AttemptFactor scales the rejection-sampling budget: a pass that
	// needs n points may spend n*AttemptFactor candidates.
	AttemptFactor int
}

// MaxAttempts returns the candidate budget for a pass that needs n points.
func (s Spec) MaxAttempts(n int) int { return n * s.AttemptFactor }

// OutputFile returns the default CSV filename for the category.
func (s Spec) OutputFile() string {
	return fmt.Sprintf("delhi_%s_coordinates.csv", s.Category)
}

// ForCategory returns the built-in spec for c.
func ForCategory(c Category) (Spec, error) {
	for _, s := range All() {
		if s.Category == c {
			return s, nil
		}
	}
	return Spec{}, eris.Errorf("dataset: unknown category %q", c)
}

// All returns the built-in category specs in their canonical order.
func All() []Spec {
	return []Spec{
		{
			Category:      Educational,
			TargetCount:   500,
			Box:           delhiBox,
			Center:        delhiCenter,
			RadiusKM:      delhiRadiusKM,
			MinSpacingKM:  defaultSpacingKM,
			SeedPoints:    educationalSeeds,
			Queries:       []string{educationalQuery, educationalNamedQuery},
			AttemptFactor: defaultAttemptFactor,
		},
		{
			Category:      Residential,
			TargetCount:   1000,
			Box:           delhiBox,
			Center:        delhiCenter,
			RadiusKM:      delhiRadiusKM,
			MinSpacingKM:  defaultSpacingKM,
			Queries:       []string{residentialQuery},
			AttemptFactor: defaultAttemptFactor,
		},
		{
			Category:      Shopping,
			TargetCount:   1000,
			Box:           delhiBox,
			Center:        delhiCenter,
			RadiusKM:      delhiRadiusKM,
			MinSpacingKM:  defaultSpacingKM,
			Hubs:          commercialHubs,
			Queries:       []string{shoppingQuery},
			AttemptFactor: defaultAttemptFactor,
		},
	}
}
