package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCategory(t *testing.T) {
	for _, c := range []Category{Educational, Residential, Shopping} {
		spec, err := ForCategory(c)
		require.NoError(t, err)
		assert.Equal(t, c, spec.Category)
		assert.Positive(t, spec.TargetCount)
		assert.NotEmpty(t, spec.Queries)
	}

	_, err := ForCategory("restaurants")
	assert.Error(t, err)
}

func TestSpecMaxAttempts(t *testing.T) {
	spec, err := ForCategory(Residential)
	require.NoError(t, err)
	assert.Equal(t, 100*spec.AttemptFactor, spec.MaxAttempts(100))
}

func TestSpecOutputFile(t *testing.T) {
	spec, err := ForCategory(Shopping)
	require.NoError(t, err)
	assert.Equal(t, "delhi_shopping_coordinates.csv", spec.OutputFile())
}

func TestBuiltinSpecsAreCoherent(t *testing.T) {
	for _, spec := range All() {
		t.Run(spec.Category.String(), func(t *testing.T) {
			assert.Less(t, spec.Box.LatMin, spec.Box.LatMax)
			assert.Less(t, spec.Box.LonMin, spec.Box.LonMax)
			assert.True(t, spec.Box.Contains(spec.Center))
			assert.Positive(t, spec.RadiusKM)
			assert.Positive(t, spec.MinSpacingKM)
			assert.Positive(t, spec.AttemptFactor)

			for _, h := range spec.Hubs {
				assert.True(t, spec.Box.Contains(h.Center), "hub %s outside box", h.Name)
				assert.GreaterOrEqual(t, h.Weight, 1.0)
				assert.LessOrEqual(t, h.Weight, 10.0)
				assert.Positive(t, h.RadiusKM())
			}
			for _, p := range spec.SeedPoints {
				assert.True(t, spec.Box.Contains(p), "seed %v outside box", p)
			}
		})
	}
}

func TestShoppingHasHubs(t *testing.T) {
	spec, err := ForCategory(Shopping)
	require.NoError(t, err)
	assert.NotEmpty(t, spec.Hubs)

	spec, err = ForCategory(Residential)
	require.NoError(t, err)
	assert.Empty(t, spec.Hubs)
}
