package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKM(t *testing.T) {
	// Connaught Place to the Delhi metro center, roughly 2 km.
	d := HaversineKM(Point{28.6139, 77.2090}, Point{28.6304, 77.2177})
	assert.InDelta(t, 2.0, d, 0.15)

	// Austin to Dallas, roughly 290 km.
	d = HaversineKM(Point{30.2672, -97.7431}, Point{32.7767, -96.7970})
	assert.InDelta(t, 290, d, 15)

	assert.InDelta(t, 0, HaversineKM(Point{28.6, 77.2}, Point{28.6, 77.2}), 0.001)
}

func TestHaversineKM_Symmetric(t *testing.T) {
	a := Point{28.5450, 77.1926}
	b := Point{28.7496, 77.1183}
	assert.Equal(t, HaversineKM(a, b), HaversineKM(b, a))
}

func TestBBoxContains(t *testing.T) {
	box := BBox{LatMin: 28.40, LatMax: 28.80, LonMin: 76.95, LonMax: 77.40}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{28.61, 77.21}, true},
		{"lat min edge", Point{28.40, 77.21}, true},
		{"lat max edge", Point{28.80, 77.21}, true},
		{"lon min edge", Point{28.61, 76.95}, true},
		{"lon max edge", Point{28.61, 77.40}, true},
		{"corner", Point{28.40, 76.95}, true},
		{"north of box", Point{28.81, 77.21}, false},
		{"south of box", Point{28.39, 77.21}, false},
		{"west of box", Point{28.61, 76.94}, false},
		{"east of box", Point{28.61, 77.41}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.Contains(tt.p))
		})
	}
}

func TestBBoxCenter(t *testing.T) {
	box := BBox{LatMin: 28.40, LatMax: 28.80, LonMin: 76.95, LonMax: 77.40}
	c := box.Center()
	assert.InDelta(t, 28.60, c.Latitude, 1e-9)
	assert.InDelta(t, 77.175, c.Longitude, 1e-9)
	assert.True(t, box.Contains(c))
}
