// Package geo holds the primitive geographic values shared across the
// generator: coordinate points, bounding boxes, and great-circle distance.
package geo

import "math"

const earthRadiusKM = 6371.0

// Point is a latitude/longitude pair. Points are immutable values with no
// identity beyond their coordinates; two points are equal only when both
// axes are bit-identical.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BBox is a rectangular geographic bounding box. LatMin < LatMax and
// LonMin < LonMax always hold for the built-in boxes.
type BBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Contains reports whether p lies inside the box, inclusive on all edges.
func (b BBox) Contains(p Point) bool {
	return p.Latitude >= b.LatMin && p.Latitude <= b.LatMax &&
		p.Longitude >= b.LonMin && p.Longitude <= b.LonMax
}

// Center returns the midpoint of the box.
func (b BBox) Center() Point {
	return Point{
		Latitude:  (b.LatMin + b.LatMax) / 2,
		Longitude: (b.LonMin + b.LonMax) / 2,
	}
}

// HaversineKM returns the great-circle distance between a and b in
// kilometers. Inputs are assumed to be well-formed coordinates.
func HaversineKM(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}
