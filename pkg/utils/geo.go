package utils

import "math"

// kmPerDegree is the approximate north-south span of one degree of latitude.
const kmPerDegree = 111.0

// BoundingBox is a rectangular latitude/longitude range used in place of a
// true great-circle radius filter. Inclusive on all bounds. HasLng is false
// near the poles where the longitude span degenerates.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
	HasLng bool
}

// NewBoundingBox builds the box around (lat, lng) for a radius in kilometers.
// The math is deliberately planar, not geodesic: latDelta = radius/111,
// lngDelta = radius/(111*cos(lat)). Downstream consumers depend on this
// approximation, keep it as is.
func NewBoundingBox(lat, lng, radiusKM float64) BoundingBox {
	latDelta := radiusKM / kmPerDegree

	box := BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
	}

	// cos(lat) ~ 0 at the poles, skip the longitude bound instead of
	// dividing by zero
	cosLat := math.Cos(lat * math.Pi / 180.0)
	if math.Abs(cosLat) > 1e-6 {
		lngDelta := radiusKM / (kmPerDegree * cosLat)
		box.MinLng = lng - lngDelta
		box.MaxLng = lng + lngDelta
		box.HasLng = true
	}

	return box
}
