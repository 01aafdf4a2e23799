package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoundingBox_LatitudeDelta(t *testing.T) {
	box := NewBoundingBox(52.52, 13.405, 50)

	latDelta := 50.0 / 111.0
	assert.InDelta(t, 52.52-latDelta, box.MinLat, 1e-9)
	assert.InDelta(t, 52.52+latDelta, box.MaxLat, 1e-9)
}

func TestNewBoundingBox_LongitudeDeltaWidensWithLatitude(t *testing.T) {
	equator := NewBoundingBox(0, 10, 50)
	north := NewBoundingBox(60, 10, 50)

	assert.True(t, equator.HasLng)
	assert.True(t, north.HasLng)

	equatorSpan := equator.MaxLng - equator.MinLng
	northSpan := north.MaxLng - north.MinLng

	// cos(60) = 0.5, the box is twice as wide in degrees up north
	assert.InDelta(t, 2*equatorSpan, northSpan, 1e-6)
}

func TestNewBoundingBox_PoleSkipsLongitude(t *testing.T) {
	box := NewBoundingBox(90, 0, 50)

	assert.False(t, box.HasLng)
	// latitude bound still present
	assert.InDelta(t, 90+50.0/111.0, box.MaxLat, 1e-9)
}

func TestNewBoundingBox_ExactValues(t *testing.T) {
	box := NewBoundingBox(45, 0, 111)

	assert.InDelta(t, 44.0, box.MinLat, 1e-9)
	assert.InDelta(t, 46.0, box.MaxLat, 1e-9)

	lngDelta := 1.0 / math.Cos(45*math.Pi/180.0)
	assert.InDelta(t, -lngDelta, box.MinLng, 1e-9)
	assert.InDelta(t, lngDelta, box.MaxLng, 1e-9)
}
