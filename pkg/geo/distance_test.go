package geo_test

import (
	"math"
	"testing"

	"lintang/routesearch/pkg/geo"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, geo.HaversineDegrees(38.98, -3.92, 38.98, -3.92), 1e-9)
	})

	t.Run("one degree of latitude along a meridian", func(t *testing.T) {
		d := geo.HaversineDegrees(0, 0, 1, 0)
		assert.InDelta(t, geo.MetersPerDegree, d, 1e-6)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := geo.HaversineDegrees(38.9848, -3.9274, 39.8628, -4.0273)
		b := geo.HaversineDegrees(39.8628, -4.0273, 38.9848, -3.9274)
		assert.InDelta(t, a, b, 1e-9)
		// Ciudad Real - Toledo kurang lebih 98 km
		assert.InDelta(t, 98000, a, 2000)
	})
}

func TestPlanarDistances(t *testing.T) {
	assert.InDelta(t, 5.0, geo.EuclideanDistance(0, 0, 3, 4), 1e-12)
	assert.InDelta(t, 7.0, geo.ManhattanDistance(0, 0, 3, -4), 1e-12)
}

func TestBearing(t *testing.T) {
	assert.InDelta(t, 0.0, geo.BearingTo(0, 0, 1, 0), 1e-9)
	assert.InDelta(t, 90.0, geo.BearingTo(0, 0, 0, 1), 1e-9)
	assert.Equal(t, "E", geo.CardinalDirection(geo.BearingTo(0, 0, 0, 1)))
	assert.Equal(t, "S", geo.CardinalDirection(180))
	assert.Equal(t, "NW", geo.CardinalDirection(-45))
	assert.False(t, math.IsNaN(geo.BearingTo(10, 10, 10, 10)))
}
