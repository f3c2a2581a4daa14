package spatial_test

import (
	"testing"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/spatial"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cityIntersections() []datastructure.Intersection {
	return []datastructure.Intersection{
		datastructure.NewIntersection(1, datastructure.NewCoordinatePtr(38.9861, -3.9272)),
		datastructure.NewIntersection(2, datastructure.NewCoordinatePtr(38.9868, -3.9262)),
		datastructure.NewIntersection(3, datastructure.NewCoordinatePtr(38.9874, -3.9250)),
		datastructure.NewIntersection(4, nil),
		// jauh, Toledo
		datastructure.NewIntersection(5, datastructure.NewCoordinatePtr(39.8628, -4.0273)),
	}
}

func TestNearest(t *testing.T) {
	indexes := map[string]spatial.Index{
		"h3":    spatial.NewH3Index(cityIntersections()),
		"rtree": spatial.NewRTreeIndex(cityIntersections()),
	}

	for name, idx := range indexes {
		t.Run(name, func(t *testing.T) {
			m, err := idx.Nearest(38.98682, -3.92615)
			require.NoError(t, err)
			assert.Equal(t, int64(2), m.Intersection.ID)
			assert.Less(t, m.DistanceM, 10.0)

			m, err = idx.Nearest(39.8630, -4.0270)
			require.NoError(t, err)
			assert.Equal(t, int64(5), m.Intersection.ID)
		})
	}
}

func TestH3IndexFarAway(t *testing.T) {
	idx := spatial.NewH3Index(cityIntersections())
	assert.GreaterOrEqual(t, idx.NumCells(), 2)
	assert.LessOrEqual(t, idx.NumCells(), 4)

	// di tengah samudra, tidak ada cell dalam grid disk level 10.
	_, err := idx.Nearest(0, -30)
	assert.ErrorIs(t, err, spatial.ErrNoIntersection)
}

func TestRTreeIndex(t *testing.T) {
	idx := spatial.NewRTreeIndex(cityIntersections())
	assert.Equal(t, 4, idx.Size())

	empty := spatial.NewRTreeIndex(nil)
	_, err := empty.Nearest(0, 0)
	assert.ErrorIs(t, err, spatial.ErrNoIntersection)
}

func TestProjectToSegment(t *testing.T) {
	a := datastructure.NewCoordinate(0, 0)
	b := datastructure.NewCoordinate(0, 0.01)
	p := datastructure.NewCoordinate(0.001, 0.005)

	proj := spatial.ProjectToSegment(p, a, b)
	assert.InDelta(t, 0.0, proj.Lat, 1e-9)
	assert.InDelta(t, 0.005, proj.Lon, 1e-9)

	assert.InDelta(t, 111.2, spatial.DistanceToSegmentM(p, a, b), 0.5)

	// di luar segment, jatuh ke endpoint terdekat.
	end := spatial.ProjectToSegment(datastructure.NewCoordinate(0, 0.02), a, b)
	assert.InDelta(t, 0.01, end.Lon, 1e-9)
}
