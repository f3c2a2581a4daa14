package graph_test

import (
	"math"
	"testing"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intersections(ids ...int64) []datastructure.Intersection {
	res := make([]datastructure.Intersection, 0, len(ids))
	for _, id := range ids {
		res = append(res, datastructure.NewIntersection(id, nil))
	}
	return res
}

func TestNewRouteGraph(t *testing.T) {
	t.Run("success sorts neighbors by destination", func(t *testing.T) {
		g, err := graph.NewRouteGraph(intersections(1, 2, 3, 4), []datastructure.Segment{
			{Origin: 1, Destination: 4, Distance: 10, Speed: 1},
			{Origin: 1, Destination: 2, Distance: 10, Speed: 1},
			{Origin: 1, Destination: 3, Distance: 10, Speed: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, 4, g.NumIntersections())
		assert.Equal(t, 3, g.NumSegments())

		got := []int64{}
		for _, s := range g.Neighbors(datastructure.NewState(1, nil), nil) {
			got = append(got, s.State.ID)
			assert.Equal(t, int64(1), s.Action.Origin)
			assert.True(t, s.Action.IsValid())
		}
		assert.Equal(t, []int64{2, 3, 4}, got)
	})

	t.Run("parallel segments keep input order", func(t *testing.T) {
		g, err := graph.NewRouteGraph(intersections(1, 2), []datastructure.Segment{
			{Origin: 1, Destination: 2, Distance: 50, Speed: 1, StreetName: "a"},
			{Origin: 1, Destination: 2, Distance: 20, Speed: 1, StreetName: "b"},
		})
		require.NoError(t, err)
		n := g.Neighbors(datastructure.NewState(1, nil), nil)
		require.Len(t, n, 2)
		assert.Equal(t, "a", n[0].Segment.StreetName)
		assert.Equal(t, "b", n[1].Segment.StreetName)
		assert.Equal(t, 20.0, g.Cost(1, 2, nil))
	})

	t.Run("data errors", func(t *testing.T) {
		cases := []struct {
			name string
			ins  []datastructure.Intersection
			segs []datastructure.Segment
		}{
			{"unknown origin", intersections(1, 2), []datastructure.Segment{{Origin: 9, Destination: 2, Distance: 1, Speed: 1}}},
			{"unknown destination", intersections(1, 2), []datastructure.Segment{{Origin: 1, Destination: 9, Distance: 1, Speed: 1}}},
			{"zero speed", intersections(1, 2), []datastructure.Segment{{Origin: 1, Destination: 2, Distance: 1, Speed: 0}}},
			{"negative distance", intersections(1, 2), []datastructure.Segment{{Origin: 1, Destination: 2, Distance: -1, Speed: 1}}},
			{"duplicate intersection", intersections(1, 1), nil},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := graph.NewRouteGraph(tc.ins, tc.segs)
				require.Error(t, err)
				assert.ErrorIs(t, err, graph.ErrDataError)
			})
		}
	})
}

func TestRouteGraphCost(t *testing.T) {
	g, err := graph.NewRouteGraph(intersections(1, 2, 3), []datastructure.Segment{
		{Origin: 1, Destination: 2, Distance: 100, Speed: 50},
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, g.Cost(1, 2, nil))
	assert.Equal(t, 2.0, g.Cost(1, 2, graph.TravelTime))
	assert.Equal(t, 100.0, g.Cost(1, 2, graph.Distance))
	assert.True(t, math.IsInf(g.Cost(2, 1, nil), 1))
	assert.True(t, math.IsInf(g.Cost(1, 3, nil), 1))
	assert.Empty(t, g.Neighbors(datastructure.NewState(3, nil), nil))

	s, ok := g.State(1)
	assert.True(t, ok)
	assert.Equal(t, int64(1), s.ID)
	_, ok = g.State(42)
	assert.False(t, ok)
}
