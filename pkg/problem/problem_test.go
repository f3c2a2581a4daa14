package problem_test

import (
	"math"
	"testing"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/graph"
	"lintang/routesearch/pkg/problem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleGraph(t *testing.T) *graph.RouteGraph {
	t.Helper()
	g, err := graph.NewRouteGraph([]datastructure.Intersection{
		datastructure.NewIntersection(1, datastructure.NewCoordinatePtr(38.0, -3.0)),
		datastructure.NewIntersection(2, nil),
		datastructure.NewIntersection(3, nil),
		datastructure.NewIntersection(4, nil),
	}, []datastructure.Segment{
		{Origin: 1, Destination: 2, Distance: 100, Speed: 50},
		{Origin: 2, Destination: 3, Distance: 200, Speed: 50},
		{Origin: 1, Destination: 3, Distance: 500, Speed: 50},
	})
	require.NoError(t, err)
	return g
}

func TestProblem(t *testing.T) {
	g := exampleGraph(t)

	t.Run("success build problem", func(t *testing.T) {
		p, err := problem.New(g, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.Initial().ID)
		require.NotNil(t, p.Initial().Coord)
		assert.Equal(t, problem.CostTime, p.CostName())

		// coordinates are not part of identity
		assert.True(t, p.IsGoal(datastructure.NewState(3, datastructure.NewCoordinatePtr(1, 1))))
		assert.False(t, p.IsGoal(datastructure.NewState(2, nil)))
	})

	t.Run("unknown ids are data errors", func(t *testing.T) {
		_, err := problem.New(g, 1, 99)
		assert.ErrorIs(t, err, graph.ErrDataError)
		_, err = problem.New(g, 99, 1)
		assert.ErrorIs(t, err, graph.ErrDataError)
	})

	t.Run("successors and step cost", func(t *testing.T) {
		p, err := problem.New(g, 1, 3)
		require.NoError(t, err)
		succ := p.Successors(p.Initial())
		require.Len(t, succ, 2)
		assert.Equal(t, int64(2), succ[0].State.ID)
		assert.Equal(t, 2.0, succ[0].Cost)
		assert.Equal(t, 10.0, succ[1].Cost)

		s1, s2 := datastructure.NewState(1, nil), datastructure.NewState(2, nil)
		assert.Equal(t, 2.0, p.StepCost(s1, datastructure.NewAction(1, 2), s2))
		assert.True(t, math.IsInf(p.StepCost(s2, datastructure.NewAction(2, 1), s1), 1))
		assert.True(t, math.IsInf(p.StepCost(s1, datastructure.NewAction(1, 3), s2), 1))
	})

	t.Run("action and cost", func(t *testing.T) {
		p, err := problem.New(g, 1, 3)
		require.NoError(t, err)
		a, c := p.ActionAndCost(datastructure.NewState(2, nil), datastructure.NewState(3, nil))
		assert.Equal(t, datastructure.NewAction(2, 3), a)
		assert.Equal(t, 4.0, c)

		a, c = p.ActionAndCost(datastructure.NewState(3, nil), datastructure.NewState(1, nil))
		assert.False(t, a.IsValid())
		assert.Equal(t, "", a.String())
		assert.True(t, math.IsInf(c, 1))
	})

	t.Run("distance cost", func(t *testing.T) {
		p, err := problem.New(g, 1, 3, problem.WithDistanceCost())
		require.NoError(t, err)
		assert.Equal(t, problem.CostDistance, p.CostName())
		assert.Equal(t, 100.0, p.Successors(p.Initial())[0].Cost)

		opt, err := problem.CostOption("distance")
		require.NoError(t, err)
		p, err = problem.New(g, 1, 3, opt)
		require.NoError(t, err)
		assert.Equal(t, 500.0, p.Successors(p.Initial())[1].Cost)

		_, err = problem.CostOption("fuel")
		assert.Error(t, err)
	})

	t.Run("retarget keeps graph", func(t *testing.T) {
		p, err := problem.New(g, 1, 3)
		require.NoError(t, err)
		p2, err := p.ForGoal(2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), p2.Goal().ID)
		assert.Equal(t, int64(3), p.Goal().ID)
		p3, err := p.ForInitial(2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), p3.Initial().ID)
		_, err = p.ForGoal(77)
		assert.ErrorIs(t, err, graph.ErrDataError)
	})
}
