package localsearch_test

import (
	"math"
	"testing"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/engine/localsearch"
	"lintang/routesearch/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// lineProblem n intersections di equator, jarak 0.01 derajat, populasi sama.
func lineProblem(t *testing.T, n, stations int) *localsearch.Problem {
	t.Helper()
	ins := make([]datastructure.Intersection, 0, n)
	cands := make([]localsearch.Candidate, 0, n)
	for i := 0; i < n; i++ {
		id := int64(i + 1)
		ins = append(ins, datastructure.NewIntersection(id, datastructure.NewCoordinatePtr(0, float64(i)*0.01)))
		cands = append(cands, localsearch.Candidate{ID: id, Population: 100})
	}
	g, err := graph.NewRouteGraph(ins, nil)
	require.NoError(t, err)
	p, err := localsearch.NewProblem(g, cands, stations)
	require.NoError(t, err)
	return p
}

// bruteForce fitness optimal dari semua kombinasi.
func bruteForce(t *testing.T, p *localsearch.Problem) float64 {
	t.Helper()
	n := p.NumCandidates()
	best := math.Inf(1)
	for mask := 0; mask < 1<<n; mask++ {
		c := make(localsearch.Configuration, n)
		for i := 0; i < n; i++ {
			c[i] = mask&(1<<i) != 0
		}
		if c.Active() != p.Stations() {
			continue
		}
		f, err := p.Evaluate(c)
		require.NoError(t, err)
		best = math.Min(best, f)
	}
	return best
}

func TestEvaluate(t *testing.T) {
	p := lineProblem(t, 3, 1)

	t.Run("middle station", func(t *testing.T) {
		f, err := p.Evaluate(localsearch.Configuration{false, true, false})
		require.NoError(t, err)
		step := p.TravelTime(0, 1)
		assert.InDelta(t, 2*step/3, f, 1e-9)
		assert.InDelta(t, 1111.95/50*3.6, step, 1.0)
	})

	t.Run("memoised", func(t *testing.T) {
		before := p.Evaluations()
		_, err := p.Evaluate(localsearch.Configuration{false, true, false})
		require.NoError(t, err)
		assert.Equal(t, before, p.Evaluations())
	})

	t.Run("wrong number of stations", func(t *testing.T) {
		_, err := p.Evaluate(localsearch.Configuration{true, true, false})
		assert.ErrorIs(t, err, localsearch.ErrInvalidConfiguration)
		_, err = p.Evaluate(localsearch.Configuration{true})
		assert.ErrorIs(t, err, localsearch.ErrInvalidConfiguration)
	})
}

func TestUnreachableFallback(t *testing.T) {
	g, err := graph.NewRouteGraph([]datastructure.Intersection{
		datastructure.NewIntersection(1, datastructure.NewCoordinatePtr(0, 0)),
		datastructure.NewIntersection(2, nil),
	}, nil)
	require.NoError(t, err)
	p, err := localsearch.NewProblem(g, []localsearch.Candidate{{ID: 1, Population: 1}, {ID: 2, Population: 3}}, 1)
	require.NoError(t, err)

	f, err := p.Evaluate(localsearch.Configuration{true, false})
	require.NoError(t, err)
	assert.InDelta(t, 3*localsearch.UnreachableTime/4, f, 1e-9)
}

func TestNewProblemErrors(t *testing.T) {
	g, err := graph.NewRouteGraph([]datastructure.Intersection{datastructure.NewIntersection(1, nil)}, nil)
	require.NoError(t, err)

	_, err = localsearch.NewProblem(g, nil, 1)
	assert.ErrorIs(t, err, localsearch.ErrInvalidConfiguration)
	_, err = localsearch.NewProblem(g, []localsearch.Candidate{{ID: 1}}, 2)
	assert.ErrorIs(t, err, localsearch.ErrInvalidConfiguration)
	_, err = localsearch.NewProblem(g, []localsearch.Candidate{{ID: 9}}, 1)
	assert.ErrorIs(t, err, graph.ErrDataError)
}

func TestFix(t *testing.T) {
	p := lineProblem(t, 6, 2)
	rng := rand.New(rand.NewSource(7))

	for _, c := range []localsearch.Configuration{
		{true, true, true, true, false, false},
		{false, false, false, false, false, false},
		{true, false, false, false, false, true},
	} {
		fixed := p.Fix(c.Clone(), rng)
		assert.Equal(t, 2, fixed.Active())
	}

	keep := localsearch.Configuration{true, false, false, false, false, true}
	assert.Equal(t, keep, p.Fix(keep.Clone(), rng))
	assert.Equal(t, 2, p.RandomConfiguration(rng).Active())
}

func TestNetworkTravelTime(t *testing.T) {
	g, err := graph.NewRouteGraph([]datastructure.Intersection{
		datastructure.NewIntersection(1, nil),
		datastructure.NewIntersection(2, nil),
		datastructure.NewIntersection(3, nil),
	}, []datastructure.Segment{
		{Origin: 1, Destination: 2, Distance: 100, Speed: 10},
		{Origin: 2, Destination: 3, Distance: 100, Speed: 10},
		{Origin: 1, Destination: 3, Distance: 300, Speed: 10},
	})
	require.NoError(t, err)

	p, err := localsearch.NewProblem(g, []localsearch.Candidate{{ID: 1, Population: 1}, {ID: 2, Population: 1}, {ID: 3, Population: 1}}, 1,
		localsearch.WithNetworkTravelTime(2))
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.TravelTime(0, 0))
	assert.Equal(t, 10.0, p.TravelTime(0, 1))
	assert.Equal(t, 20.0, p.TravelTime(0, 2))
	assert.True(t, math.IsInf(p.TravelTime(2, 0), 1))

	f, err := p.Evaluate(localsearch.Configuration{false, false, true})
	require.NoError(t, err)
	assert.InDelta(t, (20.0+10.0+0.0)/3, f, 1e-9)
}

func TestSolversReachOptimum(t *testing.T) {
	p := lineProblem(t, 6, 2)
	optimum := bruteForce(t, p)

	for _, name := range localsearch.SolverNames() {
		t.Run(name, func(t *testing.T) {
			solver, err := localsearch.NewSolver(name, 42)
			require.NoError(t, err)
			sol := solver.Solve(p)

			assert.Equal(t, name, sol.Algorithm)
			assert.Len(t, sol.Stations, 2)
			assert.Equal(t, 2, sol.Configuration.Active())
			f, err := p.Evaluate(sol.Configuration)
			require.NoError(t, err)
			assert.Equal(t, f, sol.Fitness)
			assert.GreaterOrEqual(t, sol.Fitness, optimum)

			if name != localsearch.HillClimbingName {
				assert.InDelta(t, optimum, sol.Fitness, 1e-9)
			}
		})
	}
}

func TestSolverDeterminism(t *testing.T) {
	for _, name := range localsearch.SolverNames() {
		a, err := localsearch.NewSolver(name, 3)
		require.NoError(t, err)
		b, err := localsearch.NewSolver(name, 3)
		require.NoError(t, err)

		sa := a.Solve(lineProblem(t, 8, 3))
		sb := b.Solve(lineProblem(t, 8, 3))
		assert.Equal(t, sa.Configuration, sb.Configuration, name)
		assert.Equal(t, sa.Fitness, sb.Fitness, name)
	}
}

func TestNewSolverUnknown(t *testing.T) {
	_, err := localsearch.NewSolver("tabu", 1)
	assert.ErrorIs(t, err, localsearch.ErrUnknownSolver)

	s, err := localsearch.NewSolver(" GA ", 1)
	require.NoError(t, err)
	assert.Equal(t, localsearch.GeneticAlgorithmName, s.Name())
}
