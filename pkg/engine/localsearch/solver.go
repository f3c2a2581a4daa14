package localsearch

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

const (
	RandomSearchName        = "rs"
	HillClimbingName        = "hc"
	IteratedLocalSearchName = "ils"
	GeneticAlgorithmName    = "ga"
	SimulatedAnnealingName  = "sa"
)

var ErrUnknownSolver = fmt.Errorf("unknown local search algorithm")

// Solution best configuration found by a solver.
type Solution struct {
	Algorithm     string        `json:"algorithm"`
	Configuration Configuration `json:"-"`
	Stations      []int64       `json:"stations"`
	Fitness       float64       `json:"fitness"`
	Iterations    int           `json:"iterations"`
	Elapsed       time.Duration `json:"elapsed"`
}

type Solver interface {
	Name() string
	Solve(p *Problem) *Solution
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func newSolution(name string, p *Problem, best Configuration, fitness float64, iterations int, start time.Time) *Solution {
	return &Solution{
		Algorithm:     name,
		Configuration: best,
		Stations:      p.StationIDs(best),
		Fitness:       fitness,
		Iterations:    iterations,
		Elapsed:       time.Since(start),
	}
}

func SolverNames() []string {
	return []string{RandomSearchName, HillClimbingName, IteratedLocalSearchName, GeneticAlgorithmName, SimulatedAnnealingName}
}

// NewSolver solver dengan parameter default.
func NewSolver(name string, seed uint64) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RandomSearchName, "random":
		return NewRandomSearch(DefaultIterations, seed), nil
	case HillClimbingName, "hill_climbing":
		return NewHillClimbing(DefaultIterations, seed), nil
	case IteratedLocalSearchName, "iterated_local_search":
		return NewIteratedLocalSearch(DefaultILSIterations, DefaultIterations, DefaultPerturbationStrength, seed), nil
	case GeneticAlgorithmName, "genetic":
		return NewGeneticAlgorithm(DefaultGAParams(), seed), nil
	case SimulatedAnnealingName, "annealing":
		return NewSimulatedAnnealing(DefaultTemperature, DefaultCoolingRate, seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}
