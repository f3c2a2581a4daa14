package localsearch

import (
	"time"

	"golang.org/x/exp/rand"
)

const (
	DefaultILSIterations        = 100
	DefaultPerturbationStrength = 2
)

// IteratedLocalSearch hill climbing dari perturbasi solusi terbaik, diulang.
type IteratedLocalSearch struct {
	maxIterations   int
	climbIterations int
	strength        int
	rng             *rand.Rand
}

func NewIteratedLocalSearch(maxIterations, climbIterations, strength int, seed uint64) *IteratedLocalSearch {
	return &IteratedLocalSearch{
		maxIterations:   maxIterations,
		climbIterations: climbIterations,
		strength:        strength,
		rng:             newRand(seed),
	}
}

func (ils *IteratedLocalSearch) Name() string {
	return IteratedLocalSearchName
}

func (ils *IteratedLocalSearch) Solve(p *Problem) *Solution {
	start := time.Now()
	best, bestFitness := climb(p, p.RandomConfiguration(ils.rng), ils.climbIterations, ils.rng)
	for i := 1; i < ils.maxIterations; i++ {
		c, f := climb(p, ils.perturb(p, best), ils.climbIterations, ils.rng)
		if f < bestFitness {
			best, bestFitness = c, f
		}
	}
	return newSolution(ils.Name(), p, best, bestFitness, ils.maxIterations, start)
}

// perturb flip strength gen berbeda lalu repair.
func (ils *IteratedLocalSearch) perturb(p *Problem, c Configuration) Configuration {
	perturbed := c.Clone()
	strength := ils.strength
	if strength > len(perturbed) {
		strength = len(perturbed)
	}
	for _, g := range ils.rng.Perm(len(perturbed))[:strength] {
		perturbed[g] = !perturbed[g]
	}
	return p.Fix(perturbed, ils.rng)
}
