package localsearch

import (
	"time"

	"golang.org/x/exp/rand"
)

// HillClimbing flip satu gen acak, repair, terima kalau strictly lebih baik.
type HillClimbing struct {
	maxIterations int
	rng           *rand.Rand
}

func NewHillClimbing(maxIterations int, seed uint64) *HillClimbing {
	return &HillClimbing{maxIterations: maxIterations, rng: newRand(seed)}
}

func (hc *HillClimbing) Name() string {
	return HillClimbingName
}

func (hc *HillClimbing) Solve(p *Problem) *Solution {
	start := time.Now()
	best, bestFitness := climb(p, p.RandomConfiguration(hc.rng), hc.maxIterations, hc.rng)
	return newSolution(hc.Name(), p, best, bestFitness, hc.maxIterations, start)
}

func climb(p *Problem, current Configuration, iterations int, rng *rand.Rand) (Configuration, float64) {
	currentFitness := p.fitness(current)
	for i := 0; i < iterations; i++ {
		neighbor := current.Clone()
		g := rng.Intn(len(neighbor))
		neighbor[g] = !neighbor[g]
		p.Fix(neighbor, rng)

		if f := p.fitness(neighbor); f < currentFitness {
			current, currentFitness = neighbor, f
		}
	}
	return current, currentFitness
}
