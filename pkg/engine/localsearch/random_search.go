package localsearch

import (
	"time"

	"golang.org/x/exp/rand"
)

const DefaultIterations = 1000

// RandomSearch sample configuration acak, simpan yang terbaik.
type RandomSearch struct {
	maxIterations int
	rng           *rand.Rand
}

func NewRandomSearch(maxIterations int, seed uint64) *RandomSearch {
	return &RandomSearch{maxIterations: maxIterations, rng: newRand(seed)}
}

func (rs *RandomSearch) Name() string {
	return RandomSearchName
}

func (rs *RandomSearch) Solve(p *Problem) *Solution {
	start := time.Now()
	best := p.RandomConfiguration(rs.rng)
	bestFitness := p.fitness(best)
	for i := 1; i < rs.maxIterations; i++ {
		c := p.RandomConfiguration(rs.rng)
		if f := p.fitness(c); f < bestFitness {
			best, bestFitness = c, f
		}
	}
	return newSolution(rs.Name(), p, best, bestFitness, rs.maxIterations, start)
}
