package localsearch

import (
	"sort"
	"time"

	"golang.org/x/exp/rand"
)

type GAParams struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	CrossoverRate  float64
	TournamentSize int
}

func DefaultGAParams() GAParams {
	return GAParams{
		PopulationSize: 200,
		Generations:    50,
		MutationRate:   0.2,
		CrossoverRate:  0.8,
		TournamentSize: 3,
	}
}

type individual struct {
	genes   Configuration
	fitness float64
}

// GeneticAlgorithm tournament selection, one point crossover + repair, swap mutation, elitist replacement.
type GeneticAlgorithm struct {
	params GAParams
	rng    *rand.Rand
}

func NewGeneticAlgorithm(params GAParams, seed uint64) *GeneticAlgorithm {
	if params.PopulationSize < 2 {
		params.PopulationSize = 2
	}
	if params.TournamentSize < 2 {
		params.TournamentSize = 2
	}
	return &GeneticAlgorithm{params: params, rng: newRand(seed)}
}

func (ga *GeneticAlgorithm) Name() string {
	return GeneticAlgorithmName
}

func (ga *GeneticAlgorithm) Solve(p *Problem) *Solution {
	start := time.Now()
	population := make([]individual, ga.params.PopulationSize)
	for i := range population {
		c := p.RandomConfiguration(ga.rng)
		population[i] = individual{genes: c, fitness: p.fitness(c)}
	}
	sortPopulation(population)
	best := population[0]

	for gen := 0; gen < ga.params.Generations; gen++ {
		offspring := make([]individual, 0, ga.params.PopulationSize)
		for len(offspring) < ga.params.PopulationSize {
			a, b := ga.selectParents(population)
			c1, c2 := ga.crossover(p, a.genes, b.genes)
			ga.mutate(c1)
			ga.mutate(c2)
			offspring = append(offspring,
				individual{genes: c1, fitness: p.fitness(c1)},
				individual{genes: c2, fitness: p.fitness(c2)})
		}

		merged := append(population, offspring...)
		sortPopulation(merged)
		population = merged[:ga.params.PopulationSize]

		if population[0].fitness < best.fitness {
			best = population[0]
		}
	}
	return newSolution(ga.Name(), p, best.genes, best.fitness, ga.params.Generations, start)
}

func sortPopulation(pop []individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		return pop[i].fitness < pop[j].fitness
	})
}

// selectParents tournament: ambil TournamentSize individu acak, dua terbaik jadi parent.
func (ga *GeneticAlgorithm) selectParents(pop []individual) (individual, individual) {
	size := ga.params.TournamentSize
	if size > len(pop) {
		size = len(pop)
	}
	tournament := make([]individual, 0, size)
	for _, i := range ga.rng.Perm(len(pop))[:size] {
		tournament = append(tournament, pop[i])
	}
	sortPopulation(tournament)
	return tournament[0], tournament[1]
}

// crossover one point crossover, anak direpair supaya jumlah station tetap. parent tidak diubah.
func (ga *GeneticAlgorithm) crossover(p *Problem, a, b Configuration) (Configuration, Configuration) {
	c1, c2 := a.Clone(), b.Clone()
	if len(a) < 2 || ga.rng.Float64() >= ga.params.CrossoverRate {
		return c1, c2
	}
	point := ga.rng.Intn(len(a)-1) + 1
	copy(c1[point:], b[point:])
	copy(c2[point:], a[point:])
	return p.Fix(c1, ga.rng), p.Fix(c2, ga.rng)
}

// mutate tukar dua gen, jumlah station aktif tidak berubah.
func (ga *GeneticAlgorithm) mutate(c Configuration) {
	if len(c) < 2 || ga.rng.Float64() >= ga.params.MutationRate {
		return
	}
	i, j := ga.rng.Intn(len(c)), ga.rng.Intn(len(c))
	c[i], c[j] = c[j], c[i]
}
