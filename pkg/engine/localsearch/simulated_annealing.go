package localsearch

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
)

const (
	DefaultTemperature = 10000.0
	DefaultCoolingRate = 0.001
)

type SimulatedAnnealing struct {
	temperature float64
	coolingRate float64
	rng         *rand.Rand
}

func NewSimulatedAnnealing(temperature, coolingRate float64, seed uint64) *SimulatedAnnealing {
	if temperature <= 1 {
		temperature = DefaultTemperature
	}
	if coolingRate <= 0 || coolingRate >= 1 {
		coolingRate = DefaultCoolingRate
	}
	return &SimulatedAnnealing{
		temperature: temperature,
		coolingRate: coolingRate,
		rng:         newRand(seed),
	}
}

func (sa *SimulatedAnnealing) Name() string {
	return SimulatedAnnealingName
}

func acceptanceProbability(energy float64, newEnergy float64, temperature float64) float64 {
	if newEnergy < energy {
		return 1.0
	}

	return math.Exp((energy - newEnergy) / temperature)
}

func (sa *SimulatedAnnealing) Solve(p *Problem) *Solution {
	start := time.Now()
	temp := sa.temperature

	current := p.RandomConfiguration(sa.rng)
	currentEnergy := p.fitness(current)
	best, bestEnergy := current, currentEnergy

	iterations := 0
	for temp > 1 {
		neighbour := sa.neighbour(current)
		neighbourEnergy := p.fitness(neighbour)

		if acceptanceProbability(currentEnergy, neighbourEnergy, temp) > sa.rng.Float64() {
			current, currentEnergy = neighbour, neighbourEnergy
		}

		if currentEnergy < bestEnergy {
			best, bestEnergy = current, currentEnergy
		}

		temp *= 1 - sa.coolingRate
		iterations++
	}

	return newSolution(sa.Name(), p, best, bestEnergy, iterations, start)
}

// neighbour pindahkan satu station ke candidate yang belum dibuka.
func (sa *SimulatedAnnealing) neighbour(c Configuration) Configuration {
	next := c.Clone()
	var on, off []int
	for i, g := range next {
		if g {
			on = append(on, i)
		} else {
			off = append(off, i)
		}
	}
	if len(on) == 0 || len(off) == 0 {
		return next
	}
	next[on[sa.rng.Intn(len(on))]] = false
	next[off[sa.rng.Intn(len(off))]] = true
	return next
}
