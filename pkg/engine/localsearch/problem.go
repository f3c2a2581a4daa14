package localsearch

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/geo"
	"lintang/routesearch/pkg/graph"

	"golang.org/x/exp/rand"
)

const (
	// AverageSpeedKmh speed used by the straight line travel time.
	AverageSpeedKmh = 50.0
	// UnreachableTime penalty (s) for a candidate that can not reach any active station.
	UnreachableTime = 18000.0
)

var ErrInvalidConfiguration = errors.New("invalid station configuration")

// Candidate possible station location and the population it serves.
type Candidate struct {
	ID         int64
	Population float64
}

// Configuration gen ke-i true kalau station dibuka di candidate ke-i.
type Configuration []bool

func (c Configuration) Clone() Configuration {
	cp := make(Configuration, len(c))
	copy(cp, c)
	return cp
}

func (c Configuration) Active() int {
	n := 0
	for _, g := range c {
		if g {
			n++
		}
	}
	return n
}

func (c Configuration) key() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, g := range c {
		if g {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (c Configuration) String() string {
	return c.key()
}

type options struct {
	network bool
	workers int
	costFn  graph.CostFunction
}

type Option func(*options)

// WithNetworkTravelTime travel time dari shortest path di road network (pakai worker pool), bukan garis lurus.
func WithNetworkTravelTime(workers int) Option {
	return func(o *options) {
		o.network = true
		o.workers = workers
	}
}

// Problem facility location: pilih tepat Stations candidate supaya
// rata-rata travel time (bobot populasi) ke station terdekat minimal.
type Problem struct {
	candidates []Candidate
	stations   int

	// travel[i][j] travel time (s) dari candidate i ke candidate j.
	travel     [][]float64
	population float64

	mu    sync.Mutex
	cache map[string]float64
	evals int
}

func NewProblem(g *graph.RouteGraph, candidates []Candidate, stations int, opts ...Option) (*Problem, error) {
	o := &options{costFn: graph.TravelTime}
	for _, opt := range opts {
		opt(o)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrInvalidConfiguration)
	}
	if stations <= 0 || stations > len(candidates) {
		return nil, fmt.Errorf("%w: number of stations %d must be in [1, %d]", ErrInvalidConfiguration, stations, len(candidates))
	}
	for _, c := range candidates {
		if _, ok := g.Intersection(c.ID); !ok {
			return nil, fmt.Errorf("%w: candidate %d is not an intersection", graph.ErrDataError, c.ID)
		}
	}

	var travel [][]float64
	if o.network {
		travel = networkTravelTimes(g, candidates, o.costFn, o.workers)
	} else {
		travel = straightLineTravelTimes(g, candidates)
	}

	population := 0.0
	for _, c := range candidates {
		population += c.Population
	}

	return &Problem{
		candidates: candidates,
		stations:   stations,
		travel:     travel,
		population: population,
		cache:      make(map[string]float64),
	}, nil
}

func straightLineTravelTimes(g *graph.RouteGraph, candidates []Candidate) [][]float64 {
	travel := make([][]float64, len(candidates))
	for i, from := range candidates {
		travel[i] = make([]float64, len(candidates))
		fromIn, _ := g.Intersection(from.ID)
		for j, to := range candidates {
			toIn, _ := g.Intersection(to.ID)
			travel[i][j] = straightLineTravelTime(fromIn, toIn)
		}
	}
	return travel
}

func straightLineTravelTime(from, to datastructure.Intersection) float64 {
	if from.ID == to.ID {
		return 0
	}
	if from.Coord == nil || to.Coord == nil {
		return math.Inf(1)
	}
	meters := geo.HaversineDegrees(from.Coord.Lat, from.Coord.Lon, to.Coord.Lat, to.Coord.Lon)
	return meters / AverageSpeedKmh * 3.6
}

func (p *Problem) NumCandidates() int {
	return len(p.candidates)
}

func (p *Problem) Stations() int {
	return p.stations
}

func (p *Problem) Candidates() []Candidate {
	return p.candidates
}

// Evaluations jumlah fitness yang benar2 dihitung (cache miss).
func (p *Problem) Evaluations() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evals
}

// TravelTime travel time (s) dari candidate index i ke j.
func (p *Problem) TravelTime(i, j int) float64 {
	return p.travel[i][j]
}

// Evaluate population weighted average travel time ke station aktif terdekat. lebih kecil lebih baik.
func (p *Problem) Evaluate(c Configuration) (float64, error) {
	if len(c) != len(p.candidates) {
		return 0, fmt.Errorf("%w: configuration has %d genes, want %d", ErrInvalidConfiguration, len(c), len(p.candidates))
	}
	if active := c.Active(); active != p.stations {
		return 0, fmt.Errorf("%w: %d active stations, want %d", ErrInvalidConfiguration, active, p.stations)
	}

	key := c.key()
	p.mu.Lock()
	if f, ok := p.cache[key]; ok {
		p.mu.Unlock()
		return f, nil
	}
	p.mu.Unlock()

	total := 0.0
	for i, cand := range p.candidates {
		best := math.Inf(1)
		for j, open := range c {
			if open && p.travel[i][j] < best {
				best = p.travel[i][j]
			}
		}
		if math.IsInf(best, 1) {
			best = UnreachableTime
		}
		total += cand.Population * best
	}
	fitness := 0.0
	if p.population > 0 {
		fitness = total / p.population
	}

	p.mu.Lock()
	p.cache[key] = fitness
	p.evals++
	p.mu.Unlock()
	return fitness, nil
}

// fitness configuration yang pasti valid (hasil random/fix).
func (p *Problem) fitness(c Configuration) float64 {
	f, err := p.Evaluate(c)
	if err != nil {
		panic(err)
	}
	return f
}

// RandomConfiguration buka Stations candidate secara acak.
func (p *Problem) RandomConfiguration(rng *rand.Rand) Configuration {
	c := make(Configuration, len(p.candidates))
	for _, i := range rng.Perm(len(p.candidates))[:p.stations] {
		c[i] = true
	}
	return c
}

// Fix repair configuration in place sampai jumlah station aktif tepat Stations:
// kelebihan ditutup acak, kekurangan dibuka acak.
func (p *Problem) Fix(c Configuration, rng *rand.Rand) Configuration {
	var on, off []int
	for i, g := range c {
		if g {
			on = append(on, i)
		} else {
			off = append(off, i)
		}
	}
	switch {
	case len(on) > p.stations:
		rng.Shuffle(len(on), func(i, j int) { on[i], on[j] = on[j], on[i] })
		for _, i := range on[:len(on)-p.stations] {
			c[i] = false
		}
	case len(on) < p.stations:
		rng.Shuffle(len(off), func(i, j int) { off[i], off[j] = off[j], off[i] })
		for _, i := range off[:p.stations-len(on)] {
			c[i] = true
		}
	}
	return c
}

// StationIDs intersection id dari station yang dibuka.
func (p *Problem) StationIDs(c Configuration) []int64 {
	ids := make([]int64, 0, p.stations)
	for i, g := range c {
		if g {
			ids = append(ids, p.candidates[i].ID)
		}
	}
	return ids
}
