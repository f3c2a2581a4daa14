package problem

import (
	"fmt"
	"math"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/graph"
)

// RoutingProblem binds a shared RouteGraph to an initial/goal pair. read-only during search.
type RoutingProblem struct {
	g        *graph.RouteGraph
	initial  datastructure.State
	goal     datastructure.State
	costFn   graph.CostFunction
	costName string
}

type Option func(*RoutingProblem)

// WithDistanceCost step cost = segment distance instead of travel time.
func WithDistanceCost() Option {
	return func(p *RoutingProblem) {
		p.costFn = graph.Distance
		p.costName = CostDistance
	}
}

// WithCostFunction custom step cost.
func WithCostFunction(name string, fn graph.CostFunction) Option {
	return func(p *RoutingProblem) {
		p.costFn = fn
		p.costName = name
	}
}

const (
	CostTime     = "time"
	CostDistance = "distance"
)

// CostOption resolve nama cost function dari cli/rest.
func CostOption(name string) (Option, error) {
	switch name {
	case "", CostTime:
		return WithCostFunction(CostTime, graph.TravelTime), nil
	case CostDistance:
		return WithDistanceCost(), nil
	default:
		return nil, fmt.Errorf("unknown cost function %q", name)
	}
}

func New(g *graph.RouteGraph, initialID, goalID int64, opts ...Option) (*RoutingProblem, error) {
	initial, ok := g.State(initialID)
	if !ok {
		return nil, fmt.Errorf("%w: initial intersection %d not found", graph.ErrDataError, initialID)
	}
	goal, ok := g.State(goalID)
	if !ok {
		return nil, fmt.Errorf("%w: goal intersection %d not found", graph.ErrDataError, goalID)
	}
	p := &RoutingProblem{
		g:        g,
		initial:  initial,
		goal:     goal,
		costFn:   graph.TravelTime,
		costName: CostTime,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *RoutingProblem) Initial() datastructure.State {
	return p.initial
}

func (p *RoutingProblem) Goal() datastructure.State {
	return p.goal
}

func (p *RoutingProblem) Graph() *graph.RouteGraph {
	return p.g
}

func (p *RoutingProblem) CostName() string {
	return p.costName
}

// IsGoal identifier equality only.
func (p *RoutingProblem) IsGoal(s datastructure.State) bool {
	return s.Equal(p.goal)
}

func (p *RoutingProblem) Successors(s datastructure.State) []datastructure.Successor {
	return p.g.Neighbors(s, p.costFn)
}

// StepCost cost of the direct transition s1 -> s2, +Inf if they are not adjacent.
func (p *RoutingProblem) StepCost(s1 datastructure.State, action datastructure.Action, s2 datastructure.State) float64 {
	if action.IsValid() && (action.Origin != s1.ID || action.Destination != s2.ID) {
		return math.Inf(1)
	}
	return p.g.Cost(s1.ID, s2.ID, p.costFn)
}

// ActionAndCost action + cost for s1 -> s2. NoAction and +Inf when unreachable in one step.
func (p *RoutingProblem) ActionAndCost(s1, s2 datastructure.State) (datastructure.Action, float64) {
	c := p.g.Cost(s1.ID, s2.ID, p.costFn)
	if math.IsInf(c, 1) {
		return datastructure.NoAction, c
	}
	return datastructure.NewAction(s1.ID, s2.ID), c
}

// ForGoal copy of the problem with another goal, same graph and cost function.
func (p *RoutingProblem) ForGoal(goalID int64) (*RoutingProblem, error) {
	goal, ok := p.g.State(goalID)
	if !ok {
		return nil, fmt.Errorf("%w: goal intersection %d not found", graph.ErrDataError, goalID)
	}
	cp := *p
	cp.goal = goal
	return &cp, nil
}

// ForInitial copy of the problem with another initial state.
func (p *RoutingProblem) ForInitial(initialID int64) (*RoutingProblem, error) {
	initial, ok := p.g.State(initialID)
	if !ok {
		return nil, fmt.Errorf("%w: initial intersection %d not found", graph.ErrDataError, initialID)
	}
	cp := *p
	cp.initial = initial
	return &cp, nil
}
