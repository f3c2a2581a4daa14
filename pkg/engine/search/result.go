package search

import (
	"time"
)

type Status int

const (
	Ready Status = iota
	Exploring
	GoalFound
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Exploring:
		return "exploring"
	case GoalFound:
		return "goal_found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result outcome and statistics of one search invocation. Path is empty when Status is Exhausted.
type Result struct {
	Strategy  string
	RunID     string
	Status    Status
	Path      Path
	Generated int
	Expanded  int
	Elapsed   time.Duration

	start time.Time
}

func newResult(strategy string) *Result {
	return &Result{Strategy: strategy, Status: Ready, Path: Path{}}
}

func (r *Result) begin() {
	r.Status = Exploring
	r.start = time.Now()
}

func (r *Result) goalFound(n *Node) *Result {
	r.Elapsed = time.Since(r.start)
	r.Status = GoalFound
	r.Path = n.Path()
	return r
}

func (r *Result) exhausted() *Result {
	r.Elapsed = time.Since(r.start)
	r.Status = Exhausted
	r.Path = Path{}
	return r
}

func (r *Result) Found() bool {
	return r.Status == GoalFound
}

// Length solution length in edges.
func (r *Result) Length() int {
	return r.Path.Len()
}

func (r *Result) Cost() float64 {
	return r.Path.Cost()
}
