package search

import (
	"fmt"
	"strings"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/engine/heuristics"
)

// Problem what a strategy needs from a routing problem. implementations must not be
// mutated while a search runs.
type Problem interface {
	Initial() datastructure.State
	Goal() datastructure.State
	IsGoal(s datastructure.State) bool
	Successors(s datastructure.State) []datastructure.Successor
}

// Strategy a frontier management algorithm. every call of Search owns its frontier and
// visited tables, so one Strategy value may be used by several goroutines as long as its
// heuristic is pure.
type Strategy interface {
	Name() string
	Search(p Problem) *Result
}

const (
	NameBFS    = "bfs"
	NameDFS    = "dfs"
	NameUCS    = "ucs"
	NameAStar  = "astar"
	NameGreedy = "gbfs"
)

// Names of every strategy New knows about, in the order they are usually reported.
func Names() []string {
	return []string{NameBFS, NameDFS, NameUCS, NameAStar, NameGreedy}
}

// IsInformed strategies that take a heuristic.
func IsInformed(name string) bool {
	n := normalize(name)
	return n == NameAStar || n == NameGreedy
}

func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "a*", "a_star", "a-star":
		return NameAStar
	case "greedy", "best-first", "greedy_best_first":
		return NameGreedy
	case "breadth_first", "breadth-first":
		return NameBFS
	case "depth_first", "depth-first":
		return NameDFS
	case "uniform_cost", "uniform-cost", "dijkstra":
		return NameUCS
	}
	return n
}

// New strategy by name. h is only used by the informed strategies, nil means the zero heuristic.
func New(name string, h heuristics.Heuristic) (Strategy, error) {
	if h == nil {
		h = heuristics.Zero()
	}
	switch normalize(name) {
	case NameBFS:
		return NewBreadthFirst(), nil
	case NameDFS:
		return NewDepthFirst(), nil
	case NameUCS:
		return NewUniformCost(), nil
	case NameAStar:
		return NewAStar(h), nil
	case NameGreedy:
		return NewGreedyBestFirst(h), nil
	default:
		return nil, fmt.Errorf("unknown search strategy %q", name)
	}
}
