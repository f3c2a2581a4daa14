package search

import (
	"lintang/routesearch/pkg/engine/heuristics"
)

// AStar priority frontier on g(n)+h(n) with lazy deletion.
// https://theory.stanford.edu/~amitp/GameProgramming/ImplementationNotes.html
type AStar struct {
	h heuristics.Heuristic
}

func NewAStar(h heuristics.Heuristic) *AStar {
	if h == nil {
		h = heuristics.Zero()
	}
	return &AStar{h: h}
}

func (a *AStar) Name() string {
	return NameAStar
}

func (a *AStar) Search(p Problem) *Result {
	return bestFirst(a.Name(), p, func(n *Node) float64 {
		return n.PathCost + a.h(n.State)
	})
}
