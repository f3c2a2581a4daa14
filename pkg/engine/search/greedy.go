package search

import (
	"lintang/routesearch/pkg/engine/heuristics"
)

// GreedyBestFirst priority frontier on h(n) only. states are marked when generated and
// never reopened, g(n) is carried for reporting.
type GreedyBestFirst struct {
	h heuristics.Heuristic
}

func NewGreedyBestFirst(h heuristics.Heuristic) *GreedyBestFirst {
	if h == nil {
		h = heuristics.Zero()
	}
	return &GreedyBestFirst{h: h}
}

func (g *GreedyBestFirst) Name() string {
	return NameGreedy
}

func (g *GreedyBestFirst) Search(p Problem) *Result {
	res := newResult(g.Name())
	res.begin()

	root := newRootNode(p.Initial())
	frontier := newPriorityFrontier()
	frontier.push(root, g.h(root.State))
	checked := map[int64]struct{}{root.State.ID: {}}

	for frontier.len() > 0 {
		node, _ := frontier.pop()
		res.Expanded++

		if p.IsGoal(node.State) {
			return res.goalFound(node)
		}

		for _, succ := range p.Successors(node.State) {
			if _, ok := checked[succ.State.ID]; ok {
				continue
			}
			checked[succ.State.ID] = struct{}{}
			child := node.child(succ)
			frontier.push(child, g.h(child.State))
			res.Generated++
		}
	}

	return res.exhausted()
}
