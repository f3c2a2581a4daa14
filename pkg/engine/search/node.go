package search

import (
	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/util"
)

// Node search tree node. Parent is a back reference used only for path reconstruction,
// a node is never mutated after creation.
type Node struct {
	State    datastructure.State
	Parent   *Node
	Action   datastructure.Action
	StepCost float64
	PathCost float64
	Depth    int
}

func newRootNode(s datastructure.State) *Node {
	return &Node{State: s, Action: datastructure.NoAction}
}

func (n *Node) child(succ datastructure.Successor) *Node {
	return &Node{
		State:    succ.State,
		Parent:   n,
		Action:   succ.Action,
		StepCost: succ.Cost,
		PathCost: n.PathCost + succ.Cost,
		Depth:    n.Depth + 1,
	}
}

// Path nodes from root to n.
func (n *Node) Path() Path {
	if n == nil {
		return Path{}
	}
	path := make(Path, 0, n.Depth+1)
	for curr := n; curr != nil; curr = curr.Parent {
		path = append(path, curr)
	}
	util.ReverseG(path)
	return path
}

// Path ordered root..goal, immutable after construction.
type Path []*Node

// Step one edge of a path.
type Step struct {
	From   datastructure.State
	To     datastructure.State
	Action datastructure.Action
	Cost   float64
}

// Len number of edges.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Cost cumulative cost of the last node.
func (p Path) Cost() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].PathCost
}

func (p Path) States() []datastructure.State {
	states := make([]datastructure.State, 0, len(p))
	for _, n := range p {
		states = append(states, n.State)
	}
	return states
}

func (p Path) IDs() []int64 {
	ids := make([]int64, 0, len(p))
	for _, n := range p {
		ids = append(ids, n.State.ID)
	}
	return ids
}

func (p Path) Steps() []Step {
	if len(p) < 2 {
		return []Step{}
	}
	steps := make([]Step, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		steps = append(steps, Step{
			From:   p[i-1].State,
			To:     p[i].State,
			Action: p[i].Action,
			Cost:   p[i].StepCost,
		})
	}
	return steps
}
