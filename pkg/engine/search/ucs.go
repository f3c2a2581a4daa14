package search

// UniformCost priority frontier on g(n). a state is re-inserted whenever a strictly
// cheaper g is found, stale entries are skipped on pop via the best-cost table.
type UniformCost struct{}

func NewUniformCost() *UniformCost {
	return &UniformCost{}
}

func (u *UniformCost) Name() string {
	return NameUCS
}

func (u *UniformCost) Search(p Problem) *Result {
	return bestFirst(u.Name(), p, func(n *Node) float64 { return n.PathCost })
}

// bestFirst shared loop of UCS and A*. rank decides the pop order.
func bestFirst(name string, p Problem, rank func(n *Node) float64) *Result {
	res := newResult(name)
	res.begin()

	root := newRootNode(p.Initial())
	frontier := newPriorityFrontier()
	frontier.push(root, rank(root))
	costSoFar := map[int64]float64{root.State.ID: 0}

	for frontier.len() > 0 {
		node, _ := frontier.pop()
		if node.PathCost > costSoFar[node.State.ID] {
			// stale, a cheaper copy was queued later
			continue
		}
		res.Expanded++

		if p.IsGoal(node.State) {
			return res.goalFound(node)
		}

		for _, succ := range p.Successors(node.State) {
			child := node.child(succ)
			best, seen := costSoFar[child.State.ID]
			if seen && child.PathCost >= best {
				continue
			}
			costSoFar[child.State.ID] = child.PathCost
			frontier.push(child, rank(child))
			res.Generated++
		}
	}

	return res.exhausted()
}
