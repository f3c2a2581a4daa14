package search

// DepthFirst LIFO frontier. a state may sit in the stack several times but is expanded
// at most once. not cost optimal.
type DepthFirst struct{}

func NewDepthFirst() *DepthFirst {
	return &DepthFirst{}
}

func (d *DepthFirst) Name() string {
	return NameDFS
}

func (d *DepthFirst) Search(p Problem) *Result {
	res := newResult(d.Name())
	res.begin()

	frontier := &lifoStack{}
	frontier.push(newRootNode(p.Initial()))
	checked := make(map[int64]struct{})

	for frontier.len() > 0 {
		node := frontier.pop()
		if _, ok := checked[node.State.ID]; ok {
			continue
		}
		checked[node.State.ID] = struct{}{}
		res.Expanded++

		if p.IsGoal(node.State) {
			return res.goalFound(node)
		}

		// successors come in ascending id, the highest id ends on top of the stack
		for _, succ := range p.Successors(node.State) {
			if _, ok := checked[succ.State.ID]; ok {
				continue
			}
			frontier.push(node.child(succ))
			res.Generated++
		}
	}

	return res.exhausted()
}
