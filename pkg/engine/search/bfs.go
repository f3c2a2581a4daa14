package search

// BreadthFirst FIFO frontier. a state is pushed at most once (visited or already queued
// states are skipped), which gives edge-count optimal paths.
type BreadthFirst struct{}

func NewBreadthFirst() *BreadthFirst {
	return &BreadthFirst{}
}

func (b *BreadthFirst) Name() string {
	return NameBFS
}

func (b *BreadthFirst) Search(p Problem) *Result {
	res := newResult(b.Name())
	res.begin()

	root := newRootNode(p.Initial())
	frontier := &fifoQueue{}
	frontier.push(root)

	visited := make(map[int64]struct{})
	queued := map[int64]struct{}{root.State.ID: {}}

	for frontier.len() > 0 {
		node := frontier.pop()
		res.Expanded++

		if p.IsGoal(node.State) {
			return res.goalFound(node)
		}
		visited[node.State.ID] = struct{}{}

		for _, succ := range p.Successors(node.State) {
			id := succ.State.ID
			if _, ok := visited[id]; ok {
				continue
			}
			if _, ok := queued[id]; ok {
				continue
			}
			queued[id] = struct{}{}
			frontier.push(node.child(succ))
			res.Generated++
		}
	}

	return res.exhausted()
}
