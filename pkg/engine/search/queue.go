package search

// fifoQueue BFS frontier.
type fifoQueue struct {
	items []*Node
	head  int
}

func (q *fifoQueue) push(n *Node) {
	q.items = append(q.items, n)
}

func (q *fifoQueue) pop() *Node {
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	// compact once the consumed prefix dominates
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append([]*Node(nil), q.items[q.head:]...)
		q.head = 0
	}
	return n
}

func (q *fifoQueue) len() int {
	return len(q.items) - q.head
}

// lifoStack DFS frontier.
type lifoStack struct {
	items []*Node
}

func (s *lifoStack) push(n *Node) {
	s.items = append(s.items, n)
}

func (s *lifoStack) pop() *Node {
	last := len(s.items) - 1
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return n
}

func (s *lifoStack) len() int {
	return len(s.items)
}
