package search

import "container/heap"

type priorityQueueNode struct {
	rank  float64
	seq   uint64
	index int
	node  *Node
}

// priorityQueue min-heap on rank. equal ranks pop in insertion order (seq).
type priorityQueue []*priorityQueueNode

func (pq priorityQueue) Len() int {
	return len(pq)
}

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].rank == pq[j].rank {
		return pq[i].seq < pq[j].seq
	}
	return pq[i].rank < pq[j].rank
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	n := len(*pq)
	no := x.(*priorityQueueNode)
	no.index = n
	*pq = append(*pq, no)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	no := old[n-1]
	old[n-1] = nil
	no.index = -1
	*pq = old[0 : n-1]
	return no
}

// priorityFrontier wraps priorityQueue with a monotonic insertion counter.
type priorityFrontier struct {
	pq  priorityQueue
	seq uint64
}

func newPriorityFrontier() *priorityFrontier {
	f := &priorityFrontier{pq: priorityQueue{}}
	heap.Init(&f.pq)
	return f
}

func (f *priorityFrontier) push(n *Node, rank float64) {
	heap.Push(&f.pq, &priorityQueueNode{rank: rank, seq: f.seq, node: n})
	f.seq++
}

func (f *priorityFrontier) pop() (*Node, float64) {
	item := heap.Pop(&f.pq).(*priorityQueueNode)
	return item.node, item.rank
}

func (f *priorityFrontier) len() int {
	return f.pq.Len()
}
