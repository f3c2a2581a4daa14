package search

import (
	"math"
	"testing"

	"lintang/routesearch/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func TestPriorityFrontierTieBreak(t *testing.T) {
	f := newPriorityFrontier()
	for _, id := range []int64{5, 3, 9, 1} {
		f.push(newRootNode(datastructure.NewState(id, nil)), 1.0)
	}
	f.push(newRootNode(datastructure.NewState(100, nil)), 0.5)
	f.push(newRootNode(datastructure.NewState(200, nil)), math.Inf(1))
	f.push(newRootNode(datastructure.NewState(300, nil)), math.Inf(1))

	got := []int64{}
	for f.len() > 0 {
		n, _ := f.pop()
		got = append(got, n.State.ID)
	}
	assert.Equal(t, []int64{100, 5, 3, 9, 1, 200, 300}, got)
}

func TestFifoAndLifo(t *testing.T) {
	q := &fifoQueue{}
	s := &lifoStack{}
	for i := int64(0); i < 2000; i++ {
		n := newRootNode(datastructure.NewState(i, nil))
		q.push(n)
		s.push(n)
	}
	for i := int64(0); i < 2000; i++ {
		assert.Equal(t, i, q.pop().State.ID)
		assert.Equal(t, 1999-i, s.pop().State.ID)
	}
	assert.Equal(t, 0, q.len())
	assert.Equal(t, 0, s.len())
}

func TestNodePath(t *testing.T) {
	root := newRootNode(datastructure.NewState(1, nil))
	a := root.child(datastructure.Successor{Action: datastructure.NewAction(1, 2), State: datastructure.NewState(2, nil), Cost: 2})
	b := a.child(datastructure.Successor{Action: datastructure.NewAction(2, 3), State: datastructure.NewState(3, nil), Cost: 4})

	p := b.Path()
	assert.Equal(t, []int64{1, 2, 3}, p.IDs())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 6.0, p.Cost())
	assert.Equal(t, 2, b.Depth)

	steps := p.Steps()
	assert.Len(t, steps, 2)
	assert.Equal(t, "2 → 3", steps[1].Action.String())
	assert.Equal(t, 4.0, steps[1].Cost)

	var nilNode *Node
	assert.Equal(t, 0, nilNode.Path().Len())
	assert.Empty(t, Path{}.Steps())
}
