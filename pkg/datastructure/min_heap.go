package datastructure

import (
	"errors"
)

type Item interface {
	int32 | int64
}

type PriorityQueueNode[T Item] struct {
	Rank float64
	Item T
}

var ErrHeapEmpty = errors.New("heap is empty")

// MinHeap binary heap priorityqueue dengan posisi item, jadi DecreaseKey O(logN).
// setiap item maksimal satu kali ada di heap.
type MinHeap[T Item] struct {
	items []PriorityQueueNode[T]
	slot  map[T]int
}

func NewMinHeap[T Item]() *MinHeap[T] {
	return &MinHeap[T]{
		items: make([]PriorityQueueNode[T], 0),
		slot:  make(map[T]int),
	}
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

func (h *MinHeap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.slot[h.items[i].Item] = i
	h.slot[h.items[j].Item] = j
}

// heapifyUp swap dengan parent selama rank parent lebih besar. O(logN).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.items[index].Rank < h.items[h.parent(index)].Rank {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swap dengan child terkecil selama child lebih kecil. O(logN).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.items) && h.items[left].Rank < h.items[smallest].Rank {
			smallest = left
		}
		if right < len(h.items) && h.items[right].Rank < h.items[smallest].Rank {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) Size() int {
	return len(h.items)
}

func (h *MinHeap[T]) Contains(item T) bool {
	i, ok := h.slot[item]
	return ok && i >= 0
}

func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if len(h.items) == 0 {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	return h.items[0], nil
}

func (h *MinHeap[T]) Insert(key PriorityQueueNode[T]) {
	h.items = append(h.items, key)
	index := h.Size() - 1
	h.slot[key.Item] = index
	h.heapifyUp(index)
}

// ExtractMin pop item dengan rank terkecil. O(logN)
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if len(h.items) == 0 {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	root := h.items[0]
	last := h.Size() - 1
	h.swap(0, last)
	h.items = h.items[:last]
	h.slot[root.Item] = -1
	if len(h.items) > 0 {
		h.heapifyDown(0)
	}
	return root, nil
}

// DecreaseKey update rank item yang sudah ada di heap. rank baru harus <= rank lama.
func (h *MinHeap[T]) DecreaseKey(key PriorityQueueNode[T]) error {
	i, ok := h.slot[key.Item]
	if !ok || i < 0 || i >= h.Size() || key.Rank > h.items[i].Rank {
		return errors.New("invalid index or new value")
	}
	h.items[i] = key
	h.heapifyUp(i)
	return nil
}

// InsertOrDecrease insert item baru, atau turunkan rank kalau item sudah di heap dan rank lebih kecil.
func (h *MinHeap[T]) InsertOrDecrease(key PriorityQueueNode[T]) {
	if h.Contains(key.Item) {
		if key.Rank < h.items[h.slot[key.Item]].Rank {
			_ = h.DecreaseKey(key)
		}
		return
	}
	h.Insert(key)
}
