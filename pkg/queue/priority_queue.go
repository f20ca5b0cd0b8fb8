package queue

import (
	"container/heap"
)

// Item is an entry of the search priority queue.
// Distance holds the accumulated cost from the origin, Heuristic the estimated
// remaining cost to the destination (zero for an uninformed search). The queue
// orders items by Distance + Heuristic.
type Item struct {
	Station   string  // station identifier of this item
	Distance  float64 // accumulated cost from the origin
	Heuristic float64 // estimated remaining cost to the destination
	seq       int     // insertion sequence number, breaks priority ties
	index     int     // index of the item in the heap
}

func NewItem(station string, distance, heuristic float64) *Item {
	return &Item{Station: station, Distance: distance, Heuristic: heuristic, index: -1}
}

// Priority is the key the queue is ordered by.
func (item *Item) Priority() float64 {
	return item.Distance + item.Heuristic
}

// Queue is a min-heap of search items. Items with equal priority are popped in
// insertion order, so tie-breaking is deterministic across runs.
type Queue struct {
	heap itemHeap
	seq  int
}

func NewQueue() *Queue {
	q := &Queue{heap: make(itemHeap, 0)}
	heap.Init(&q.heap)
	return q
}

func (q *Queue) Len() int {
	return q.heap.Len()
}

func (q *Queue) Push(item *Item) {
	item.seq = q.seq
	q.seq++
	heap.Push(&q.heap, item)
}

func (q *Queue) Pop() *Item {
	return heap.Pop(&q.heap).(*Item)
}

// Update lowers the accumulated cost of an item already on the queue and
// restores the heap order. The insertion sequence number is kept, so the item
// keeps its original position among equal priorities.
func (q *Queue) Update(item *Item, distance float64) {
	item.Distance = distance
	heap.Fix(&q.heap, item.index)
}

// itemHeap implements heap.Interface
type itemHeap []*Item

func (h itemHeap) Len() int {
	return len(h)
}

func (h itemHeap) Less(i, j int) bool {
	if h[i].Priority() != h[j].Priority() {
		return h[i].Priority() < h[j].Priority()
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}

func (h *itemHeap) Push(item interface{}) {
	n := len(*h)
	pqItem := item.(*Item)
	pqItem.index = n
	*h = append(*h, pqItem)
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	pqItem := old[n-1]
	old[n-1] = nil
	pqItem.index = -1 // for safety
	*h = old[0 : n-1]
	return pqItem
}
