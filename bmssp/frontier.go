package bmssp

import "container/heap"

// frontier is the bounded min-priority structure driving the recursive
// loop. It is a pairHeap plus a "batch prepend" buffer: nodes discovered
// at distances below the current pop's bound are staged in pending and
// inserted only after the pop's relaxation pass completes, so they cannot
// be picked ahead of nodes already known to be closer.
type frontier struct {
	heap    pairHeap
	pending []pairItem
}

// newFrontier returns an empty frontier with capacity for the seed set.
func newFrontier(capacity int) *frontier {
	f := &frontier{heap: make(pairHeap, 0, capacity)}
	heap.Init(&f.heap)

	return f
}

// push inserts one entry immediately.
func (f *frontier) push(key float64, node int) {
	heap.Push(&f.heap, pairItem{key: key, node: node})
}

// prepend stages one entry for insertion at the next flush.
func (f *frontier) prepend(key float64, node int) {
	f.pending = append(f.pending, pairItem{key: key, node: node})
}

// flush moves every staged entry into the heap. Called once per pop, after
// the relaxation pass.
func (f *frontier) flush() {
	for _, it := range f.pending {
		heap.Push(&f.heap, it)
	}
	f.pending = f.pending[:0]
}

// peekMin returns the minimum heaped entry without removing it. ok is
// false when the heap is empty (staged entries are not considered).
func (f *frontier) peekMin() (pairItem, bool) {
	if f.heap.Len() == 0 {
		return pairItem{}, false
	}

	return f.heap[0], true
}

// popMin removes and returns the minimum entry. ok is false when the
// frontier is empty.
func (f *frontier) popMin() (pairItem, bool) {
	if f.heap.Len() == 0 {
		return pairItem{}, false
	}

	return heap.Pop(&f.heap).(pairItem), true
}

// empty reports whether no entries remain, staged or heaped.
func (f *frontier) empty() bool {
	return f.heap.Len() == 0 && len(f.pending) == 0
}
