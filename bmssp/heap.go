package bmssp

// pairItem is a (priority key, node index) entry shared by the base-case
// solver and the recursive driver's frontier.
type pairItem struct {
	key  float64 // perturbed distance at push time
	node int     // dense node index
}

// pairHeap is a min-heap of pairItem ordered by key ascending. It follows
// the "lazy decrease-key" pattern: improved nodes are pushed again and
// stale entries are skipped on pop by comparing key against the current
// distance estimate.
type pairHeap []pairItem

// Len returns the number of items in the heap.
func (h pairHeap) Len() int { return len(h) }

// Less defines the comparison: smaller key → higher priority. Keys are
// perturbed distances and therefore never equal across distinct paths.
func (h pairHeap) Less(i, j int) bool { return h[i].key < h[j].key }

// Swap swaps two elements in the heap.
func (h pairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap; x must be a pairItem.
func (h *pairHeap) Push(x interface{}) { *h = append(*h, x.(pairItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum
// there first).
func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
