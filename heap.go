package cdcl

import "container/heap"

// orderHeap is a binary max-heap over variables, ordered by the solver's
// VSIDS-style activity scores. It implements container/heap.Interface, the
// same way cespare/saturday's litHeap does, but keyed on variable activity
// rather than watch-list length, and indexed by a dense per-variable
// position slice rather than a map since variables are small dense
// integers.
type orderHeap struct {
	activity *[]float64
	vars     []Var
	pos      []int32 // pos[v] is v's index in vars, or -1 if not in the heap
}

func newOrderHeap(activity *[]float64) orderHeap {
	return orderHeap{activity: activity}
}

func (h *orderHeap) Len() int { return len(h.vars) }

func (h *orderHeap) Less(i, j int) bool {
	act := *h.activity
	return act[h.vars[i]] > act[h.vars[j]]
}

func (h *orderHeap) Swap(i, j int) {
	h.vars[i], h.vars[j] = h.vars[j], h.vars[i]
	h.pos[h.vars[i]] = int32(i)
	h.pos[h.vars[j]] = int32(j)
}

func (h *orderHeap) Push(x interface{}) {
	v := x.(Var)
	h.pos[v] = int32(len(h.vars))
	h.vars = append(h.vars, v)
}

func (h *orderHeap) Pop() interface{} {
	n := len(h.vars)
	v := h.vars[n-1]
	h.vars = h.vars[:n-1]
	h.pos[v] = -1
	return v
}

// growTo extends the position table so variable indices up to n-1 are
// addressable; newly grown slots start absent from the heap.
func (h *orderHeap) growTo(n int) {
	for len(h.pos) < n {
		h.pos = append(h.pos, -1)
	}
}

func (h *orderHeap) inHeap(v Var) bool {
	return int(v) < len(h.pos) && h.pos[v] >= 0
}

// push inserts v if it isn't already present; a no-op otherwise, since the
// driver reinserts variables it can't yet know are already queued (e.g.
// after a backjump that frees several variables at once).
func (h *orderHeap) push(v Var) {
	if h.inHeap(v) {
		return
	}
	heap.Push(h, v)
}

// pop removes and returns the highest-activity variable, or false if the
// heap is empty. The caller is responsible for discarding stale entries
// (variables the heap doesn't yet know have been assigned).
func (h *orderHeap) pop() (Var, bool) {
	if len(h.vars) == 0 {
		return 0, false
	}
	return heap.Pop(h).(Var), true
}

// update re-establishes heap order for v after its activity changed.
func (h *orderHeap) update(v Var) {
	if h.inHeap(v) {
		heap.Fix(h, int(h.pos[v]))
	}
}
