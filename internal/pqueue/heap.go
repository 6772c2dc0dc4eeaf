// Package pqueue implements the intrusive binary min-heap the A*/
// weighted-best-first driver uses as its frontier. Unlike container/heap
// (which the teacher wraps with its own index bookkeeping in
// priority_queue.go), every element here owns its current slot number,
// so a caller that has already mutated an element's priority can ask
// for an O(log n) decrease-key sift without a separate lookup.
package pqueue

// Item is anything that can sit in the heap. HeapIndex/SetHeapIndex let
// the heap record (and the caller later look up) an element's current
// slot. NotInHeap is the sentinel a popped or never-inserted element
// carries.
type Item interface {
	Priority() int32
	HeapIndex() int32
	SetHeapIndex(i int32)
}

// NotInHeap is the heap-index sentinel for an element that is not
// currently a member of any heap.
const NotInHeap int32 = -1

// Heap is a 1-based binary min-heap: the root lives at slot 1, the
// children of slot i live at 2i and 2i+1, and slot 0 is reserved and
// never populated. This mirrors the source convention so that
// parent = i/2 without an off-by-one.
type Heap struct {
	data []Item // data[0] is a reserved, always-nil slot
}

// New creates an empty heap, reserving room for capacity elements.
func New(capacity int) *Heap {
	data := make([]Item, 1, capacity+1)
	return &Heap{data: data}
}

// Len returns the number of elements currently in the heap.
func (h *Heap) Len() int { return len(h.data) - 1 }

// Reset empties the heap without releasing its backing array.
func (h *Heap) Reset() {
	h.data = h.data[:1]
}

// Insert appends item at the new last slot and sifts it up.
func (h *Heap) Insert(item Item) {
	h.data = append(h.data, item)
	i := int32(len(h.data) - 1)
	item.SetHeapIndex(i)
	h.siftUp(i)
}

// PopMin removes and returns the minimum-priority element. Its
// HeapIndex is set to NotInHeap before it is returned.
func (h *Heap) PopMin() (Item, bool) {
	n := len(h.data) - 1
	if n == 0 {
		return nil, false
	}
	root := h.data[1]
	last := h.data[n]
	h.data[1] = last
	h.data = h.data[:n]
	root.SetHeapIndex(NotInHeap)
	if n > 1 {
		last.SetHeapIndex(1)
		h.siftDown(1)
	}
	return root, true
}

// SiftUp re-establishes the heap property upward from i, for use after
// an in-place decrease-key on the element at slot i.
func (h *Heap) SiftUp(i int32) { h.siftUp(i) }

func (h *Heap) siftUp(i int32) {
	for i > 1 {
		parent := i / 2
		if h.data[parent].Priority() <= h.data[i].Priority() {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *Heap) siftDown(i int32) {
	n := int32(len(h.data) - 1)
	for {
		left, right := 2*i, 2*i+1
		smallest := i
		if left <= n && h.data[left].Priority() < h.data[smallest].Priority() {
			smallest = left
		}
		if right <= n && h.data[right].Priority() < h.data[smallest].Priority() {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap) swap(i, j int32) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.data[i].SetHeapIndex(i)
	h.data[j].SetHeapIndex(j)
}
