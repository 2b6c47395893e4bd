package flowfield

// BinaryHeap is a binary min-heap ordered by a caller supplied score. Lower
// scores are popped first; to build a max-heap, negate the score. Elements with
// equal scores come out in no particular order.
//
// The zero value is not usable; create heaps with [NewBinaryHeap].
type BinaryHeap[T comparable] struct {
	content []T
	score   func(T) float64
}

// NewBinaryHeap returns an empty heap ordered by score.
func NewBinaryHeap[T comparable](score func(T) float64) *BinaryHeap[T] {
	return &BinaryHeap[T]{score: score}
}

// Len returns the number of elements in the heap.
func (h *BinaryHeap[T]) Len() int {
	return len(h.content)
}

// Push adds v to the heap.
func (h *BinaryHeap[T]) Push(v T) {
	h.content = append(h.content, v)
	h.bubbleUp(len(h.content) - 1)
}

// Peek returns the element with the lowest score without removing it.
func (h *BinaryHeap[T]) Peek() (T, bool) {
	if len(h.content) == 0 {
		var zero T
		return zero, false
	}
	return h.content[0], true
}

// Pop removes and returns the element with the lowest score. It reports false
// if the heap is empty.
func (h *BinaryHeap[T]) Pop() (T, bool) {
	var zero T
	if len(h.content) == 0 {
		return zero, false
	}
	top := h.content[0]
	end := len(h.content) - 1
	last := h.content[end]
	h.content[end] = zero
	h.content = h.content[:end]
	if end > 0 {
		h.content[0] = last
		h.sinkDown(0)
	}
	return top, true
}

// Remove deletes the first element equal to v, found by linear search. It
// reports whether such an element existed.
func (h *BinaryHeap[T]) Remove(v T) bool {
	for i, c := range h.content {
		if c != v {
			continue
		}
		var zero T
		end := len(h.content) - 1
		last := h.content[end]
		h.content[end] = zero
		h.content = h.content[:end]
		if i != end {
			h.content[i] = last
			h.bubbleUp(i)
			h.sinkDown(i)
		}
		return true
	}
	return false
}

func (h *BinaryHeap[T]) bubbleUp(n int) {
	elem := h.content[n]
	score := h.score(elem)
	for n > 0 {
		parentN := (n+1)/2 - 1
		parent := h.content[parentN]
		if score >= h.score(parent) {
			break
		}
		h.content[parentN] = elem
		h.content[n] = parent
		n = parentN
	}
}

func (h *BinaryHeap[T]) sinkDown(n int) {
	length := len(h.content)
	elem := h.content[n]
	elemScore := h.score(elem)
	for {
		child2N := (n + 1) * 2
		child1N := child2N - 1
		swap := -1
		var child1Score float64
		if child1N < length {
			child1Score = h.score(h.content[child1N])
			if child1Score < elemScore {
				swap = child1N
			}
		}
		if child2N < length {
			child2Score := h.score(h.content[child2N])
			bound := elemScore
			if swap != -1 {
				bound = child1Score
			}
			if child2Score < bound {
				swap = child2N
			}
		}
		if swap == -1 {
			return
		}
		h.content[n] = h.content[swap]
		h.content[swap] = elem
		n = swap
	}
}
