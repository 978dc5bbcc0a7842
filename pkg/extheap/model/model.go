// Package model implements a deliberately simple, easy-to-audit reference
// max-heap used as the oracle in property and fuzz tests for [extheap.Heap]:
// a plain descending-sorted slice. Every operation is O(N) or worse; that's
// fine, since the model never has to handle more than a test's worth of
// elements and its only job is to be obviously correct.
package model

import "sort"

// Heap is a slice-backed reference max-heap over T.
type Heap[T any] struct {
	less func(a, b T) bool
	data []T
}

// New returns an empty reference heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// Size returns the number of elements held.
func (h *Heap[T]) Size() int {
	return len(h.data)
}

// Insert adds x, re-sorting to keep data descending.
func (h *Heap[T]) Insert(x T) {
	h.data = append(h.data, x)
	h.sort()
}

// InsertBlock adds every element of batch.
func (h *Heap[T]) InsertBlock(batch []T) {
	h.data = append(h.data, batch...)
	h.sort()
}

// ExtractMax removes and returns the largest element.
func (h *Heap[T]) ExtractMax() (T, bool) {
	var zero T

	if len(h.data) == 0 {
		return zero, false
	}

	top := h.data[0]
	h.data = h.data[1:]

	return top, true
}

// ExtractMaxBlock removes and returns the largest min(len(data), n)
// elements.
func (h *Heap[T]) ExtractMaxBlock(n int) []T {
	if n > len(h.data) {
		n = len(h.data)
	}

	out := append([]T(nil), h.data[:n]...)
	h.data = h.data[n:]

	return out
}

// PeekMax returns the largest element without removing it.
func (h *Heap[T]) PeekMax() (T, bool) {
	var zero T

	if len(h.data) == 0 {
		return zero, false
	}

	return h.data[0], true
}

func (h *Heap[T]) sort() {
	sort.Slice(h.data, func(i, j int) bool {
		return h.less(h.data[j], h.data[i])
	})
}
