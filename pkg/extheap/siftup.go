package extheap

// siftUp restores invariant (I) after a write to block start grew or
// replaced its maximum. buf is the already-on-disk content of block start
// (the caller has written it before calling siftUp); buf's length is B,
// or the live length of start if start is the last block.
//
// Ascends toward the root one level at a time, remerging a block with its
// parent whenever the parent's minimum is smaller than the child's new
// maximum. Only the blocks actually touched are rewritten: if no violation
// is found, siftUp returns without any further I/O, since buf already
// matches what's on disk.
func (h *Heap[T]) siftUp(start int, buf []T) error {
	j := start
	c := buf

	for j > 0 {
		p := (j - 1) / 2

		parent, err := h.readFullBlock(p)
		if err != nil {
			return err
		}

		if !h.less(parent[h.b-1], c[0]) {
			break
		}

		newParent, newChild := remerge(parent, c, h.b, h.less)

		if err := h.writeBlockElems(j, newChild); err != nil {
			return err
		}

		j = p
		c = newParent
	}

	if j == start {
		return nil
	}

	return h.writeBlockElems(j, c)
}
