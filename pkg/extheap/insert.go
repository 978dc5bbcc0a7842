package extheap

// Insert adds x to the heap.
func (h *Heap[T]) Insert(x T) error {
	k := h.n / h.b
	r := h.n % h.b

	if r == 0 {
		if err := h.writeBlockElems(k, []T{x}); err != nil {
			return err
		}

		h.n++

		return h.siftUp(k, []T{x})
	}

	full, err := h.readFullBlock(k)
	if err != nil {
		return err
	}

	top := full[0]

	live := make([]T, r, r+1)
	copy(live, full[:r])
	live = append(live, x)
	sortDescending(live, h.less)

	if err := h.writeBlockElems(k, live); err != nil {
		return err
	}

	h.n++

	if h.less(top, x) {
		return h.siftUp(k, live)
	}

	return nil
}

// InsertBlock adds all of batch (length <= B) to the heap. If the batch
// overflows the current underfilled block, it is split: the first part
// fills the block to capacity and the remainder recurses as a fresh batch.
func (h *Heap[T]) InsertBlock(batch []T) error {
	if len(batch) > h.b {
		return ErrBlockTooLarge
	}

	if len(batch) == 0 {
		return nil
	}

	k := h.n / h.b
	r := h.n % h.b

	if r == 0 {
		sorted := append([]T(nil), batch...)
		sortDescending(sorted, h.less)

		if err := h.writeBlockElems(k, sorted); err != nil {
			return err
		}

		h.n += len(batch)

		return h.siftUp(k, sorted)
	}

	if r+len(batch) <= h.b {
		full, err := h.readFullBlock(k)
		if err != nil {
			return err
		}

		merged := make([]T, r, r+len(batch))
		copy(merged, full[:r])
		merged = append(merged, batch...)
		sortDescending(merged, h.less)

		if err := h.writeBlockElems(k, merged); err != nil {
			return err
		}

		h.n += len(batch)

		return h.siftUp(k, merged)
	}

	// Split: fill block k to exactly B, then recurse with the remainder.
	fillCount := h.b - r

	full, err := h.readFullBlock(k)
	if err != nil {
		return err
	}

	filled := make([]T, r, h.b)
	copy(filled, full[:r])
	filled = append(filled, batch[:fillCount]...)
	sortDescending(filled, h.less)

	if err := h.writeBlockElems(k, filled); err != nil {
		return err
	}

	h.n += fillCount

	if err := h.siftUp(k, filled); err != nil {
		return err
	}

	return h.InsertBlock(batch[fillCount:])
}
