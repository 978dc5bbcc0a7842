package extheap

// ExtractMax removes and returns the global maximum.
func (h *Heap[T]) ExtractMax() (T, error) {
	var zero T

	if h.n == 0 {
		return zero, ErrEmpty
	}

	full, err := h.readFullBlock(0)
	if err != nil {
		return zero, err
	}

	if h.n <= h.b {
		live := full[:h.n]
		result := live[0]

		live[0] = live[h.n-1]
		rest := live[:h.n-1]
		sortDescending(rest, h.less)

		h.n--

		if err := h.writeBlockElems(0, rest); err != nil {
			return zero, err
		}

		return result, nil
	}

	result := full[0]

	k := h.blockCount()
	r := h.liveRemainder()

	last, err := h.readFullBlock(k - 1)
	if err != nil {
		return zero, err
	}

	var x T
	if r > 0 {
		x = last[r-1]
	} else {
		x = last[h.b-1]
	}

	full[0] = x
	sortDescending(full, h.less)

	h.n--

	if err := h.siftDown(0, full); err != nil {
		return zero, err
	}

	return result, nil
}

// ExtractMaxBlock removes and returns the live prefix of block 0 (length
// min(N, B)) as it was before the call.
func (h *Heap[T]) ExtractMaxBlock() ([]T, error) {
	if h.n == 0 {
		return nil, ErrEmpty
	}

	full, err := h.readFullBlock(0)
	if err != nil {
		return nil, err
	}

	if h.n <= h.b {
		result := append([]T(nil), full[:h.n]...)
		h.n = 0

		return result, nil
	}

	result := append([]T(nil), full...)

	k := h.blockCount()
	r := h.liveRemainder()

	last, err := h.readFullBlock(k - 1)
	if err != nil {
		return nil, err
	}

	liveLen := h.b
	if r > 0 {
		liveLen = r
	}

	replacement := make([]T, liveLen, h.b)
	copy(replacement, last[:liveLen])

	if r > 0 && h.n > 2*h.b {
		pre, err := h.readFullBlock(k - 2)
		if err != nil {
			return nil, err
		}

		replacement = append(replacement, pre[r:h.b]...)
		sortDescending(replacement, h.less)
	}

	// A full B-element block leaves the heap entirely (the returned
	// result); N drops by exactly B regardless of how the replacement
	// buffer was assembled.
	h.n -= h.b

	if err := h.siftDown(0, replacement); err != nil {
		return nil, err
	}

	return result, nil
}
