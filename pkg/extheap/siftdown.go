package extheap

// siftDown restores invariant (I) below block j after buf (length B, or the
// live length of j if j is the last block) has replaced j's prior contents.
// It walks down the tree, remerging j's current buffer with whichever
// child(ren) violate the parent-dominates rule, until it reaches a block
// with no violating child or a leaf.
//
// The two-children, both-violate case additionally has to decide which
// child to continue descending into: the global minimum of the two
// children combined stays in the leftover written back to the child it
// came from, so that child keeps its old minimum and needs no further
// recursion; the descent continues into the other child. See the
// "swap-children" note below for the one case where the natural recursion
// target would land an underfilled block in a non-rightmost position.
func (h *Heap[T]) siftDown(j int, buf []T) error {
	for {
		k := h.blockCount()
		l, r := 2*j+1, 2*j+2

		switch {
		case l >= k:
			return h.writeBlockElems(j, buf)

		case r >= k:
			s, err := h.readLiveBlock(l)
			if err != nil {
				return err
			}

			if !h.less(buf[len(buf)-1], s[0]) {
				return h.writeBlockElems(j, buf)
			}

			newBuf, newS := remerge(buf, s, h.b, h.less)

			if err := h.writeBlockElems(j, newBuf); err != nil {
				return err
			}

			return h.writeBlockElems(l, newS)

		default:
			sl, err := h.readFullBlock(l)
			if err != nil {
				return err
			}

			sr, err := h.readLiveBlock(r)
			if err != nil {
				return err
			}

			m := buf[len(buf)-1]
			leftViolates := h.less(m, sl[0])
			rightViolates := h.less(m, sr[0])

			switch {
			case !leftViolates && !rightViolates:
				return h.writeBlockElems(j, buf)

			case !leftViolates && rightViolates:
				newBuf, newSR := remerge(buf, sr, h.b, h.less)

				if err := h.writeBlockElems(j, newBuf); err != nil {
					return err
				}

				j, buf = r, newSR

				continue

			case leftViolates && !rightViolates:
				newBuf, newSL := remerge(buf, sl, h.b, h.less)

				if err := h.writeBlockElems(j, newBuf); err != nil {
					return err
				}

				j, buf = l, newSL

				continue

			default:
				minL := sl[h.b-1]
				minR := sr[len(sr)-1]

				if h.less(minR, minL) {
					// Global minimum lives in the right child: make the
					// left child dominant over it first, then over B_j,
					// and descend left with what's left over.
					dominantL, leftoverR := remerge(sl, sr, h.b, h.less)
					newBuf, leftoverL := remerge(buf, dominantL, h.b, h.less)

					if err := h.writeBlockElems(j, newBuf); err != nil {
						return err
					}

					if err := h.writeBlockElems(r, leftoverR); err != nil {
						return err
					}

					j, buf = l, leftoverL

					continue
				}

				// Minimum lives in the left child (or the two tie):
				// symmetric, but the leftover from the first remerge
				// originated in the *left* slot. If it's no longer
				// full-sized, placing it back at l would put an
				// underfilled block at a non-rightmost position, so swap
				// it with the block destined for r instead and stop —
				// sound because l and r are leaves here (no grandchildren
				// whose invariant could be broken by the swap).
				dominantR, leftoverL := remerge(sr, sl, h.b, h.less)
				newBuf, leftoverR := remerge(buf, dominantR, h.b, h.less)

				if err := h.writeBlockElems(j, newBuf); err != nil {
					return err
				}

				if len(leftoverL) == h.b {
					if err := h.writeBlockElems(l, leftoverL); err != nil {
						return err
					}

					j, buf = r, leftoverR

					continue
				}

				if err := h.writeBlockElems(l, leftoverR); err != nil {
					return err
				}

				return h.writeBlockElems(r, leftoverL)
			}
		}
	}
}
