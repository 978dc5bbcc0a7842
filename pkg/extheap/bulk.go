package extheap

import "github.com/fadel-lamarca/extheap/pkg/fs"

// OpenFromSlice builds a heap from an existing slice of elements in one
// pass instead of N individual Insert calls. It sorts a copy of elements
// descending and writes it out block-by-block through InsertBlock, so the
// result is byte-for-byte what repeated InsertBlock calls would have
// produced — there is no bespoke bulk-build algorithm here, just the
// existing insert/sift-up path driven in B-sized chunks.
func OpenFromSlice[T any](fsys fs.FS, opts Options[T], elements []T, less func(a, b T) bool) (*Heap[T], error) {
	h, err := Open(fsys, opts, less)
	if err != nil {
		return nil, err
	}

	sorted := append([]T(nil), elements...)
	sortDescending(sorted, less)

	for start := 0; start < len(sorted); start += h.b {
		end := start + h.b
		if end > len(sorted) {
			end = len(sorted)
		}

		if err := h.InsertBlock(sorted[start:end]); err != nil {
			_ = h.Close()

			return nil, err
		}
	}

	return h, nil
}
