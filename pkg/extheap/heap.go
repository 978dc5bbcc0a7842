package extheap

import (
	"fmt"

	"github.com/fadel-lamarca/extheap/pkg/blockstore"
	"github.com/fadel-lamarca/extheap/pkg/fs"
)

// Options configures a [Heap]. B and Path are required; Codec defaults to
// none and must be supplied explicitly (there is no reflection-based
// fallback — a wrong guess at element width would silently corrupt offsets).
type Options[T any] struct {
	// Path is the backing file. Open always starts it fresh (truncates any
	// existing content); the heap has no cross-restart recovery.
	Path string

	// B is the block capacity in elements. Every block on disk holds
	// exactly B elements (the last may be logically underfilled).
	B int

	// Codec encodes/decodes T to a fixed-width record.
	Codec Codec[T]

	// Recover is reserved for a future recovery scheme that would
	// reconstruct N and K from an existing file instead of starting empty
	// (see the design notes on recovery). It currently behaves identically
	// to always-clear: Open ignores it and clears the file regardless.
	Recover bool
}

// Heap is an external-memory max-heap of T, backed by a [blockstore.Store].
// It holds N (the live element count) in memory; every on-disk block
// position derives from N, never the reverse. Heap is not safe for
// concurrent use.
type Heap[T any] struct {
	store blockstore.BlockIO
	codec Codec[T]
	less  func(a, b T) bool
	b     int
	n     int
}

// Open creates a fresh heap at opts.Path (any existing file is truncated;
// see Options.Recover). less must implement a strict weak order: less(a, b)
// reports whether a should sort before (be considered smaller than) b.
func Open[T any](fsys fs.FS, opts Options[T], less func(a, b T) bool) (*Heap[T], error) {
	if opts.B <= 0 {
		panic("extheap: Options.B must be > 0")
	}

	if opts.Codec == nil {
		panic("extheap: Options.Codec must not be nil")
	}

	blockSize := opts.B * opts.Codec.Size()

	store, err := blockstore.Open(fsys, opts.Path, blockSize, true)
	if err != nil {
		return nil, err
	}

	return &Heap[T]{
		store: store,
		codec: opts.Codec,
		less:  less,
		b:     opts.B,
	}, nil
}

// NewWithStore builds a heap directly on top of an already-open
// [blockstore.BlockIO], bypassing Open's file-creation step. It exists for
// tests that need to substitute [blockstore.Instrumented] to count or
// fault-inject block I/O; production callers should use Open.
func NewWithStore[T any](store blockstore.BlockIO, codec Codec[T], b int, less func(a, b T) bool) *Heap[T] {
	if b <= 0 {
		panic("extheap: b must be > 0")
	}

	if codec == nil {
		panic("extheap: codec must not be nil")
	}

	return &Heap[T]{
		store: store,
		codec: codec,
		less:  less,
		b:     b,
	}
}

// Close releases the backing file handle.
func (h *Heap[T]) Close() error {
	return h.store.Close()
}

// Size returns N, the number of elements currently held.
func (h *Heap[T]) Size() int {
	return h.n
}

// Empty reports whether Size() == 0.
func (h *Heap[T]) Empty() bool {
	return h.n == 0
}

// blockCount returns K = ceil(N/B).
func (h *Heap[T]) blockCount() int {
	if h.n == 0 {
		return 0
	}

	return (h.n + h.b - 1) / h.b
}

// liveRemainder returns R = N mod B.
func (h *Heap[T]) liveRemainder() int {
	return h.n % h.b
}

// PeekMax returns the global maximum without mutating the heap.
func (h *Heap[T]) PeekMax() (T, error) {
	var zero T

	if h.n == 0 {
		return zero, ErrEmpty
	}

	full, err := h.readFullBlock(0)
	if err != nil {
		return zero, err
	}

	return full[0], nil
}

// PeekMaxBlock returns a copy of the live prefix of block 0 (length
// min(N, B)) without mutating the heap.
func (h *Heap[T]) PeekMaxBlock() ([]T, error) {
	if h.n == 0 {
		return nil, ErrEmpty
	}

	full, err := h.readFullBlock(0)
	if err != nil {
		return nil, err
	}

	live := h.n
	if live > h.b {
		live = h.b
	}

	out := make([]T, live)
	copy(out, full[:live])

	return out, nil
}

// decodeBlock decodes a raw B-element buffer. A nil buf (block never
// written) decodes as B zero-value elements.
func (h *Heap[T]) decodeBlock(buf []byte) []T {
	elemSize := h.codec.Size()
	out := make([]T, h.b)

	for i := 0; i < h.b; i++ {
		if buf == nil {
			continue
		}

		out[i] = h.codec.Get(buf[i*elemSize : (i+1)*elemSize])
	}

	return out
}

// encodeElems encodes elems (length <= B) into exactly len(elems)*Size()
// bytes; the store zero-pads the remainder of the block.
func (h *Heap[T]) encodeElems(elems []T) []byte {
	elemSize := h.codec.Size()
	out := make([]byte, len(elems)*elemSize)

	for i, v := range elems {
		h.codec.Put(out[i*elemSize:(i+1)*elemSize], v)
	}

	return out
}

// readFullBlock reads block i and decodes all B positions, whether or not
// they are live. Callers reading the last block slice the live prefix
// themselves.
func (h *Heap[T]) readFullBlock(i int) ([]T, error) {
	buf, err := h.store.ReadBlock(i)
	if err != nil {
		return nil, fmt.Errorf("extheap: read block %d: %w", i, err)
	}

	return h.decodeBlock(buf), nil
}

// readLiveBlock reads block i and truncates to its live length: R if i is
// the last block and R > 0, else B.
func (h *Heap[T]) readLiveBlock(i int) ([]T, error) {
	full, err := h.readFullBlock(i)
	if err != nil {
		return nil, err
	}

	k := h.blockCount()
	r := h.liveRemainder()

	if i == k-1 && r > 0 {
		return full[:r], nil
	}

	return full, nil
}

// writeBlockElems writes elems (length <= B) as block i.
func (h *Heap[T]) writeBlockElems(i int, elems []T) error {
	if err := h.store.WriteBlock(i, h.encodeElems(elems)); err != nil {
		return fmt.Errorf("extheap: write block %d: %w", i, err)
	}

	return nil
}
