package extheap

import "errors"

// Sentinel errors returned by the heap.
//
// Recovery: ErrEmpty and ErrBlockTooLarge are logic errors — the caller
// passed a bad argument or called an operation the current state doesn't
// support. They are not retriable by waiting; fix the call site. I/O
// failures from the backing store (blockstore.ErrIoOpen/ErrIoRead/
// ErrIoWrite) propagate from the store, wrapped with %w by block reads and
// writes so [errors.Is] still matches them, and are fatal to the in-flight
// operation; the heap does not retry or roll back.
var (
	// ErrEmpty is returned by PeekMax, PeekMaxBlock, ExtractMax, and
	// ExtractMaxBlock when the heap holds no elements.
	ErrEmpty = errors.New("extheap: heap is empty")

	// ErrBlockTooLarge is returned by InsertBlock when the batch exceeds
	// the heap's block capacity B.
	ErrBlockTooLarge = errors.New("extheap: batch exceeds block capacity")
)
