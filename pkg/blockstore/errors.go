package blockstore

import "errors"

// Sentinel errors returned by the block store.
//
// Callers should use [errors.Is] to classify them. ErrIoOpen, ErrIoRead and
// ErrIoWrite are I/O errors per the heap's error taxonomy: fatal to whatever
// operation was in flight, never retried internally, and not rolled back.
var (
	// ErrIoOpen indicates the backing file could not be created or opened.
	ErrIoOpen = errors.New("blockstore: open failed")

	// ErrIoRead indicates a block read against the backing file failed.
	ErrIoRead = errors.New("blockstore: read failed")

	// ErrIoWrite indicates a block write against the backing file failed.
	ErrIoWrite = errors.New("blockstore: write failed")

	// ErrBlockTooLarge indicates a write buffer exceeded the configured
	// block size.
	ErrBlockTooLarge = errors.New("blockstore: block larger than configured block size")

	// ErrClosed indicates the store was already closed.
	ErrClosed = errors.New("blockstore: closed")
)
