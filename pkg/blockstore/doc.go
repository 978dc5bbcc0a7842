// Package blockstore implements a random-access, fixed-size-block file.
//
// It is the trivial storage layer the external heap is built on: a single
// flat file addressed as an array of B-element blocks, indexed [0, K). It
// knows nothing about heap invariants, element ordering, or which suffix of
// the last block is live — that bookkeeping belongs to the caller.
//
// # Basic usage
//
//	s, err := blockstore.Open(fs.NewReal(), "/tmp/heap.dat", blockSize, true)
//	if err != nil {
//	    // handle ErrIoOpen
//	}
//	defer s.Close()
//
//	buf, err := s.ReadBlock(0)  // nil, nil if block 0 doesn't exist yet
//	err = s.WriteBlock(0, buf)  // extends the file if needed
//
// # Error handling
//
// [ErrIoOpen], [ErrIoRead], and [ErrIoWrite] are fatal to the in-flight
// operation and are never retried internally; the store has no notion of
// transactions or rollback, matching the external heap's own failure
// semantics.
package blockstore
