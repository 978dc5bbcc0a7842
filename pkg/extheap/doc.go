// Package extheap implements an external-memory max-heap: a priority queue
// whose backing store is a single file on disk, for working sets that don't
// fit in memory. Unlike a classical binary heap, the node granularity is a
// *block* of up to B elements rather than a single element; every operation
// is accounted in block-I/O units. This is the I/O-efficient heap of
// Fadel/LaMarca: moving B elements at a time lowers the per-operation cost
// from Θ(log N) to Θ((1/B)·log(N/B)) block transfers.
//
// # Usage
//
//	opts := extheap.Options[int64]{B: 256, Path: "priorities.dat", Codec: extheap.Int64Codec{}}
//	h, err := extheap.Open(fs.NewReal(), opts, func(a, b int64) bool { return a < b })
//	if err != nil {
//	    // handle ErrIoOpen
//	}
//	defer h.Close()
//
//	h.Insert(42)
//	top, err := h.ExtractMax() // the largest element inserted so far
//
// The heap is single-threaded: it holds one open file handle for its
// lifetime and has no internal locking. Concurrent use requires external
// mutual exclusion.
package extheap
