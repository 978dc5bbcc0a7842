package blockstore

import "fmt"

// Instrumented wraps a [BlockIO] to count reads/writes and, optionally,
// inject a failure on a chosen (op, block index) pair.
//
// It exists purely for tests: property tests use the counts to check the
// heap's O(log(N/B)) I/O bound (spec.md §8 property 8), and fault-injection
// tests use the failure hook to check the "fatal, not retried, surfaced to
// caller" error semantics (spec.md §7) without needing a real broken disk.
type Instrumented struct {
	inner BlockIO

	Reads  int
	Writes int

	// FailRead/FailWrite, if set, name a block index that should fail on
	// its next read/write with the given error instead of reaching inner.
	FailRead     int
	FailReadErr  error
	FailWrite    int
	FailWriteErr error
	hasFailRead  bool
	hasFailWrite bool
}

// NewInstrumented wraps inner for counting. Call FailNextRead/FailNextWrite
// to arm a one-shot injected failure.
func NewInstrumented(inner BlockIO) *Instrumented {
	return &Instrumented{inner: inner}
}

// FailNextRead arms a one-shot failure: the next ReadBlock(i) call fails
// with err instead of reaching the wrapped store.
func (n *Instrumented) FailNextRead(i int, err error) {
	n.FailRead = i
	n.FailReadErr = err
	n.hasFailRead = true
}

// FailNextWrite arms a one-shot failure: the next WriteBlock(i, ...) call
// fails with err instead of reaching the wrapped store.
func (n *Instrumented) FailNextWrite(i int, err error) {
	n.FailWrite = i
	n.FailWriteErr = err
	n.hasFailWrite = true
}

func (n *Instrumented) BlockSize() int { return n.inner.BlockSize() }
func (n *Instrumented) Blocks() int    { return n.inner.Blocks() }

func (n *Instrumented) ReadBlock(i int) ([]byte, error) {
	n.Reads++

	if n.hasFailRead && n.FailRead == i {
		n.hasFailRead = false

		return nil, fmt.Errorf("%w (injected): block %d", n.FailReadErr, i)
	}

	return n.inner.ReadBlock(i)
}

func (n *Instrumented) WriteBlock(i int, buf []byte) error {
	n.Writes++

	if n.hasFailWrite && n.FailWrite == i {
		n.hasFailWrite = false

		return fmt.Errorf("%w (injected): block %d", n.FailWriteErr, i)
	}

	return n.inner.WriteBlock(i, buf)
}

func (n *Instrumented) Clear() error { return n.inner.Clear() }
func (n *Instrumented) Close() error { return n.inner.Close() }

// Reset zeroes the read/write counters without touching armed failures.
func (n *Instrumented) Reset() {
	n.Reads = 0
	n.Writes = 0
}

var _ BlockIO = (*Instrumented)(nil)
