package extheap_test

import (
	"math/bits"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fadel-lamarca/extheap/pkg/blockstore"
	"github.com/fadel-lamarca/extheap/pkg/extheap"
	"github.com/fadel-lamarca/extheap/pkg/extheap/model"
	"github.com/fadel-lamarca/extheap/pkg/fs"
)

// opKind enumerates the operations the model/real comparison drives.
type opKind int

const (
	opInsert opKind = iota
	opInsertBlock
	opExtractMax
	opExtractMaxBlock
)

type op struct {
	kind  opKind
	value int64
	batch []int64
}

// runAgainstModel drives ops through both a real heap and the reference
// model and asserts they agree after every step. This is the harness
// behind the sort-law check (spec property 5) in
// TestProperty_ElementByElementVsModel: the only oracle is the reference
// model, which is simple enough to trust by inspection.
func runAgainstModel(t *testing.T, b int, ops []op) {
	t.Helper()

	dir := t.TempDir()
	opts := extheap.Options[int64]{
		Path:  filepath.Join(dir, "h.dat"),
		B:     b,
		Codec: extheap.Int64Codec{},
	}

	h, err := extheap.Open(fs.NewReal(), opts, lessInt64)
	require.NoError(t, err)
	defer h.Close()

	m := model.New[int64](lessInt64)

	for i, o := range ops {
		switch o.kind {
		case opInsert:
			require.NoError(t, h.Insert(o.value), "op %d", i)
			m.Insert(o.value)

		case opInsertBlock:
			batch := o.batch
			if len(batch) > b {
				batch = batch[:b]
			}

			require.NoError(t, h.InsertBlock(batch), "op %d", i)
			m.InsertBlock(batch)

		case opExtractMax:
			wantX, wantOK := m.ExtractMax()

			if !wantOK {
				_, err := h.ExtractMax()
				require.ErrorIs(t, err, extheap.ErrEmpty, "op %d", i)

				continue
			}

			got, err := h.ExtractMax()
			require.NoError(t, err, "op %d", i)
			require.Equal(t, wantX, got, "op %d", i)

		case opExtractMaxBlock:
			wantBlock := m.ExtractMaxBlock(b)

			if len(wantBlock) == 0 {
				_, err := h.ExtractMaxBlock()
				require.ErrorIs(t, err, extheap.ErrEmpty, "op %d", i)

				continue
			}

			got, err := h.ExtractMaxBlock()
			require.NoError(t, err, "op %d", i)

			if diff := cmp.Diff(wantBlock, got); diff != "" {
				t.Fatalf("op %d: extract_max_block mismatch (-want +got):\n%s", i, diff)
			}
		}

		require.Equal(t, m.Size(), h.Size(), "op %d: size diverged", i)
	}
}

func TestProperty_ElementByElementVsModel(t *testing.T) {
	t.Parallel()

	values := pseudoRandomInt64s(500, 10)

	ops := make([]op, 0, len(values)+len(values)/7)
	for i, x := range values {
		ops = append(ops, op{kind: opInsert, value: x})

		if i%7 == 6 {
			ops = append(ops, op{kind: opExtractMax})
		}
	}

	for len(ops) < 2*len(values) {
		ops = append(ops, op{kind: opExtractMax})
	}

	runAgainstModel(t, 8, ops)
}

// TestProperty_BatchElementEquivalence inserts the same multiset once
// element-at-a-time and once as batches, and checks the extraction
// sequences are identical (spec property 6).
func TestProperty_BatchElementEquivalence(t *testing.T) {
	t.Parallel()

	values := pseudoRandomInt64s(200, 11)

	extractAll := func(t *testing.T, b int, insert func(h *extheap.Heap[int64])) []int64 {
		t.Helper()

		dir := t.TempDir()
		opts := extheap.Options[int64]{
			Path:  filepath.Join(dir, "h.dat"),
			B:     b,
			Codec: extheap.Int64Codec{},
		}

		h, err := extheap.Open(fs.NewReal(), opts, lessInt64)
		require.NoError(t, err)
		defer h.Close()

		insert(h)

		var out []int64
		for h.Size() > 0 {
			x, err := h.ExtractMax()
			require.NoError(t, err)
			out = append(out, x)
		}

		return out
	}

	b := 6

	byElement := extractAll(t, b, func(h *extheap.Heap[int64]) {
		for _, x := range values {
			require.NoError(t, h.Insert(x))
		}
	})

	byBatch := extractAll(t, b, func(h *extheap.Heap[int64]) {
		for start := 0; start < len(values); start += b - 1 {
			end := start + (b - 1)
			if end > len(values) {
				end = len(values)
			}

			require.NoError(t, h.InsertBlock(values[start:end]))
		}
	})

	require.Equal(t, byElement, byBatch)
}

// TestProperty_IOBound checks extract/insert each touch O(log(N/B)) blocks,
// using the instrumented store to count reads and writes directly (spec
// property 8).
func TestProperty_IOBound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := 4

	inner, err := blockstore.Open(fs.NewReal(), filepath.Join(dir, "h.dat"), b*8, true)
	require.NoError(t, err)
	defer inner.Close()

	inst := blockstore.NewInstrumented(inner)

	h := extheap.NewWithStore(inst, extheap.Int64Codec{}, b, lessInt64)

	n := 2000
	values := pseudoRandomInt64s(n, 12)

	for _, x := range values {
		inst.Reset()
		require.NoError(t, h.Insert(x))

		bound := ioBound(h.Size(), b)
		require.LessOrEqualf(t, inst.Reads, bound, "insert at size %d read %d blocks, bound %d", h.Size(), inst.Reads, bound)
		require.LessOrEqualf(t, inst.Writes, bound, "insert at size %d wrote %d blocks, bound %d", h.Size(), inst.Writes, bound)
	}

	for h.Size() > 0 {
		size := h.Size()
		inst.Reset()

		_, err := h.ExtractMax()
		require.NoError(t, err)

		bound := ioBound(size, b)
		require.LessOrEqualf(t, inst.Reads, bound, "extract at size %d read %d blocks, bound %d", size, inst.Reads, bound)
		require.LessOrEqualf(t, inst.Writes, bound, "extract at size %d wrote %d blocks, bound %d", size, inst.Writes, bound)
	}
}

// ioBound is a generous O(log(N/B)) bound with constant slack: the spec
// gives "<= 2*ceil(log2 K)" for sift-down and a comparable figure for
// sift-up, plus O(1) extra reads for extract_max_block's pre-last-block
// borrow. A small constant factor keeps this test from being a brittle
// restatement of the implementation.
func ioBound(n, b int) int {
	k := (n + b - 1) / b
	if k < 1 {
		k = 1
	}

	return 4*bits.Len(uint(k)) + 8
}
