package extheap_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fadel-lamarca/extheap/pkg/extheap"
	"github.com/fadel-lamarca/extheap/pkg/extheap/model"
	"github.com/fadel-lamarca/extheap/pkg/fs"
)

// FuzzBehaviorModelVsReal drives a byte-encoded op sequence through both a
// real heap and the reference model, failing on any divergence in size,
// extracted values, or an unexpected error. Each pair of input bytes selects
// an operation and supplies its operand, so the corpus explores op order
// and value collisions without needing a structured encoding.
func FuzzBehaviorModelVsReal(f *testing.F) {
	f.Add([]byte{0x05, 0x81, 0x03, 0x86, 0x04, 0x40, 0x40})
	f.Add([]byte{0x40, 0x40, 0x40, 0x40, 0x40, 0x81, 0x81})

	f.Fuzz(func(t *testing.T, data []byte) {
		const b = 4

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

		for i := 0; i+1 < len(data); i += 2 {
			selector, operand := data[i], data[i+1]
			value := int64(operand)

			switch selector % 4 {
			case 0:
				require.NoError(t, h.Insert(value))
				m.Insert(value)

			case 1:
				batch := make([]int64, 1+int(operand)%b)
				for j := range batch {
					batch[j] = int64(operand) + int64(j)
				}

				require.NoError(t, h.InsertBlock(batch))
				m.InsertBlock(batch)

			case 2:
				wantX, wantOK := m.ExtractMax()

				got, err := h.ExtractMax()
				if !wantOK {
					require.ErrorIs(t, err, extheap.ErrEmpty)

					continue
				}

				require.NoError(t, err)
				require.Equal(t, wantX, got)

			case 3:
				wantBlock := m.ExtractMaxBlock(b)

				got, err := h.ExtractMaxBlock()
				if len(wantBlock) == 0 {
					require.ErrorIs(t, err, extheap.ErrEmpty)

					continue
				}

				require.NoError(t, err)
				require.Equal(t, wantBlock, got)
			}

			require.Equal(t, m.Size(), h.Size())
		}
	})
}
