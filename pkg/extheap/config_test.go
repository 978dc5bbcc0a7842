package extheap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fadel-lamarca/extheap/pkg/extheap"
)

func TestLoadOptions_ParsesJSONC(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".heap.jsonc")

	content := `{
		// block capacity in elements
		"b": 256,
		"path": "priorities.dat",
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := extheap.LoadOptions(path)
	require.NoError(t, err)
	require.Equal(t, 256, cfg.B)
	require.Equal(t, "priorities.dat", cfg.Path)
	require.False(t, cfg.Recover)
}

func TestLoadOptions_RejectsMissingB(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".heap.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"path": "x.dat"}`), 0o644))

	_, err := extheap.LoadOptions(path)
	require.Error(t, err)
}

func TestLoadOptions_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := extheap.LoadOptions(filepath.Join(t.TempDir(), "nope.jsonc"))
	require.Error(t, err)
}
