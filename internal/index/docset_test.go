package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocSetAddWritesAndRegisters(t *testing.T) {
	dir := t.TempDir()
	docs := NewDocSet(dir)

	path, err := docs.Add("numerical", "Numerical Index\n")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "numerical.rst"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Numerical Index\n", string(content))

	require.Equal(t, []string{"numerical"}, docs.Names())
	require.True(t, docs.Found()["numerical"])
}

func TestDocSetAddCreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	docs := NewDocSet(dir)

	path, err := docs.Add("topic/kernel", "Kernel YEPs\n")
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, filepath.Join(dir, "topic", "kernel.rst"), path)
}

func TestDocSetNamesPreserveRegistrationOrder(t *testing.T) {
	docs := NewDocSet(t.TempDir())
	for _, name := range []string{"numerical", "yep-0000", "topic/index"} {
		_, err := docs.Add(name, "x\n")
		require.NoError(t, err)
	}
	require.Equal(t, []string{"numerical", "yep-0000", "topic/index"}, docs.Names())
}
