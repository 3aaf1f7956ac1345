package converter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath_MirrorsTree(t *testing.T) {
	got, err := OutputPath("/out", "/in", "/in/sub/deep/a.ttl", ".nt", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/out/sub/deep/a.nt"), got)
}

func TestOutputPath_TopLevelFile(t *testing.T) {
	got, err := OutputPath("/out", "/in", "/in/a.ttl", ".nt", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/out/a.nt"), got)
}

func TestOutputPath_NoTreeFlattens(t *testing.T) {
	got, err := OutputPath("/out", "/in", "/in/sub/deep/a.ttl", ".nt", true)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/out/a.nt"), got)
}

func TestOutputPath_DirectFileInput(t *testing.T) {
	// A file named directly on the command line has no input root and
	// always lands flat in the output directory.
	got, err := OutputPath("/out", "", "/somewhere/else/a.ttl", ".jsonld", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/out/a.jsonld"), got)
}

func TestOutputPath_ReplacesExtensionOnly(t *testing.T) {
	got, err := OutputPath("/out", "", "/in/data.tar.ttl", ".nt", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/out/data.tar.nt"), got)
}
