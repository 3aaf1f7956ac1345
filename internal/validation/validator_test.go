package validation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.jsonldProcessor)
}

func TestValidateFile_ValidTurtle(t *testing.T) {
	path := writeFile(t, "ok.ttl",
		"<http://example.com/s> <http://example.com/p> <http://example.com/o> .\n")

	result, err := New().ValidateFile(context.Background(), path, nil)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 1, result.Statements)
	assert.Empty(t, result.Errors)
}

func TestValidateFile_MalformedTurtle(t *testing.T) {
	path := writeFile(t, "broken.ttl", "this is not turtle @@@\n")

	result, err := New().ValidateFile(context.Background(), path, nil)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidateFile_ValidJSONLD(t *testing.T) {
	path := writeFile(t, "ok.jsonld", `{
		"@context": {"name": "http://schema.org/name"},
		"@id": "http://example.com/alice",
		"name": "Alice"
	}`)

	result, err := New().ValidateFile(context.Background(), path, nil)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateFile_JSONLDMissingContext(t *testing.T) {
	path := writeFile(t, "bare.jsonld", `{"name": "Alice"}`)

	result, err := New().ValidateFile(context.Background(), path, nil)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	hasContextError := false
	for _, e := range result.Errors {
		if e.Field == "@context" {
			hasContextError = true
			break
		}
	}
	assert.True(t, hasContextError, "Should have @context error")
}

func TestValidateFile_MissingFile(t *testing.T) {
	_, err := New().ValidateFile(context.Background(), filepath.Join(t.TempDir(), "absent.ttl"), nil)
	require.Error(t, err)
}
