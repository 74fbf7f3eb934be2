package testutils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates a file with the given content in a temporary directory
// and returns its absolute path. It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}

// ExamplePath returns the absolute path of a payload under the repository's
// examples directory.
func ExamplePath(t *testing.T, name string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "Failed to locate testutils source")
	path := filepath.Join(filepath.Dir(file), "..", "..", "examples", name)
	_, err := os.Stat(path)
	require.NoError(t, err, "Missing example payload %s", name)
	return path
}
