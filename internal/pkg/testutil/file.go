package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile writes content to a file inside a per-test temp directory and returns its path
func CreateTestFile(t *testing.T, fileName string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}
