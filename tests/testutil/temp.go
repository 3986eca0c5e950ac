package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CrateDir creates a temporary directory holding a Cargo.toml with content
func CrateDir(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	WriteCargoToml(t, dir, content)
	return dir
}

// WriteCargoToml writes content to dir/Cargo.toml
func WriteCargoToml(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "Cargo.toml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}
