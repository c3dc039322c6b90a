// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// MustWriteFile writes data to dir/name, creating dir if needed, and returns
// the file path. The test fails immediately on error.
func MustWriteFile(t testing.TB, dir, name, data string) string {
	t.Helper()
	MustMkdirAll(t, dir, 0o755)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// MustReadFile returns the contents of path.
// The test fails immediately on error.
func MustReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// MustMkdirAll creates a directory and all parent directories.
// The test fails immediately if the operation fails.
func MustMkdirAll(t testing.TB, path string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(path, perm); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// MustClose closes the given io.Closer.
// The test fails if the close operation fails.
func MustClose(t testing.TB, c io.Closer) {
	t.Helper()
	if err := c.Close(); err != nil {
		t.Errorf("failed to close: %v", err)
	}
}
