// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := MustWriteFile(t, dir, "a.txt", "hello")

	if path != filepath.Join(dir, "a.txt") {
		t.Errorf("path = %q", path)
	}
	if got := MustReadFile(t, path); got != "hello" {
		t.Errorf("content = %q", got)
	}
}

func TestMustClose(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "close")
	if err != nil {
		t.Fatal(err)
	}
	MustClose(t, f)
}

func TestWriteBoard(t *testing.T) {
	t.Parallel()

	path := WriteBoard(t, t.TempDir())
	if filepath.Base(path) != "board.cue" {
		t.Errorf("path = %q", path)
	}
	if MustReadFile(t, path) != BoardCUE {
		t.Error("board content mismatch")
	}
}
