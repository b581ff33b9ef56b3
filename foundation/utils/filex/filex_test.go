// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for existence checks and atomic writes.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name   string
		path   string
		exists bool
		isFile bool
		isDir  bool
	}{
		{"file", file, true, true, false},
		{"dir", dir, true, false, true},
		{"missing", filepath.Join(dir, "missing"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exists, Exists(tt.path))
			assert.Equal(t, tt.isFile, IsFile(tt.path))
			assert.Equal(t, tt.isDir, IsDir(tt.path))
		})
	}
}

func TestEnsureParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.txt")

	require.NoError(t, EnsureParent(path))
	assert.True(t, IsDir(filepath.Join(dir, "a", "b")))
	assert.NoError(t, EnsureParent("bare.txt"))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "result.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("first\n"), 0644))
	require.NoError(t, WriteFileAtomic(path, []byte("second\n"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestWriteFileAtomic_TargetIsDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0644))

	err := WriteFileAtomic(target, []byte("x"), 0644)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
