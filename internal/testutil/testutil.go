// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// MustChdir changes the current working directory to dir and restores it
// when the test ends.
func MustChdir(t testing.TB, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("failed to restore directory to %s: %v", originalWd, err)
		}
	})
}

// IsolateConfig points the platform configuration directory at a fresh
// temporary directory and returns it. Tests calling it must not be parallel.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
	case "darwin":
		t.Setenv("HOME", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// WriteTree writes files under root. Keys are slash-separated relative paths,
// values the file contents.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// LootTree writes a small vanilla-like loot table tree under root where
// every file holds its own relative path, and returns the file map.
func LootTree(t testing.TB, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	for _, rel := range []string{
		"blocks/stone.json",
		"blocks/dirt.json",
		"blocks/acacia_log.json",
		"chests/simple_dungeon.json",
		"chests/village/village_armorer.json",
		"entities/zombie.json",
		"entities/sheep/white.json",
		"gameplay/fishing.json",
		"gameplay/fishing/fish.json",
	} {
		files[rel] = `{"table":"` + rel + `"}`
	}
	WriteTree(t, root, files)
	return files
}

// ReadZip returns the entry names in archive order and their contents.
func ReadZip(t testing.TB, data []byte) ([]string, map[string]string) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	names := make([]string, 0, len(zr.File))
	contents := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		MustClose(t, rc)
		if err != nil {
			t.Fatalf("failed to read entry %s: %v", f.Name, err)
		}
		names = append(names, f.Name)
		contents[f.Name] = string(b)
	}
	return names, contents
}

// ReadZipFile is ReadZip for an archive on disk.
func ReadZipFile(t testing.TB, path string) ([]string, map[string]string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return ReadZip(t, data)
}

// MustClose closes c and fails the test on error.
func MustClose(t testing.TB, c io.Closer) {
	t.Helper()
	if err := c.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}
}
