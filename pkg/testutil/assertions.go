package testutil

import (
	"testing"

	"github.com/bullish-design/templateer/pkg/filesystem"
)

// AssertFileExists fails the test if path does not exist in fsys
func AssertFileExists(t *testing.T, fsys filesystem.FS, path string) {
	t.Helper()

	if !filesystem.Exists(fsys, path) {
		t.Errorf("Expected file %s to exist", path)
	}
}

// AssertNoFile fails the test if path exists in fsys
func AssertNoFile(t *testing.T, fsys filesystem.FS, path string) {
	t.Helper()

	if filesystem.Exists(fsys, path) {
		t.Errorf("Expected file %s to not exist", path)
	}
}

// AssertFileContent fails the test unless path holds exactly want
func AssertFileContent(t *testing.T, fsys filesystem.FS, path, want string) {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Errorf("Failed to read %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, want, string(data))
	}
}
