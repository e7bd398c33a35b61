package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestdataDir returns the repository testdata directory, searching upward
// from the working directory of the running test.
func TestdataDir(t testing.TB) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	dir := wd
	for i := 0; i < 5; i++ {
		candidate := filepath.Join(dir, "testdata")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	t.Fatalf("testdata directory not found above %s", wd)
	return ""
}

// TestdataFile returns the path of a file in the testdata directory.
func TestdataFile(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(TestdataDir(t), name)
}
