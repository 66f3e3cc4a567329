//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME — holds ~/.create-mvc/config.yaml
	WorkDir string // directory the project is generated in
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so user settings never leak into the run.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// requireNPM skips the test when npm is not on PATH.
func requireNPM(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("npm"); err != nil {
		t.Skip("npm not available, skipping")
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (%v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected directory, got file: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", filepath.Base(path), err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q", filepath.Base(path), substr)
	}
}
