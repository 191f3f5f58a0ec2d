// Package testutil provides utilities for testing rzup-init in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv redirects every path the installer touches into a temp
// directory so tests never interfere with:
// - The user's real ~/.cargo/bin contents
// - The user's real shell profile files
// - Other rzup-init test runs
//
// It returns the fake home directory. Cleanup is handled by t.TempDir().
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, "home")

	t.Setenv("HOME", home)
	t.Setenv("SHELL", "/bin/bash")
	t.Setenv("RZUP_BINARY_UPDATE_ROOT", "")
	t.Setenv("TERM", "dumb")

	if err := os.MkdirAll(home, 0o750); err != nil {
		t.Fatalf("failed to create test home %s: %v", home, err)
	}

	return home
}
