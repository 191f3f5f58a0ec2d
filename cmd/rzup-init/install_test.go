package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZebulonRouseFrantzich/rzup-init/internal/testutil"
	"github.com/ZebulonRouseFrantzich/rzup-init/internal/ui"
)

const fakeBinaryContent = "#!/bin/sh\necho rzup\n"

// setupInstallTest prepares an isolated environment with a fake rustc on
// PATH and a release server standing in for the real download root.
func setupInstallTest(t *testing.T) (home string, requests *[]string) {
	t.Helper()

	home = testutil.SetupTestEnv(t)

	toolDir := filepath.Join(t.TempDir(), "tools")
	if err := os.MkdirAll(toolDir, 0o755); err != nil {
		t.Fatal(err)
	}
	rustc := filepath.Join(toolDir, "rustc")
	if err := os.WriteFile(rustc, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", toolDir)

	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(fakeBinaryContent))
	}))
	t.Cleanup(server.Close)
	t.Setenv("RZUP_BINARY_UPDATE_ROOT", server.URL)

	return home, &paths
}

func TestRunInstallEndToEnd(t *testing.T) {
	home, requests := setupInstallTest(t)

	out := ui.NewPrinter(true, false)
	if err := runInstall(out, options{quiet: true, yes: true}); err != nil {
		t.Fatalf("runInstall failed: %v", err)
	}

	installed := filepath.Join(home, ".cargo", "bin", "rzup")
	fi, err := os.Stat(installed)
	if err != nil {
		t.Fatalf("binary not installed: %v", err)
	}
	if fi.Mode().Perm()&0o111 == 0 {
		t.Errorf("installed binary is not executable: %v", fi.Mode())
	}

	got, err := os.ReadFile(installed)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != fakeBinaryContent {
		t.Errorf("installed content mismatch: got %q", got)
	}

	if len(*requests) != 1 {
		t.Fatalf("expected exactly one download request, got %d", len(*requests))
	}
	if !strings.HasSuffix((*requests)[0], "/rzup") {
		t.Errorf("request path should end with /rzup: %s", (*requests)[0])
	}

	profile, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	if err != nil {
		t.Fatalf("profile not written: %v", err)
	}
	if !strings.Contains(string(profile), `.cargo/bin`) {
		t.Errorf("profile missing PATH entry:\n%s", profile)
	}

	// Lock must be released on success.
	lockPath := filepath.Join(home, ".cargo", ".rzup-init.lock")
	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Errorf("lock file left behind at %s", lockPath)
	}
}

func TestRunInstallRerunIsIdempotent(t *testing.T) {
	home, _ := setupInstallTest(t)

	out := ui.NewPrinter(true, false)
	opts := options{quiet: true, yes: true}

	if err := runInstall(out, opts); err != nil {
		t.Fatalf("first install failed: %v", err)
	}
	if err := runInstall(out, opts); err != nil {
		t.Fatalf("second install failed: %v", err)
	}

	profile, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(profile), `.cargo/bin`); n != 1 {
		t.Errorf("PATH entry appended %d times, want 1:\n%s", n, profile)
	}
}

func TestRunInstallReplacesPrior(t *testing.T) {
	home, _ := setupInstallTest(t)

	binDir := filepath.Join(home, ".cargo", "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}
	prior := filepath.Join(binDir, "rzup")
	if err := os.WriteFile(prior, []byte("old"), 0o755); err != nil {
		t.Fatal(err)
	}

	out := ui.NewPrinter(true, false)
	if err := runInstall(out, options{quiet: true, yes: true}); err != nil {
		t.Fatalf("runInstall failed: %v", err)
	}

	got, err := os.ReadFile(prior)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != fakeBinaryContent {
		t.Errorf("prior install not replaced, content: %q", got)
	}
}

func TestRunInstallFailsWithoutRustc(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("PATH", t.TempDir())

	out := ui.NewPrinter(true, false)
	err := runInstall(out, options{quiet: true, yes: true})
	if err == nil {
		t.Fatal("expected preflight failure without rustc")
	}
	if !strings.Contains(err.Error(), "rustc") {
		t.Errorf("error should name the missing tool: %v", err)
	}
}

func TestRunInstallServerFailureLeavesNothing(t *testing.T) {
	home := testutil.SetupTestEnv(t)

	toolDir := filepath.Join(t.TempDir(), "tools")
	if err := os.MkdirAll(toolDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(toolDir, "rustc"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", toolDir)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)
	t.Setenv("RZUP_BINARY_UPDATE_ROOT", server.URL)

	out := ui.NewPrinter(true, false)
	err := runInstall(out, options{quiet: true, yes: true})
	if err == nil {
		t.Fatal("expected download failure")
	}

	if _, statErr := os.Stat(filepath.Join(home, ".cargo", "bin", "rzup")); !os.IsNotExist(statErr) {
		t.Error("failed download must not leave an installed binary")
	}

	// Lock must be released on the failure path too.
	lockPath := filepath.Join(home, ".cargo", ".rzup-init.lock")
	if _, statErr := os.Stat(lockPath); !os.IsNotExist(statErr) {
		t.Errorf("lock file left behind at %s", lockPath)
	}
}
