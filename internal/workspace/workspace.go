// Package workspace owns the installer's transient filesystem resources:
// the temporary staging directory the download lands in, and the lock that
// keeps two installer processes from racing on the destination binary.
//
// The staging directory carries the only acquisition/release contract in
// the system: it must be gone after the process exits, whether the run
// completed, failed, or was interrupted.
package workspace

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
)

// Workspace is a temporary staging directory for downloaded artifacts.
type Workspace struct {
	dir string

	mu      sync.Mutex
	cleaned bool
}

// New creates a fresh staging directory under the system temp dir.
func New() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "rzup-init-*")
	if err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}

	return &Workspace{dir: dir}, nil
}

// Dir returns the staging directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// StagePath returns the path inside the staging directory for a named
// artifact.
func (w *Workspace) StagePath(name string) string {
	return filepath.Join(w.dir, name)
}

// Cleanup removes the staging directory. Safe to call more than once;
// callers defer it and the signal handler calls it again on interrupt.
func (w *Workspace) Cleanup() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cleaned {
		return
	}
	w.cleaned = true

	os.RemoveAll(w.dir)
}

// CleanupOnSignal runs the given cleanup functions and exits with status 1
// when the process receives SIGINT or SIGTERM. Returns a stop function that
// unregisters the handler after a normal completion.
func CleanupOnSignal(cleanups ...func()) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})

	go func() {
		select {
		case <-sigs:
			for _, cleanup := range cleanups {
				cleanup()
			}
			os.Exit(1)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}
