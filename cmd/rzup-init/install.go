package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZebulonRouseFrantzich/rzup-init/internal/binary"
	"github.com/ZebulonRouseFrantzich/rzup-init/internal/hook"
	"github.com/ZebulonRouseFrantzich/rzup-init/internal/platform"
	"github.com/ZebulonRouseFrantzich/rzup-init/internal/preflight"
	"github.com/ZebulonRouseFrantzich/rzup-init/internal/shell"
	"github.com/ZebulonRouseFrantzich/rzup-init/internal/ui"
	"github.com/ZebulonRouseFrantzich/rzup-init/internal/workspace"
)

// installTimeout bounds the whole run, dominated by the download.
const installTimeout = 10 * time.Minute

// binDir returns the installation target, ~/.cargo/bin.
func binDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".cargo", "bin"), nil
}

// runInstall drives the linear install flow. Every step either proceeds to
// the next or terminates the whole run; nothing is retried.
func runInstall(out *ui.Printer, opts options) error {
	ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
	defer cancel()

	// Step 1: Prerequisites, before any filesystem or network action
	if err := preflight.Check(); err != nil {
		return err
	}

	// Step 2: Platform detection
	out.Infof("Detecting platform...")
	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return err
	}
	out.Detailf("%s", info.Tag())
	if distro := info.GetDistro(); distro != nil {
		out.Verbosef("distro: %s %s (%s family)", distro.ID, distro.Version, distro.Family)
	}

	target, err := binDir()
	if err != nil {
		return err
	}

	downloadInfo, err := binary.ConstructDownloadInfo(binary.ToolRzup, binary.UpdateRoot(), info)
	if err != nil {
		return err
	}
	out.Verbosef("download URL: %s", downloadInfo.URL)

	// Step 3: Confirmation before the first mutation
	if !opts.yes {
		ok, err := out.Confirm(fmt.Sprintf("Install %s to %s?", binary.ToolRzup, target))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("installation aborted")
		}
	}

	// Step 4: Staging workspace and install lock, released on every exit
	// path including interrupts
	ws, err := workspace.New()
	if err != nil {
		return err
	}
	defer ws.Cleanup()

	lock, err := workspace.AcquireLock(filepath.Dir(target))
	if err != nil {
		return err
	}
	defer lock.Release()

	stop := workspace.CleanupOnSignal(ws.Cleanup, func() { lock.Release() })
	defer stop()

	// Step 5: Download
	out.Infof("Downloading %s (%s)...", binary.ToolRzup, downloadInfo.Tag)
	downloader := binary.NewDownloader()
	downloader.Progress = out.Progress

	stagedPath, err := downloader.DownloadTool(ctx, downloadInfo, ws.Dir())
	if err != nil {
		return err
	}

	// Step 6: Install
	out.Infof("Installing to %s...", target)
	installer := binary.NewInstaller(target)
	result, err := installer.Install(binary.ToolRzup, stagedPath)
	if err != nil {
		return err
	}
	if result.ReplacedPrior {
		out.Detailf("replaced previous install at %s", result.Path)
	}

	// Step 7: Shell PATH setup; an unrecognized shell is a warning, not
	// a failure
	pathResult := setupShellPath(out, target)

	// Step 8: Optional user hook
	runHook(out, info, target, result.Path)

	// Step 9: Report
	out.Successf("%s installed to %s", binary.ToolRzup, result.Path)
	printNextSteps(out, pathResult)

	return nil
}

// setupShellPath wires the bin dir into the user's shell profile. Returns
// nil when the shell is unrecognized.
func setupShellPath(out *ui.Printer, target string) *shell.Result {
	manager, err := shell.NewManager(shell.Config{BinDir: target})
	if err != nil {
		out.Warnf("shell setup skipped: %v", err)
		return nil
	}

	result, err := manager.DetectAndSetup(os.Getenv("PATH"))
	if err != nil {
		var unsupported *shell.UnsupportedShellError
		if errors.As(err, &unsupported) {
			out.Warnf("%v; add %s to PATH manually", err, target)
			return nil
		}
		out.Warnf("shell PATH setup failed: %v", err)
		return nil
	}

	switch {
	case result.Added:
		out.Infof("Added %s to PATH in %s", target, result.Profile)
	case result.AlreadyOnPath:
		out.Detailf("%s already on PATH", target)
	case result.AlreadyInProfile:
		out.Detailf("PATH line already present in %s", result.Profile)
	}

	return result
}

// runHook executes the optional post-install hook script. Hook failures
// are warnings; the binary is already installed at this point.
func runHook(out *ui.Printer, info *platform.Info, target, binaryPath string) {
	ran, err := hook.Run(hook.Path(), info, hook.Install{
		BinDir:     target,
		BinaryPath: binaryPath,
		Tag:        info.Tag(),
	})
	if err != nil {
		out.Warnf("post-install hook failed: %v", err)
		return
	}
	if ran {
		out.Detailf("ran post-install hook")
	}
}

// printNextSteps tells the user how to pick up the new PATH entry.
func printNextSteps(out *ui.Printer, pathResult *shell.Result) {
	if pathResult != nil && pathResult.Added {
		out.Infof("Restart your shell or run: source %s", pathResult.Profile)
		return
	}
	out.Infof("Run rzup to manage your toolchains")
}
