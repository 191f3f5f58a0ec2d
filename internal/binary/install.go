package binary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Installer places a staged binary into the bin directory.
type Installer struct {
	binDir string
}

// NewInstaller creates an installer targeting the given bin directory.
func NewInstaller(binDir string) *Installer {
	return &Installer{binDir: binDir}
}

// BinDir returns the target bin directory.
func (i *Installer) BinDir() string {
	return i.binDir
}

// ToolPath returns the destination path for a tool.
func (i *Installer) ToolPath(tool Tool) string {
	return filepath.Join(i.binDir, tool.String())
}

// IsInstalled checks if a tool is already installed and executable.
func (i *Installer) IsInstalled(tool Tool) (bool, error) {
	info, err := os.Stat(i.ToolPath(tool))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat binary: %w", err)
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}

	if info.Mode().Perm()&0111 == 0 {
		return false, nil
	}

	return true, nil
}

// Install moves a staged artifact into place as the named tool. A prior
// install at the destination is removed first, so old and new binary never
// coexist. Every failure is terminal; there is no retry or rollback.
func (i *Installer) Install(tool Tool, stagedPath string) (*InstallResult, error) {
	destPath := i.ToolPath(tool)

	// Remove a prior install before placing the new binary
	replaced := false
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return nil, fmt.Errorf("remove prior install: %w", err)
		}
		replaced = true
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat prior install: %w", err)
	}

	if err := os.MkdirAll(i.binDir, 0755); err != nil {
		return nil, fmt.Errorf("create bin dir: %w", err)
	}

	if err := SetExecutable(stagedPath); err != nil {
		return nil, err
	}

	// Re-stat and verify the executable bit actually took; a noexec or
	// otherwise restricted filesystem can silently defeat chmod.
	if err := verifyExecutable(stagedPath); err != nil {
		return nil, err
	}

	if err := moveFile(stagedPath, destPath); err != nil {
		return nil, fmt.Errorf("move binary into place: %w", err)
	}

	return &InstallResult{
		Path:          destPath,
		ReplacedPrior: replaced,
	}, nil
}

// SetExecutable sets permissions to 0755 (rwxr-xr-x).
func SetExecutable(path string) error {
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("set executable: %w", err)
	}
	return nil
}

// verifyExecutable confirms the executable bit is set on a regular file.
func verifyExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat downloaded binary: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("downloaded artifact is not a regular file: %s", path)
	}

	if info.Mode().Perm()&0111 == 0 {
		return fmt.Errorf("downloaded binary is not executable: %s (check mount options on the staging filesystem and re-run)", path)
	}

	return nil
}

// moveFile renames src to dest, falling back to copy+remove when the two
// paths are on different filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("copy to destination: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("close destination: %w", err)
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}

	return nil
}
