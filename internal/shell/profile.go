package shell

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetProfilePath returns the path to the shell's profile file
func GetProfilePath(shell ShellType) (string, error) {
	if err := ValidateShell(shell); err != nil {
		return "", err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	var profilePath string
	switch shell {
	case ShellZsh:
		profilePath = filepath.Join(homeDir, ".zshenv")
	case ShellBash:
		profilePath = filepath.Join(homeDir, ".bashrc")
	case ShellFish:
		profilePath = filepath.Join(homeDir, ".config", "fish", "config.fish")
	case ShellAsh:
		profilePath = filepath.Join(homeDir, ".profile")
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}

	return profilePath, nil
}

// PathLine returns the shell-appropriate line that puts binDir on PATH.
func PathLine(shell ShellType, binDir string) (string, error) {
	if err := ValidateShell(shell); err != nil {
		return "", err
	}

	display := displayPath(binDir)
	switch shell {
	case ShellZsh, ShellBash, ShellAsh:
		return fmt.Sprintf(`export PATH="%s:$PATH"`, display), nil
	case ShellFish:
		return fmt.Sprintf(`fish_add_path -a "%s"`, display), nil
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}
}

// displayPath rewrites a path under the home directory to use $HOME so the
// profile line survives home directory moves.
func displayPath(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return dir
	}
	if rel := strings.TrimPrefix(dir, home); rel != dir && strings.HasPrefix(rel, "/") {
		return "$HOME" + rel
	}
	return dir
}

// OnPath reports whether dir is present as a colon-delimited segment of the
// given PATH value.
func OnPath(pathEnv, dir string) bool {
	if pathEnv == "" || dir == "" {
		return false
	}

	dirClean := filepath.Clean(dir)
	for _, segment := range strings.Split(pathEnv, ":") {
		if segment == "" {
			continue
		}
		if filepath.Clean(segment) == dirClean {
			return true
		}
	}
	return false
}

// ProfileExists checks if the profile file exists
func ProfileExists(profilePath string) (bool, error) {
	info, err := os.Stat(profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &ProfileError{
			Path:    profilePath,
			Message: "failed to stat file",
			Cause:   err,
		}
	}

	if !info.Mode().IsRegular() {
		return false, &ProfileError{
			Path:    profilePath,
			Message: "not a regular file",
		}
	}

	return true, nil
}

// HasPathLine checks if the profile file already carries the managed PATH
// line for binDir, either via the marker comment or the bin dir itself.
func HasPathLine(profilePath, binDir string) (bool, error) {
	file, err := os.Open(profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &ProfileError{
			Path:    profilePath,
			Message: "failed to open file",
			Cause:   err,
		}
	}
	defer file.Close()

	display := displayPath(binDir)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, PathLineMarker) {
			return true, nil
		}
		if strings.Contains(line, display) || strings.Contains(line, binDir) {
			return true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return false, &ProfileError{
			Path:    profilePath,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	return false, nil
}

// AppendPathLine appends the managed PATH line to the profile file.
// This is an atomic operation using a temporary file. The profile file and
// its parent directories are created when missing.
func AppendPathLine(profilePath, line string) error {
	dir := filepath.Dir(profilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &ProfileError{
			Path:    profilePath,
			Message: "failed to create parent directory",
			Cause:   err,
		}
	}

	// Read existing content
	var existingContent []byte
	if exists, _ := ProfileExists(profilePath); exists {
		var err error
		existingContent, err = os.ReadFile(profilePath)
		if err != nil {
			return &ProfileError{
				Path:    profilePath,
				Message: "failed to read existing file",
				Cause:   err,
			}
		}
	}

	// Create temporary file in the same directory (for atomic rename)
	tmpFile, err := os.CreateTemp(dir, ".rzup-init-tmp-*")
	if err != nil {
		return &ProfileError{
			Path:    profilePath,
			Message: "failed to create temporary file",
			Cause:   err,
		}
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Clean up on error

	// Write existing content
	if len(existingContent) > 0 {
		if _, err := tmpFile.Write(existingContent); err != nil {
			tmpFile.Close()
			return &ProfileError{
				Path:    profilePath,
				Message: "failed to write existing content",
				Cause:   err,
			}
		}

		// Ensure there's a newline before our addition
		if !strings.HasSuffix(string(existingContent), "\n") {
			if _, err := tmpFile.WriteString("\n"); err != nil {
				tmpFile.Close()
				return &ProfileError{
					Path:    profilePath,
					Message: "failed to write newline",
					Cause:   err,
				}
			}
		}
	}

	section := fmt.Sprintf("\n%s\n%s\n", PathLineMarker, line)
	if _, err := tmpFile.WriteString(section); err != nil {
		tmpFile.Close()
		return &ProfileError{
			Path:    profilePath,
			Message: "failed to write PATH line",
			Cause:   err,
		}
	}

	// Sync to disk
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return &ProfileError{
			Path:    profilePath,
			Message: "failed to sync file",
			Cause:   err,
		}
	}

	tmpFile.Close()

	// Atomic rename
	if err := os.Rename(tmpPath, profilePath); err != nil {
		return &ProfileError{
			Path:    profilePath,
			Message: "failed to rename temp file",
			Cause:   err,
		}
	}

	return nil
}
