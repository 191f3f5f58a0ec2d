package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// DetectShell detects the user's shell using multiple methods
func DetectShell() (*DetectionResult, error) {
	// Method 1: Try $SHELL environment variable (most reliable)
	if shell := os.Getenv("SHELL"); shell != "" {
		shellType := parseShellFromPath(shell)
		if shellType.IsValid() {
			return &DetectionResult{
				Shell:     shellType,
				Method:    "$SHELL environment variable",
				ShellPath: shell,
			}, nil
		}
		// $SHELL names something we don't support; report it as-is so
		// the caller can warn with the actual shell name.
		return &DetectionResult{
			Shell:     ShellUnknown,
			Method:    "$SHELL environment variable",
			ShellPath: shell,
		}, nil
	}

	// Method 2: Try parent process (fallback)
	if shellType, shellPath := detectFromParentProcess(); shellType.IsValid() {
		return &DetectionResult{
			Shell:     shellType,
			Method:    "parent process",
			ShellPath: shellPath,
		}, nil
	}

	// Method 3: Could not detect shell
	return &DetectionResult{
		Shell:     ShellUnknown,
		Method:    "detection failed",
		ShellPath: "",
	}, nil
}

// parseShellFromPath extracts the shell type from a shell binary path
// Examples:
//   - /bin/bash -> bash
//   - /usr/bin/zsh -> zsh
//   - -ash (login shell) -> ash
func parseShellFromPath(shellPath string) ShellType {
	baseName := filepath.Base(shellPath)

	// Login shells report with a leading dash
	baseName = strings.TrimPrefix(baseName, "-")
	baseName = strings.ToLower(baseName)

	switch baseName {
	case "zsh":
		return ShellZsh
	case "bash":
		return ShellBash
	case "fish":
		return ShellFish
	case "ash":
		return ShellAsh
	default:
		return ShellUnknown
	}
}

// detectFromParentProcess attempts to detect the shell from the parent
// process name. This is a fallback when $SHELL is not set, typically in
// minimal containers.
func detectFromParentProcess() (ShellType, string) {
	parent, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return ShellUnknown, ""
	}

	name, err := parent.Name()
	if err != nil || name == "" {
		return ShellUnknown, ""
	}

	return parseShellFromPath(name), name
}

// ValidateShell validates that a shell type is supported
func ValidateShell(shell ShellType) error {
	if !shell.IsValid() {
		return &UnsupportedShellError{Shell: shell.String()}
	}
	return nil
}

// GetSupportedShells returns a list of supported shells
func GetSupportedShells() []ShellType {
	return []ShellType{ShellZsh, ShellBash, ShellFish, ShellAsh}
}
