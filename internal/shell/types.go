package shell

import "fmt"

// ShellType represents a supported shell
type ShellType string

const (
	// ShellZsh represents the Z shell
	ShellZsh ShellType = "zsh"
	// ShellBash represents the Bash shell
	ShellBash ShellType = "bash"
	// ShellFish represents the Fish shell
	ShellFish ShellType = "fish"
	// ShellAsh represents the Almquist shell (busybox/Alpine)
	ShellAsh ShellType = "ash"
	// ShellUnknown represents an unknown or unsupported shell
	ShellUnknown ShellType = "unknown"
)

// String returns the string representation of the shell type
func (s ShellType) String() string {
	return string(s)
}

// IsValid returns true if the shell type is supported
func (s ShellType) IsValid() bool {
	switch s {
	case ShellZsh, ShellBash, ShellFish, ShellAsh:
		return true
	default:
		return false
	}
}

// Config holds configuration for the shell manager
type Config struct {
	// BinDir is the directory that must end up on PATH
	BinDir string
}

// Result contains the outcome of a PATH setup run
type Result struct {
	// Shell is the detected shell type
	Shell ShellType
	// Profile is the path to the shell's profile file
	Profile string
	// Added indicates the PATH line was appended this run
	Added bool
	// AlreadyOnPath indicates the bin dir was already on the live PATH
	AlreadyOnPath bool
	// AlreadyInProfile indicates the profile file already carried the line
	AlreadyInProfile bool
	// Line is the PATH line for the shell (appended or already present)
	Line string
}

// DetectionResult contains the result of shell detection
type DetectionResult struct {
	// Shell is the detected shell type
	Shell ShellType
	// Method describes how the shell was detected
	Method string
	// ShellPath is the filesystem path or name the shell was detected from
	ShellPath string
}

// UnsupportedShellError represents an unsupported shell error
type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("unsupported shell: %s (supported: zsh, bash, fish, ash)", e.Shell)
}

// ProfileError represents an error with shell profile file operations
type ProfileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("profile error (%s): %s", e.Path, e.Message)
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}
