// Package shell wires the installed bin directory into the user's shell
// startup files.
//
// This package handles:
//   - Detecting the user's shell (zsh, bash, fish, ash)
//   - Locating the profile file each shell sources on startup
//   - Generating the shell-appropriate PATH export line
//   - Safely appending that line to the profile file
//
// # Shell Detection
//
// Shell detection tries multiple methods:
//  1. $SHELL environment variable (most reliable)
//  2. Parent process name via gopsutil (fallback)
//
// An unrecognized shell is not an error: the caller warns and leaves PATH
// unmanaged.
//
// # Profile File Management
//
// Each shell gets the profile file it reliably sources:
//   - zsh:  ~/.zshenv
//   - bash: ~/.bashrc
//   - fish: ~/.config/fish/config.fish
//   - ash:  ~/.profile
//
// All modifications are:
//   - Idempotent (checked against both the live PATH and the profile contents)
//   - Atomic (using temp file + rename)
//   - Append-only (existing content is preserved byte for byte)
//
// # Example Usage
//
//	manager := shell.NewManager(shell.Config{
//	    BinDir: "~/.cargo/bin",
//	})
//
//	result, err := manager.EnsurePath(os.Getenv("PATH"))
package shell
