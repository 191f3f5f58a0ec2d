// Package preflight verifies the host satisfies the installer's
// prerequisites before any filesystem or network action is taken.
package preflight

import (
	"fmt"
	"os/exec"
)

// Requirement is a command that must be on PATH before installation.
type Requirement struct {
	// Command is the executable name looked up on PATH.
	Command string
	// Guidance tells the user how to satisfy the requirement.
	Guidance string
}

// Requirements lists the prerequisite toolchain commands. rzup manages
// Rust-based toolchains, so a working rustc must already be present.
var Requirements = []Requirement{
	{
		Command:  "rustc",
		Guidance: "install Rust from https://rustup.rs and re-run",
	},
}

// LookPathFunc resolves a command on PATH. Swappable in tests.
type LookPathFunc func(name string) (string, error)

// Check verifies every requirement, using exec.LookPath.
func Check() error {
	return CheckWith(exec.LookPath)
}

// CheckWith verifies every requirement using the given lookup function.
// The first missing requirement fails the run; there is no partial pass.
func CheckWith(lookPath LookPathFunc) error {
	for _, req := range Requirements {
		if _, err := lookPath(req.Command); err != nil {
			return fmt.Errorf("%s not found on PATH: %s", req.Command, req.Guidance)
		}
	}
	return nil
}
