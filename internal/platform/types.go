// Package platform resolves the host operating system and CPU to the
// canonical architecture tag used to select prebuilt rzup binaries.
//
// Resolution is a pure mapping from kernel and machine names (the values
// `uname -s` and `uname -m` would report) so it can be tested exhaustively.
// Live detection derives those names in-process and enriches the result
// with Linux distribution details via gopsutil, with graceful fallback
// when distro detection fails.
package platform

import "context"

// Linux distribution family constants.
// These represent canonical family names for grouping related distributions.
const (
	FamilyDebian  = "debian"  // Debian, Ubuntu, Linux Mint
	FamilyRHEL    = "rhel"    // RHEL, CentOS, Rocky Linux, AlmaLinux
	FamilyFedora  = "fedora"  // Fedora
	FamilySUSE    = "suse"    // openSUSE, SLES
	FamilyArch    = "arch"    // Arch Linux, Manjaro
	FamilyAlpine  = "alpine"  // Alpine Linux
	FamilyGentoo  = "gentoo"  // Gentoo
	FamilyUnknown = "unknown" // Unrecognized distributions
)

// Info contains platform resolution results.
type Info struct {
	OS      string // "linux" or "darwin"
	Arch    string // "x86_64", "arm64", "armv7", "x86" (canonical)
	Kernel  string // kernel name the OS was resolved from (e.g. "Linux")
	Machine string // machine name the Arch was resolved from (e.g. "aarch64")

	// Linux distribution details, empty on non-Linux or when detection fails.
	Distro        string // distro ID (e.g. "ubuntu")
	Family        string // canonical family (e.g. "debian")
	DistroVersion string // distro version (e.g. "22.04")
}

// Tag returns the canonical "{cpu}-{os}" architecture tag.
func (i *Info) Tag() string {
	return i.Arch + "-" + i.OS
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsAppleSilicon returns true if running on Apple Silicon (macOS + arm64).
func (i *Info) IsAppleSilicon() bool {
	return i.OS == "darwin" && i.Arch == "arm64"
}

// GetDistro returns distro information if this is a Linux platform.
// Returns nil for non-Linux platforms or if distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != "linux" || i.Distro == "" {
		return nil
	}
	return &Distro{
		ID:      i.Distro,
		Family:  i.Family,
		Version: i.DistroVersion,
	}
}

// Distro contains Linux distribution information.
// This is nil on non-Linux platforms.
type Distro struct {
	ID      string // distro ID (e.g. "ubuntu")
	Family  string // canonical family (e.g. "debian")
	Version string // version (e.g. "22.04")
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
