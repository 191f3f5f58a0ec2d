package platform

import (
	"fmt"
	"strings"
)

// familyMap maps distribution names to their canonical family names.
// This is used to normalize variations of family strings from gopsutil.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian, // gopsutil might return ubuntu as family
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
	"gentoo":   FamilyGentoo,
}

// Resolve maps a kernel name and machine name to canonical platform info.
// The inputs are the values `uname -s` and `uname -m` would report.
func Resolve(kernel, machine string) (*Info, error) {
	os, err := resolveOS(kernel)
	if err != nil {
		return nil, err
	}

	arch, err := resolveArch(machine)
	if err != nil {
		return nil, err
	}

	// Both mappings returning non-empty is an invariant of the tables
	// above, but an empty tag must never select a download.
	if os == "" || arch == "" {
		return nil, fmt.Errorf("empty architecture tag for %s/%s", kernel, machine)
	}

	return &Info{
		OS:      os,
		Arch:    arch,
		Kernel:  kernel,
		Machine: machine,
	}, nil
}

// resolveOS maps kernel names to canonical OS names.
func resolveOS(kernel string) (string, error) {
	switch kernel {
	case "Linux":
		return "linux", nil
	case "Darwin":
		return "darwin", nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", kernel)
	}
}

// resolveArch maps machine names to canonical CPU names.
func resolveArch(machine string) (string, error) {
	switch machine {
	case "x86_64", "amd64":
		return "x86_64", nil
	case "aarch64", "arm64":
		return "arm64", nil
	case "armv7l":
		return "armv7", nil
	case "i386", "i686":
		return "x86", nil
	default:
		return "", fmt.Errorf("unknown CPU type: %s", machine)
	}
}

// mapFamily maps distribution family strings to canonical family names.
// Uses a package-level lookup table for explicit mapping.
func mapFamily(family string) string {
	normalized := strings.ToLower(strings.TrimSpace(family))
	if canonical, ok := familyMap[normalized]; ok {
		return canonical
	}

	return FamilyUnknown
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}
