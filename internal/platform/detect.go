package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// The kernel name is derived from runtime.GOOS; the machine name is taken
// from the running kernel via gopsutil, falling back to runtime.GOARCH
// when that fails. Linux distribution details are detected via gopsutil.
//
// On Linux, if gopsutil fails to detect the distribution, it sets
// distro fields to empty strings and continues (graceful fallback).
// This allows basic OS/arch detection to work even when distro
// detection fails.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	kernel, err := kernelName(runtime.GOOS)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}

	machine, err := host.KernelArch()
	if err != nil || machine == "" {
		machine = machineName(runtime.GOARCH)
	}

	info, err := Resolve(kernel, machine)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}

	// Detect Linux distribution details using gopsutil (Linux only)
	if info.IsLinux() {
		distro, family, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			// Check if context was cancelled - this is a hard failure
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			// Graceful fallback for detection failures only
			return info, nil
		}

		distro = normalizePlatform(distro)
		if distro != "" {
			info.Distro = distro
			info.Family = mapFamily(family)
			info.DistroVersion = normalizePlatform(version)
		}
	}

	return info, nil
}

// kernelName maps runtime.GOOS to the kernel name uname -s would report.
func kernelName(goos string) (string, error) {
	switch goos {
	case "linux":
		return "Linux", nil
	case "darwin":
		return "Darwin", nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", goos)
	}
}

// machineName maps runtime.GOARCH to the machine name uname -m would
// report. Used only when the kernel arch cannot be read directly.
func machineName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armv7l"
	case "386":
		return "i686"
	default:
		return goarch
	}
}
