package platform

import (
	"context"
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skipf("detection unsupported on %s", runtime.GOOS)
	}

	detector := NewDetector()
	info, err := detector.Detect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS mismatch: got %s, want %s", info.OS, runtime.GOOS)
	}

	if info.Arch == "" {
		t.Error("expected non-empty Arch")
	}

	if tag := info.Tag(); tag != info.Arch+"-"+info.OS {
		t.Errorf("Tag mismatch: got %s", tag)
	}
}

func TestDetectCancelledContext(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("distro detection is Linux only")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	detector := NewDetector()
	// A cancelled context must not panic; it either fails fast or falls
	// back to bare OS/arch info depending on where cancellation lands.
	info, err := detector.Detect(ctx)
	if err == nil && info == nil {
		t.Fatal("expected info or error, got neither")
	}
}

func TestKernelName(t *testing.T) {
	tests := []struct {
		goos     string
		expected string
		wantErr  bool
	}{
		{"linux", "Linux", false},
		{"darwin", "Darwin", false},
		{"windows", "", true},
		{"freebsd", "", true},
	}

	for _, tt := range tests {
		got, err := kernelName(tt.goos)

		if tt.wantErr {
			if err == nil {
				t.Errorf("kernelName(%q): expected error, got none", tt.goos)
			}
			continue
		}

		if err != nil {
			t.Errorf("kernelName(%q): unexpected error: %v", tt.goos, err)
			continue
		}

		if got != tt.expected {
			t.Errorf("kernelName(%q) = %q, want %q", tt.goos, got, tt.expected)
		}
	}
}

func TestMachineName(t *testing.T) {
	tests := []struct {
		goarch   string
		expected string
	}{
		{"amd64", "x86_64"},
		{"arm64", "aarch64"},
		{"arm", "armv7l"},
		{"386", "i686"},
		{"riscv64", "riscv64"}, // passed through, rejected by Resolve
	}

	for _, tt := range tests {
		if got := machineName(tt.goarch); got != tt.expected {
			t.Errorf("machineName(%q) = %q, want %q", tt.goarch, got, tt.expected)
		}
	}
}
