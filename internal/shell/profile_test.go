package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetProfilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		shell    ShellType
		expected string
		wantErr  bool
	}{
		{ShellZsh, filepath.Join(home, ".zshenv"), false},
		{ShellBash, filepath.Join(home, ".bashrc"), false},
		{ShellFish, filepath.Join(home, ".config", "fish", "config.fish"), false},
		{ShellAsh, filepath.Join(home, ".profile"), false},
		{ShellUnknown, "", true},
		{ShellType("tcsh"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.shell.String(), func(t *testing.T) {
			got, err := GetProfilePath(tt.shell)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("path mismatch:\ngot:  %s\nwant: %s", got, tt.expected)
			}
		})
	}
}

func TestPathLine(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	binDir := filepath.Join(home, ".cargo", "bin")

	tests := []struct {
		shell    ShellType
		expected string
	}{
		{ShellZsh, `export PATH="$HOME/.cargo/bin:$PATH"`},
		{ShellBash, `export PATH="$HOME/.cargo/bin:$PATH"`},
		{ShellAsh, `export PATH="$HOME/.cargo/bin:$PATH"`},
		{ShellFish, `fish_add_path -a "$HOME/.cargo/bin"`},
	}

	for _, tt := range tests {
		t.Run(tt.shell.String(), func(t *testing.T) {
			got, err := PathLine(tt.shell, binDir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("line mismatch:\ngot:  %s\nwant: %s", got, tt.expected)
			}
		})
	}

	if _, err := PathLine(ShellUnknown, binDir); err == nil {
		t.Error("expected error for unknown shell")
	}
}

func TestPathLineOutsideHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := PathLine(ShellBash, "/opt/tools/bin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != `export PATH="/opt/tools/bin:$PATH"` {
		t.Errorf("unexpected line: %s", got)
	}
}

func TestOnPath(t *testing.T) {
	tests := []struct {
		name    string
		pathEnv string
		dir     string
		want    bool
	}{
		{"present", "/usr/bin:/home/u/.cargo/bin:/bin", "/home/u/.cargo/bin", true},
		{"present_first", "/home/u/.cargo/bin:/bin", "/home/u/.cargo/bin", true},
		{"present_last", "/bin:/home/u/.cargo/bin", "/home/u/.cargo/bin", true},
		{"absent", "/usr/bin:/bin", "/home/u/.cargo/bin", false},
		{"substring_not_segment", "/home/u/.cargo/bin2:/bin", "/home/u/.cargo/bin", false},
		{"trailing_slash_segment", "/home/u/.cargo/bin/:/bin", "/home/u/.cargo/bin", true},
		{"empty_path", "", "/home/u/.cargo/bin", false},
		{"empty_dir", "/usr/bin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnPath(tt.pathEnv, tt.dir); got != tt.want {
				t.Errorf("OnPath(%q, %q) = %v, want %v", tt.pathEnv, tt.dir, got, tt.want)
			}
		})
	}
}

func TestHasPathLine(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	binDir := filepath.Join(home, ".cargo", "bin")

	t.Run("missing_file", func(t *testing.T) {
		has, err := HasPathLine(filepath.Join(home, ".bashrc"), binDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if has {
			t.Error("expected false for missing file")
		}
	})

	t.Run("without_line", func(t *testing.T) {
		profile := filepath.Join(home, ".bashrc")
		if err := os.WriteFile(profile, []byte("alias ll='ls -l'\n"), 0644); err != nil {
			t.Fatal(err)
		}

		has, err := HasPathLine(profile, binDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if has {
			t.Error("expected false for profile without the line")
		}
	})

	t.Run("with_marker", func(t *testing.T) {
		profile := filepath.Join(home, ".zshenv")
		content := "alias ll='ls -l'\n\n" + PathLineMarker + "\nexport PATH=\"$HOME/.cargo/bin:$PATH\"\n"
		if err := os.WriteFile(profile, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		has, err := HasPathLine(profile, binDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !has {
			t.Error("expected true for profile with marker")
		}
	})

	t.Run("with_hand_written_line", func(t *testing.T) {
		profile := filepath.Join(home, ".profile")
		content := `export PATH="$HOME/.cargo/bin:$PATH"` + "\n"
		if err := os.WriteFile(profile, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		has, err := HasPathLine(profile, binDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !has {
			t.Error("expected true for hand-written equivalent line")
		}
	})
}

func TestAppendPathLine(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("creates_missing_file", func(t *testing.T) {
		profile := filepath.Join(home, ".bashrc")
		line := `export PATH="$HOME/.cargo/bin:$PATH"`

		if err := AppendPathLine(profile, line); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(profile)
		if err != nil {
			t.Fatalf("read profile: %v", err)
		}

		if !strings.Contains(string(content), line) {
			t.Errorf("profile missing PATH line:\n%s", content)
		}
		if !strings.Contains(string(content), PathLineMarker) {
			t.Errorf("profile missing marker:\n%s", content)
		}
	})

	t.Run("preserves_existing_content", func(t *testing.T) {
		profile := filepath.Join(home, ".zshenv")
		existing := "# my zsh config\nalias gs='git status'"
		if err := os.WriteFile(profile, []byte(existing), 0644); err != nil {
			t.Fatal(err)
		}

		line := `export PATH="$HOME/.cargo/bin:$PATH"`
		if err := AppendPathLine(profile, line); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content := string(mustRead(t, profile))
		if !strings.HasPrefix(content, existing) {
			t.Errorf("existing content not preserved:\n%s", content)
		}
		if !strings.Contains(content, line) {
			t.Errorf("PATH line not appended:\n%s", content)
		}
	})

	t.Run("creates_fish_config_dirs", func(t *testing.T) {
		profile := filepath.Join(home, ".config", "fish", "config.fish")
		line := `fish_add_path -a "$HOME/.cargo/bin"`

		if err := AppendPathLine(profile, line); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(string(mustRead(t, profile)), line) {
			t.Error("fish config missing PATH line")
		}
	})
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return content
}
