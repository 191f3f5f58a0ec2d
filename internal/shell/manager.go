package shell

import "fmt"

// Manager orchestrates shell PATH setup
type Manager struct {
	binDir string
}

// NewManager creates a new shell manager
func NewManager(config Config) (*Manager, error) {
	if config.BinDir == "" {
		return nil, fmt.Errorf("BinDir is required")
	}

	return &Manager{
		binDir: config.BinDir,
	}, nil
}

// SetupPath ensures the bin dir reaches PATH for the given shell. The line
// is appended only when the bin dir is absent from both the live PATH value
// and the profile file's contents; checking the file closes the stale-PATH
// window where two runs in one unsourced session would both append.
func (m *Manager) SetupPath(shell ShellType, pathEnv string) (*Result, error) {
	if err := ValidateShell(shell); err != nil {
		return nil, err
	}

	profilePath, err := GetProfilePath(shell)
	if err != nil {
		return nil, fmt.Errorf("get profile path: %w", err)
	}

	line, err := PathLine(shell, m.binDir)
	if err != nil {
		return nil, fmt.Errorf("generate PATH line: %w", err)
	}

	result := &Result{
		Shell:   shell,
		Profile: profilePath,
		Line:    line,
	}

	if OnPath(pathEnv, m.binDir) {
		result.AlreadyOnPath = true
		return result, nil
	}

	inProfile, err := HasPathLine(profilePath, m.binDir)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}

	if inProfile {
		result.AlreadyInProfile = true
		return result, nil
	}

	if err := AppendPathLine(profilePath, line); err != nil {
		return nil, fmt.Errorf("append PATH line: %w", err)
	}

	result.Added = true
	return result, nil
}

// DetectAndSetup detects the user's shell and runs SetupPath for it.
// An unrecognized shell returns UnsupportedShellError; the caller treats
// that as a warning and leaves PATH unmanaged.
func (m *Manager) DetectAndSetup(pathEnv string) (*Result, error) {
	detection, err := DetectShell()
	if err != nil {
		return nil, fmt.Errorf("detect shell: %w", err)
	}

	if !detection.Shell.IsValid() {
		name := detection.ShellPath
		if name == "" {
			name = detection.Shell.String()
		}
		return nil, &UnsupportedShellError{Shell: name}
	}

	return m.SetupPath(detection.Shell, pathEnv)
}
