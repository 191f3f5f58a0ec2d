package binary

// Tool represents a binary installed by rzup-init.
type Tool string

const (
	// ToolRzup is the rzup toolchain manager binary.
	ToolRzup Tool = "rzup"
)

// String returns the string representation of the tool.
func (t Tool) String() string {
	return string(t)
}

const (
	// DefaultUpdateRoot is the fixed release location binaries are
	// downloaded from when RZUP_BINARY_UPDATE_ROOT is not set.
	DefaultUpdateRoot = "https://risc0.github.io/rzup/dist"

	// UpdateRootEnv overrides the download base URL.
	UpdateRootEnv = "RZUP_BINARY_UPDATE_ROOT"
)

// DownloadInfo contains metadata needed to download a tool binary.
type DownloadInfo struct {
	Tool Tool
	Tag  string // canonical "{cpu}-{os}" architecture tag
	URL  string // constructed download URL
}

// InstallResult contains information about a completed installation.
type InstallResult struct {
	// Path is the final location of the installed binary.
	Path string
	// ReplacedPrior is true when a previously installed binary was
	// removed before the new one was placed.
	ReplacedPrior bool
}
