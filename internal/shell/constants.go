package shell

// Markers written alongside the managed PATH line
const (
	// PathLineMarker is the comment that precedes the managed PATH line,
	// used to recognize an earlier append on re-runs.
	PathLineMarker = "# added by rzup-init"
)
