// Package binary downloads the prebuilt rzup binary and installs it into
// the user's cargo bin directory.
//
// # Download Model
//
// The binary is fetched with a single unauthenticated HTTPS GET from a
// release root, selected by the host's canonical architecture tag:
//
//	{root}/{tag}/rzup
//
// The root defaults to the official release location and can be overridden
// with the RZUP_BINARY_UPDATE_ROOT environment variable. There is no retry:
// any transport error, unexpected status, or short body aborts the install.
// Downloads are staged through a temporary file and renamed into place so a
// partial file never persists.
//
// # Install Model
//
// Installation is a blind overwrite: a prior binary at the destination is
// removed first, the staged artifact is made executable and verified to be
// executable, then moved into the bin directory. Prior and new binary never
// coexist at the destination.
//
// # Usage
//
//	installer := binary.NewInstaller(binDir)
//	result, err := installer.Install(stagedPath)
//
// # Architecture
//
// The package is organized into several components:
//   - Downloader: single-shot HTTP download with atomic staging
//   - Installer: prior-install removal, chmod, executable check, move
//   - Release: URL construction from the release root and platform tag
package binary
