// Package hook runs the user's optional post-install Lua script.
//
// The hook is the installer's only user extension point: when
// ~/.config/rzup-init/post-install.lua exists it runs in a fresh Lua state
// with read-only platform and install tables injected. A missing hook is a
// silent no-op and a failing hook is a warning, never a fatal error; the
// binary is already installed by the time the hook runs.
package hook

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/ZebulonRouseFrantzich/rzup-init/internal/platform"
)

// DefaultRelPath is the hook script location relative to the home directory.
const DefaultRelPath = ".config/rzup-init/post-install.lua"

// Install describes the completed installation, exposed to the hook as the
// read-only `install` table.
type Install struct {
	BinDir     string // directory the binary was installed into
	BinaryPath string // full path of the installed binary
	Tag        string // architecture tag the binary was selected by
}

// Path returns the hook script path, or empty when the home directory
// cannot be determined.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, filepath.FromSlash(DefaultRelPath))
}

// Run executes the hook script at path. A missing script returns (false,
// nil); an existing script that fails returns (true, err) so the caller can
// downgrade the failure to a warning.
func Run(path string, info *platform.Info, install Install) (ran bool, err error) {
	if path == "" {
		return false, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat hook script: %w", err)
	}

	L := lua.NewState()
	defer L.Close()

	if err := platform.InjectPlatformTable(L, info); err != nil {
		return true, fmt.Errorf("inject platform table: %w", err)
	}

	injectInstallTable(L, install)

	if err := L.DoFile(path); err != nil {
		return true, fmt.Errorf("run hook script: %w", err)
	}

	return true, nil
}

// injectInstallTable exposes installation results to the hook as a
// read-only `install` global.
func injectInstallTable(L *lua.LState, install Install) {
	installTable := L.NewTable()
	L.SetField(installTable, "bin_dir", lua.LString(install.BinDir))
	L.SetField(installTable, "binary_path", lua.LString(install.BinaryPath))
	L.SetField(installTable, "tag", lua.LString(install.Tag))

	L.SetGlobal("install", platform.MakeReadOnly(L, installTable))
}
