package binary

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZebulonRouseFrantzich/rzup-init/internal/platform"
)

// UpdateRoot returns the release root URL, honoring the
// RZUP_BINARY_UPDATE_ROOT override.
func UpdateRoot() string {
	if root := os.Getenv(UpdateRootEnv); root != "" {
		return strings.TrimRight(root, "/")
	}
	return DefaultUpdateRoot
}

// ConstructDownloadInfo builds the download URL for a tool based on the
// resolved platform. Pattern: {root}/{tag}/{tool}
func ConstructDownloadInfo(tool Tool, root string, platformInfo *platform.Info) (*DownloadInfo, error) {
	if platformInfo == nil {
		return nil, fmt.Errorf("platform info is required")
	}

	tag := platformInfo.Tag()
	if tag == "" || platformInfo.Arch == "" || platformInfo.OS == "" {
		return nil, fmt.Errorf("empty architecture tag")
	}

	if root == "" {
		return nil, fmt.Errorf("release root is required")
	}

	return &DownloadInfo{
		Tool: tool,
		Tag:  tag,
		URL:  fmt.Sprintf("%s/%s/%s", strings.TrimRight(root, "/"), tag, tool),
	}, nil
}
