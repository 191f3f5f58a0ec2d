package binary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 5 * time.Minute
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "rzup-init/1.0"
)

// ProgressFunc wraps a response body for progress display. It returns the
// reader to consume and a function to finalize the display.
type ProgressFunc func(r io.Reader, size int64) (io.Reader, func())

// Downloader performs single-shot HTTP downloads. There is no retry: a
// transient network failure and an unsupported platform are handled
// identically, as a fatal error.
type Downloader struct {
	client    *http.Client
	userAgent string

	// Progress, when set, wraps the response body for progress display.
	Progress ProgressFunc
}

// NewDownloader creates a new downloader.
func NewDownloader() *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Allow up to 10 redirects
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
	}
}

// DownloadToFile downloads a URL to a destination path. The body is staged
// through a temporary file and renamed into place, so a failed download
// leaves nothing behind.
func (d *Downloader) DownloadToFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	tmpPath := destPath + ".tmp"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	// Track whether we need to clean up the temp file
	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath) // Clean up on error
		}
	}()

	body := io.Reader(resp.Body)
	finish := func() {}
	if d.Progress != nil {
		body, finish = d.Progress(resp.Body, resp.ContentLength)
	}

	written, err := io.Copy(tmpFile, body)
	finish()
	if err != nil {
		return fmt.Errorf("copy response body: %w", err)
	}

	if written == 0 {
		return fmt.Errorf("empty response body")
	}

	if resp.ContentLength > 0 && written != resp.ContentLength {
		return fmt.Errorf("short body: got %d of %d bytes", written, resp.ContentLength)
	}

	// Close temp file before rename
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	// Success - don't clean up the temp file (it's been renamed)
	cleanupNeeded = false
	return nil
}

// DownloadTool downloads a tool binary into the staging directory and
// returns the staged path.
func (d *Downloader) DownloadTool(ctx context.Context, info *DownloadInfo, stageDir string) (string, error) {
	if info == nil {
		return "", fmt.Errorf("download info is nil")
	}

	stagePath := filepath.Join(stageDir, info.Tool.String())

	if err := d.DownloadToFile(ctx, info.URL, stagePath); err != nil {
		return "", fmt.Errorf("download %s: %w", info.Tool, err)
	}

	return stagePath, nil
}
