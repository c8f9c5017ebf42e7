package standalone

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/user-none/libview/standalone/storage"
)

// ScreenshotManager handles taking and saving screenshots
type ScreenshotManager struct {
	notification *Notification
}

// NewScreenshotManager creates a new screenshot manager
func NewScreenshotManager(notification *Notification) *ScreenshotManager {
	return &ScreenshotManager{
		notification: notification,
	}
}

// screenshotName returns the file name for a capture taken at t. Captures
// within the same second get a numeric suffix so none is overwritten.
func screenshotName(dir string, t time.Time) string {
	base := fmt.Sprintf("%d", t.Unix())
	name := base + ".png"
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s-%d.png", base, i)
	}
}

// TakeScreenshot saves screen as a PNG in the screenshots directory and
// returns the written path.
func (m *ScreenshotManager) TakeScreenshot(screen image.Image, now time.Time) (string, error) {
	screenshotDir, err := storage.GetScreenshotDir()
	if err != nil {
		return "", err
	}

	// Ensure directory exists
	if err := os.MkdirAll(screenshotDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	fullPath := filepath.Join(screenshotDir, screenshotName(screenshotDir, now))

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, screen); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}

	if m.notification != nil {
		m.notification.ShowDefault("Screenshot saved")
	}
	return fullPath, nil
}
