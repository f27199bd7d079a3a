package gfx

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thomasahle/trainbox"
)

// Screenshot asks for the next drawn frame to be saved as
// ScreenshotDir/<frame>_<label>.png, where frame counts Draw calls.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

func (s *Stage) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil

	// ebiten pixels are premultiplied, like image.RGBA, so they copy as is.
	frame := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(frame.Pix)

	for _, label := range labels {
		path, err := writeScreenshot(s.ScreenshotDir, screenshotName(s.frame, label), frame)
		if err != nil {
			trainbox.Logger().Warn("screenshot failed", "label", label, "err", err)
			continue
		}
		trainbox.Logger().Info("screenshot saved", "path", path)
	}
}

func writeScreenshot(dir, name string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := errors.Join(png.Encode(f, img), f.Close()); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// screenshotName builds a file name from the frame number and a label.
// Anything but letters, digits, '-' and '.' in the label becomes '_'.
func screenshotName(frame uint64, label string) string {
	label = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, strings.TrimSpace(label))
	if label == "" {
		return fmt.Sprintf("%06d.png", frame)
	}
	return fmt.Sprintf("%06d_%s.png", frame, label)
}
