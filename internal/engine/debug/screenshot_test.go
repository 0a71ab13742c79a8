package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFlipRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (GL order is bottom-up).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows: %v", err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("expected blue at top, got r=%d b=%d", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("expected red at bottom, got r=%d b=%d", r, b)
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	if _, err := FlipRows(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
	if _, err := FlipRows(nil, 0, 0); err == nil {
		t.Error("expected error for empty size")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "cone")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }

	path, err := sc.CaptureFromPixels(make([]byte, 4*2*4), 4, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	want := filepath.Join(dir, "cone_2024-03-01_12-30-45.000.png")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening capture: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding capture: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 2 {
		t.Errorf("expected 4x2 image, got %dx%d", cfg.Width, cfg.Height)
	}
}
