package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func TestLoadImagePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, path)

	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if data.Width != 2 || data.Height != 1 {
		t.Fatalf("Expected 2x1 image, got %dx%d", data.Width, data.Height)
	}
	if math.Abs(data.Pixels[0].X-1.0) > 1e-3 || data.Pixels[0].Y > 1e-3 {
		t.Errorf("Expected red first pixel, got %v", data.Pixels[0])
	}
	if math.Abs(data.Pixels[1].Y-1.0) > 1e-3 || data.Pixels[1].X > 1e-3 {
		t.Errorf("Expected green second pixel, got %v", data.Pixels[1])
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage("does/not/exist.png"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadImageBadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadImage(path); err == nil {
		t.Error("Expected a decode error for garbage data")
	}
}
