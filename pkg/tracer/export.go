package tracer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/Eearslya/Rake/pkg/core"
)

// ExportPNG gamma-encodes a linear color buffer and writes it as an
// 8-bit RGBA PNG
func ExportPNG(filename string, width, height int, pixels []core.Vec3) error {
	if len(pixels) < width*height {
		return fmt.Errorf("pixel buffer too small for %dx%d image", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, encodePixel(pixels[y*width+x]))
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	return nil
}

// encodePixel converts a linear color to display-space RGBA with
// gamma 2.0: c' = sqrt(clamp(c, 0, 1))
func encodePixel(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255 * math.Sqrt(c.X)),
		G: uint8(255 * math.Sqrt(c.Y)),
		B: uint8(255 * math.Sqrt(c.Z)),
		A: 255,
	}
}

// SavePNG snapshots the averaged buffer and writes it to a PNG on a
// detached goroutine, so export never blocks the trace or the consumer.
// The snapshot is taken synchronously; the file write is not.
func (t *Tracer) SavePNG(filename string) {
	t.tasksMutex.Lock()
	width, height := t.width, t.height
	snapshot := make([]core.Vec3, len(t.avgPixels))
	copy(snapshot, t.avgPixels)
	t.tasksMutex.Unlock()

	if len(snapshot) == 0 {
		t.logger.Printf("Tracer: no trace data to export\n")
		return
	}

	go func() {
		if err := ExportPNG(filename, width, height, snapshot); err != nil {
			t.logger.Printf("Tracer: failed to export %s: %v\n", filename, err)
			return
		}
		t.logger.Printf("Tracer: exported %s\n", filename)
	}()
}
