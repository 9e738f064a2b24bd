package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/Eearslya/Rake/pkg/core"
	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe" // Radiance HDR decoder
)

// ImageData contains decoded image data as a linear color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// LoadImage decodes a PNG, JPEG, or Radiance HDR image into a color
// array. LDR sources are mapped to [0, 1]; HDR sources keep their full
// float range.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	if hdrImg, ok := img.(hdr.Image); ok {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := hdrImg.HDRAt(x+bounds.Min.X, y+bounds.Min.Y).HDRRGBA()
				pixels[y*width+x] = core.NewVec3(r, g, b)
			}
		}
	} else {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
				// RGBA returns uint32 in [0, 65535]
				pixels[y*width+x] = core.NewVec3(
					float64(r)/65535.0,
					float64(g)/65535.0,
					float64(b)/65535.0,
				)
			}
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
