package material

import (
	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/loaders"
)

// missingTextureColor is sampled when a texture has no pixel data, as a
// deterministic failure signal
var missingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a decoded image. A texture with no
// pixels samples as cyan.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates an image texture from decoded pixel data
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// LoadImageTexture loads an image file into a texture. Load failures
// are logged and recovered: the returned texture samples as cyan.
func LoadImageTexture(filename string, logger core.Logger) (*ImageTexture, error) {
	data, err := loaders.LoadImage(filename)
	if err != nil {
		if logger != nil {
			logger.Printf("ImageTexture: failed to open texture file %s: %v\n", filename, err)
		}
		return &ImageTexture{}, err
	}

	return NewImageTexture(data.Width, data.Height, data.Pixels), nil
}

// Sample returns the nearest-neighbor pixel at the given UV coordinates.
// U is clamped to [0,1]; V is flipped so image-space origin is top-left.
func (t *ImageTexture) Sample(uv core.Vec2, p core.Vec3) core.Vec3 {
	if len(t.Pixels) == 0 {
		return missingTextureColor
	}

	u := max(0.0, min(1.0, uv.X))
	v := 1.0 - max(0.0, min(1.0, uv.Y))

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
