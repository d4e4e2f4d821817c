package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// NewCheckerboardImageTexture creates an image texture with a 2D checkerboard pattern.
// Unlike CheckerTexture this follows the surface UV parametrization.
func NewCheckerboardImageTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	return newGeneratedTexture(width, height, func(x, y int) core.Vec3 {
		// Alternate colors based on check position
		if (x/checkSize+y/checkSize)%2 == 0 {
			return color1
		}
		return color2
	})
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red, V maps to green (V=1 at the top row).
func NewUVDebugTexture(width, height int) *ImageTexture {
	return newGeneratedTexture(width, height, func(x, y int) core.Vec3 {
		u := float64(x) / float64(max(1, width-1))
		v := 1.0 - float64(y)/float64(max(1, height-1))
		return core.NewVec3(u, v, 0.0)
	})
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	return newGeneratedTexture(width, height, func(x, y int) core.Vec3 {
		t := float64(y) / float64(max(1, height-1))
		return color1.Lerp(color2, t)
	})
}

// newGeneratedTexture quantizes a per-pixel color function into an RGB byte buffer
func newGeneratedTexture(width, height int, pixel func(x, y int) core.Vec3) *ImageTexture {
	data := make([]byte, width*height*loaders.BytesPerPixel)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixel(x, y).Clamp(0, 1)
			offset := (y*width + x) * loaders.BytesPerPixel
			data[offset] = byte(255*c.X + 0.5)
			data[offset+1] = byte(255*c.Y + 0.5)
			data[offset+2] = byte(255*c.Z + 0.5)
		}
	}
	return NewImageTexture(width, height, data)
}
