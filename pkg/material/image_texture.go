package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("texture")

// MissingTextureColor is the debug color returned by an ImageTexture that has no pixel data
var MissingTextureColor = core.NewVec3(1, 0, 0)

// ImageTexture provides color from an owned RGB byte buffer using nearest-neighbor lookup
type ImageTexture struct {
	width  int
	height int
	data   []byte // Row-major interleaved RGB, row 0 is the top of the image
}

// NewImageTexture creates a texture over interleaved RGB bytes.
// A buffer that does not match width and height leaves the texture empty.
func NewImageTexture(width, height int, data []byte) *ImageTexture {
	if width <= 0 || height <= 0 || len(data) < width*height*loaders.BytesPerPixel {
		logger.Warningf("image texture: %d bytes cannot hold a %dx%d RGB image", len(data), width, height)
		return &ImageTexture{}
	}
	return &ImageTexture{width: width, height: height, data: data}
}

// LoadImageTexture decodes filename into a texture.
// Decode failures are logged and produce an empty texture that renders MissingTextureColor.
func LoadImageTexture(filename string) *ImageTexture {
	img, err := loaders.LoadRGB(filename)
	if err != nil {
		logger.Warningf("could not load texture image: %v", err)
		return &ImageTexture{}
	}
	return NewImageTexture(img.Width, img.Height, img.Data)
}

// HasData reports whether the texture holds decoded pixels
func (t *ImageTexture) HasData() bool {
	return t.data != nil
}

// Size returns the image dimensions, zero for an empty texture
func (t *ImageTexture) Size() (width, height int) {
	return t.width, t.height
}

// Value samples the texture at UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.data == nil {
		return MissingTextureColor
	}

	// Clamp UV to [0, 1]; V=0 is bottom, V=1 is top so flip V for image rows
	u := clamp(uv.X, 0, 1)
	v := 1.0 - clamp(uv.Y, 0, 1)

	x := int(u * float64(t.width))
	y := int(v * float64(t.height))

	// u or v of exactly 1.0 maps one past the last pixel
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}

	offset := (y*t.width + x) * loaders.BytesPerPixel
	pixel := t.data[offset : offset+loaders.BytesPerPixel]

	return core.NewVec3(
		float64(pixel[0])/255,
		float64(pixel[1])/255,
		float64(pixel[2])/255,
	)
}

// clamp limits x to [lo, hi]; NaN maps to lo
func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return max(lo, min(hi, x))
}
