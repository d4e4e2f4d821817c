package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// DefaultCheckerFrequency is the sine frequency used by NewCheckerTexture
const DefaultCheckerFrequency = 10.0

// CheckerTexture alternates between two textures in a 3D grid of cells.
// The pattern depends only on the world point, so it shows on any surface orientation.
// Odd and Even may be shared with other textures.
type CheckerTexture struct {
	Odd       core.Texture
	Even      core.Texture
	Frequency float64
}

// NewCheckerTexture creates a checker over two sub-textures
func NewCheckerTexture(odd, even core.Texture) *CheckerTexture {
	return NewCheckerTextureScale(odd, even, DefaultCheckerFrequency)
}

// NewCheckerTextureScale creates a checker with a custom sine frequency; cells are π/frequency wide
func NewCheckerTextureScale(odd, even core.Texture, frequency float64) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Frequency: frequency}
}

// NewCheckerColors creates a checker between two solid colors
func NewCheckerColors(odd, even core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even))
}

// Value delegates to Odd where sin(fx)·sin(fy)·sin(fz) is negative, Even otherwise
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	f := c.Frequency
	sines := math.Sin(f*point.X) * math.Sin(f*point.Y) * math.Sin(f*point.Z)
	if sines < 0 {
		return c.Odd.Value(uv, point)
	}
	return c.Even.Value(uv, point)
}
