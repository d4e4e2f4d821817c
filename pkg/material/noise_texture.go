package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NoiseTexture maps a scaled Perlin field to a grayscale color in [0, 1]
type NoiseTexture struct {
	Scale float64
	noise *Perlin
}

// NewNoiseTexture creates a noise texture with its own Perlin lattice drawn from random
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{Scale: scale, noise: NewPerlin(random)}
}

// Value returns 0.5·(1 + noise(p·scale)) in every channel
func (n *NoiseTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	gray := 0.5 * (1.0 + n.noise.Noise(point.Multiply(n.Scale)))
	return core.NewVec3(gray, gray, gray)
}

// TurbulenceTexture is a marble-like pattern: a sine wave along z phase-shifted by turbulence
type TurbulenceTexture struct {
	Scale float64
	Depth int
	noise *Perlin
}

// NewTurbulenceTexture creates a marble texture using depth octaves of turbulence
func NewTurbulenceTexture(scale float64, depth int, random *rand.Rand) *TurbulenceTexture {
	return &TurbulenceTexture{Scale: scale, Depth: depth, noise: NewPerlin(random)}
}

// Value returns a grayscale marble value in [0, 1]
func (m *TurbulenceTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	gray := 0.5 * (1.0 + math.Sin(m.Scale*point.Z+10*m.noise.Turbulence(point, m.Depth)))
	return core.NewVec3(gray, gray, gray)
}
