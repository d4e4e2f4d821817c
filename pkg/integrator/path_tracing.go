package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ShadowEpsilon is the minimum hit distance for every traced ray.
// It keeps scattered rays from re-hitting the surface they leave.
const ShadowEpsilon = 0.001

// DefaultSkyColor is the zenith color of the background gradient
var DefaultSkyColor = core.NewVec3(0.5, 0.7, 1.0)

// PathTracingIntegrator implements unidirectional path tracing against a sky gradient.
// The sky is the only light source: a path that never escapes the scene carries no light.
type PathTracingIntegrator struct {
	TopColor    core.Vec3 // Background color straight up
	BottomColor core.Vec3 // Background color straight down
}

// NewPathTracingIntegrator creates an integrator with the default white-to-blue sky
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return NewPathTracingIntegratorWithSky(DefaultSkyColor)
}

// NewPathTracingIntegratorWithSky creates an integrator blending from white at the horizon below to sky above
func NewPathTracingIntegratorWithSky(sky core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		TopColor:    sky,
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor computes the color for a single ray.
// Each bounce multiplies the material attenuation into the color gathered by the scattered ray.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	if hit.Material == nil {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
