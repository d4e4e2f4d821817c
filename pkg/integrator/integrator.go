package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance carried back along ray from world, following at most depth bounces
	RayColor(ray core.Ray, world core.Shape, sampler core.Sampler, depth int) core.Vec3
}
