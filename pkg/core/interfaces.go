package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the intersection with t in [tMin, tMax], or false on a miss
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns the box enclosing the shape over the time window [time0, time1].
	// Returns false if the shape has no finite bounds.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter returns the attenuation and outgoing ray, or false when the ray is absorbed
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinate uv and world point
	Value(uv Vec2, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, always facing against the ray
	Outward   Vec3     // Geometric outward normal (flipped for negative-radius spheres)
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	UV        Vec2     // Surface coordinate for texture lookup
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.Outward = outwardNormal
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
