package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape.
// A negative radius keeps the geometry but flips the outward normal,
// which is how hollow glass shells are modeled.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return hitSphere(ray, tMin, tMax, s.Center, s.Radius, s.Material)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// hitSphere solves the ray/sphere quadratic and fills a hit record for the nearest root in range
func hitSphere(ray core.Ray, tMin, tMax float64, center core.Vec3, radius float64, material core.Material) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2(halfB)t + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 || radius == 0 {
		// No direction or no surface
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Divide(radius)
	u, v := SphereUV(outwardNormal)

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    point,
		UV:       core.NewVec2(u, v),
		Material: material,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// SphereUV maps a point on the unit sphere centered at the origin to texture coordinates.
// u wraps around the Y axis starting from X=-1, v runs from the bottom pole (0) to the top pole (1).
//
//	<1 0 0> yields <0.50 0.50>       <-1  0  0> yields <0.00 0.50>
//	<0 1 0> yields <0.50 1.00>       < 0 -1  0> yields <0.50 0.00>
//	<0 0 1> yields <0.25 0.50>       < 0  0 -1> yields <0.75 0.50>
func SphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}

// sphereBox returns the box of a sphere; corners are sorted so negative radii stay valid
func sphereBox(center core.Vec3, radius float64) core.AABB {
	extent := core.NewVec3(radius, radius, radius)
	return core.NewAABBFromPoints(center.Subtract(extent), center.Add(extent))
}
