package geometry

import (
	"math"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3     `json:"center"`
	Radius   float64       `json:"radius"`
	Material core.Material `json:"material"`
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the sphere within [0, maxT)
func (s *Sphere) Intersect(ray core.Ray, maxT float64) (core.Intersection, bool) {
	return intersectSphere(ray, s.Center, s.Radius, maxT)
}

// intersectSphere solves the full quadratic against a sphere. The normal is
// left unnormalized (hit point minus center). Also used by Ellipsoid for
// the unit sphere in its local space.
func intersectSphere(ray core.Ray, center core.Vec3, radius, maxT float64) (core.Intersection, bool) {
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4.0*a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return core.Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2.0 * a)
	t2 := (-b + sqrtD) / (2.0 * a)

	switch {
	case t2 < 0:
		// Sphere is entirely behind the ray origin
		return core.Intersection{}, false
	case t1 < 0:
		// Ray origin is inside the sphere: the far root is the visible hit
		if t2 < maxT {
			return core.Intersection{T: t2, Normal: ray.At(t2).Subtract(center)}, true
		}
	default:
		if t1 < maxT {
			return core.Intersection{T: t1, Normal: ray.At(t1).Subtract(center)}, true
		}
	}

	return core.Intersection{}, false
}
