package geometry

import (
	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and a unit normal
type Plane struct {
	Point  core.Vec3 `json:"point"`
	Normal core.Vec3 `json:"normal"`
}

// Intersect tests if a ray intersects with the plane within [0, maxT].
// Rays exactly parallel to the plane never hit.
func (p Plane) Intersect(ray core.Ray, maxT float64) (core.Intersection, bool) {
	dDotN := ray.Direction.Dot(p.Normal)
	if dDotN == 0 {
		return core.Intersection{}, false
	}

	t := -(ray.Origin.Dot(p.Normal) - p.Normal.Dot(p.Point)) / dDotN
	if t < 0 || t > maxT {
		return core.Intersection{}, false
	}

	return core.Intersection{T: t, Normal: p.Normal}, true
}
