package geometry

import (
	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

// Rhombohedron represents an oblique box as the intersection of 6
// half-spaces with outward-facing plane normals
type Rhombohedron struct {
	// Construction parameters, retained for scene serialization
	Corner core.Vec3
	Length core.Vec3
	Width  core.Vec3
	Height core.Vec3

	Planes   [6]Plane
	Material core.Material
}

// NewRhombohedron creates a rhombohedron from a corner point and the three
// edge vectors leaving it
func NewRhombohedron(corner, length, width, height core.Vec3, material core.Material) *Rhombohedron {
	n0 := length.Cross(height).Normalize()
	n2 := height.Cross(width).Normalize()
	n4 := width.Cross(length).Normalize()

	return &Rhombohedron{
		Corner: corner,
		Length: length,
		Width:  width,
		Height: height,
		Planes: [6]Plane{
			{Point: corner, Normal: n0},
			{Point: corner.Add(width), Normal: n0.Negate()},
			{Point: corner, Normal: n2},
			{Point: corner.Add(length), Normal: n2.Negate()},
			{Point: corner, Normal: n4},
			{Point: corner.Add(height), Normal: n4.Negate()},
		},
		Material: material,
	}
}

// Intersect tests if a ray intersects with the rhombohedron within
// [0, maxT] using a slab test generalized to oblique axes: the entry/exit
// interval is tightened against each bounding plane in turn.
func (r *Rhombohedron) Intersect(ray core.Ray, maxT float64) (core.Intersection, bool) {
	tNear, tFar := 0.0, maxT
	var nearNormal, farNormal core.Vec3

	for _, plane := range r.Planes {
		dDotN := ray.Direction.Dot(plane.Normal)
		opDotN := ray.Origin.Subtract(plane.Point).Dot(plane.Normal)

		switch {
		case dDotN < 0:
			// Ray enters through this plane
			if t := -opDotN / dDotN; t > tNear {
				tNear = t
				nearNormal = plane.Normal
			}
		case dDotN > 0:
			// Ray exits through this plane
			if t := -opDotN / dDotN; t < tFar {
				tFar = t
				farNormal = plane.Normal
			}
		case opDotN > 0:
			// Parallel to the plane and outside the half-space
			return core.Intersection{}, false
		}
	}

	if tNear > tFar {
		return core.Intersection{}, false
	}

	// tNear still at 0 means the ray origin is inside the box, so the exit
	// point is the visible hit
	t, normal := tNear, nearNormal
	if tNear == 0 {
		t, normal = tFar, farNormal
	}

	if t > maxT {
		return core.Intersection{}, false
	}

	return core.Intersection{T: t, Normal: normal}, true
}
