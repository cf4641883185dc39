package geometry

import (
	"fmt"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

// Ellipsoid represents an affinely-transformed unit sphere. Rays are mapped
// into the unit-sphere local space by the precomputed inverse of the
// semi-axis matrix; normals map back through its inverse transpose.
type Ellipsoid struct {
	Center   core.Vec3
	SemiAxes [3]core.Vec3
	Material core.Material

	inverse          core.Matrix3x3
	inverseTranspose core.Matrix3x3
}

// NewEllipsoid creates an ellipsoid from its center and three semi-axis
// vectors. Fails if the semi-axes are linearly dependent.
func NewEllipsoid(center core.Vec3, semiAxes [3]core.Vec3, material core.Material) (*Ellipsoid, error) {
	m := core.NewMatrix3x3FromColumns(semiAxes[0], semiAxes[1], semiAxes[2])

	inverse, err := m.Inverse()
	if err != nil {
		return nil, fmt.Errorf("ellipsoid semi-axes are linearly dependent: %w", err)
	}

	return &Ellipsoid{
		Center:           center,
		SemiAxes:         semiAxes,
		Material:         material,
		inverse:          inverse,
		inverseTranspose: inverse.Transpose(),
	}, nil
}

// Intersect tests if a ray intersects with the ellipsoid within [0, maxT)
func (e *Ellipsoid) Intersect(ray core.Ray, maxT float64) (core.Intersection, bool) {
	// Transform the ray into a space where the ellipsoid is a unit sphere
	// centered at the origin
	localRay := core.Ray{
		Origin:    e.inverse.MulVec(ray.Origin.Subtract(e.Center)),
		Direction: e.inverse.MulVec(ray.Direction),
	}

	intersection, ok := intersectSphere(localRay, core.Vec3{}, 1.0, maxT)
	if !ok {
		return core.Intersection{}, false
	}

	return core.Intersection{
		T:      intersection.T,
		Normal: e.inverseTranspose.MulVec(intersection.Normal).Normalize(),
	}, true
}
