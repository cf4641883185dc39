package renderer

import (
	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole camera: primary rays originate at the eye and pass
// through points on the viewport plane spanned by the two basis vectors.
type Camera struct {
	viewportOrigin core.Vec3
	xAxis          core.Vec3
	yAxis          core.Vec3
	eye            core.Vec3
}

// NewCamera creates a camera from a viewport basis and eye position
func NewCamera(viewportOrigin, xAxis, yAxis, eye core.Vec3) *Camera {
	return &Camera{
		viewportOrigin: viewportOrigin,
		xAxis:          xAxis,
		yAxis:          yAxis,
		eye:            eye,
	}
}

// RayThrough generates the primary ray through viewport coordinates (u, v)
// where -1 <= u,v <= 1
func (c *Camera) RayThrough(u, v float64) core.Ray {
	position := c.viewportOrigin.
		Add(c.xAxis.Multiply(u)).
		Add(c.yAxis.Multiply(v))

	return core.NewRay(c.eye, position.Subtract(c.eye).Normalize())
}
