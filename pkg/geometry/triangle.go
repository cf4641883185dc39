package geometry

import (
	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle with precomputed edge vectors and
// face normal, used as a containment tester for polygon fans
type Triangle struct {
	Vertices [3]core.Vec3
	edges    [2]core.Vec3
	normal   core.Vec3
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	edges := [2]core.Vec3{v1.Subtract(v0), v2.Subtract(v0)}
	return Triangle{
		Vertices: [3]core.Vec3{v0, v1, v2},
		edges:    edges,
		normal:   edges[0].Cross(edges[1]).Normalize(),
	}
}

// Normal returns the triangle's unit face normal
func (t Triangle) Normal() core.Vec3 {
	return t.normal
}

// Contains reports whether a point known to lie on the triangle's plane
// falls inside the triangle. Solves the 2x2 barycentric system from edge
// dot products; points exactly on an edge are treated as outside.
func (t Triangle) Contains(point core.Vec3) bool {
	aa := t.edges[0].Dot(t.edges[0])
	bb := t.edges[1].Dot(t.edges[1])
	ab := t.edges[0].Dot(t.edges[1])

	pc := point.Subtract(t.Vertices[0])
	invDet := 1.0 / (aa*bb - ab*ab)

	px := pc.Dot(t.edges[0])
	py := pc.Dot(t.edges[1])

	x := invDet * (bb*px - ab*py)
	y := invDet * (aa*py - ab*px)

	return x > 0 && y > 0 && x+y < 1
}
