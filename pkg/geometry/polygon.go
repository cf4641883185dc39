package geometry

import (
	"fmt"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

// Polygon represents a planar convex polygon fanned into triangles from
// its first vertex. The supporting plane takes its normal from the first
// triangle.
type Polygon struct {
	Vertices  []core.Vec3
	Plane     Plane
	Triangles []Triangle
	Material  core.Material
}

// NewPolygon creates a polygon from an ordered vertex loop
func NewPolygon(vertices []core.Vec3, material core.Material) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("polygon requires at least 3 vertices, got %d", len(vertices))
	}

	triangles := make([]Triangle, 0, len(vertices)-2)
	for i := 1; i < len(vertices)-1; i++ {
		triangles = append(triangles, NewTriangle(vertices[0], vertices[i], vertices[i+1]))
	}

	return &Polygon{
		Vertices: vertices,
		Plane: Plane{
			Point:  vertices[0],
			Normal: triangles[0].Normal(),
		},
		Triangles: triangles,
		Material:  material,
	}, nil
}

// Intersect tests if a ray intersects with the polygon within [0, maxT].
// The supporting plane is intersected first; the hit point is then tested
// against each triangle of the fan, first containing triangle wins.
func (p *Polygon) Intersect(ray core.Ray, maxT float64) (core.Intersection, bool) {
	intersection, ok := p.Plane.Intersect(ray, maxT)
	if !ok {
		return core.Intersection{}, false
	}

	point := ray.At(intersection.T)
	for _, triangle := range p.Triangles {
		if triangle.Contains(point) {
			return intersection, true
		}
	}

	return core.Intersection{}, false
}
