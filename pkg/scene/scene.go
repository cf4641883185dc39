package scene

import (
	"fmt"
	"math"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
	"github.com/prenoma/go-whitted-raytracer/pkg/geometry"
)

// AntiAliasType selects the per-pixel primary ray sampling strategy
type AntiAliasType int

const (
	// AANone casts a single ray per pixel
	AANone AntiAliasType = iota
	// AASuperSample casts a deterministic rate x rate grid of rays
	AASuperSample
	// AAMonteCarlo casts rate x rate rays at uniform random offsets
	AAMonteCarlo
)

// String returns the name used in scene description files
func (a AntiAliasType) String() string {
	switch a {
	case AASuperSample:
		return "SuperSample"
	case AAMonteCarlo:
		return "MonteCarlo"
	default:
		return "None"
	}
}

// MarshalText implements encoding.TextMarshaler
func (a AntiAliasType) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *AntiAliasType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "None":
		*a = AANone
	case "SuperSample":
		*a = AASuperSample
	case "MonteCarlo":
		*a = AAMonteCarlo
	default:
		return fmt.Errorf("unknown anti-alias type %q", string(text))
	}
	return nil
}

// Scene owns the shape collections, lights and camera setup for a render.
// It is read-only once rendering begins.
type Scene struct {
	Spheres       []*geometry.Sphere
	Ellipsoids    []*geometry.Ellipsoid
	Rhombohedrons []*geometry.Rhombohedron
	Polygons      []*geometry.Polygon

	Lights []core.Light

	Ambient        core.Vec3
	AirAttenuation core.Vec3

	// Image plane: a point plus the two basis vectors spanning it, and the
	// eye the primary rays originate from
	ViewportOrigin core.Vec3
	ViewportXAxis  core.Vec3
	ViewportYAxis  core.Vec3
	EyePosition    core.Vec3

	AAType AntiAliasType
	AARate int

	Width  int
	Height int
}

// Intersect finds the nearest hit along the ray across all shape
// collections. Collections are tried in a fixed order (spheres, ellipsoids,
// rhombohedrons, polygons), so later collections win equal-distance ties.
func (s *Scene) Intersect(ray core.Ray) (core.Intersection, core.Material, bool) {
	return s.intersect(ray, false, math.MaxFloat64)
}

// IntersectShadow reports whether anything occludes the ray before it
// reaches the light. Shadow ray directions are raw displacements to the
// light, so t=1 is the light itself; the search stops at the first hit.
func (s *Scene) IntersectShadow(ray core.Ray) bool {
	_, _, hit := s.intersect(ray, true, 1.0)
	return hit
}

func (s *Scene) intersect(ray core.Ray, breakOnHit bool, maxT float64) (core.Intersection, core.Material, bool) {
	var nearest core.Intersection
	var material core.Material
	found := false

	for _, shape := range s.Spheres {
		if hit, ok := shape.Intersect(ray, maxT); ok {
			maxT, nearest, material, found = hit.T, hit, shape.Material, true
			if breakOnHit {
				return nearest, material, true
			}
		}
	}

	for _, shape := range s.Ellipsoids {
		if hit, ok := shape.Intersect(ray, maxT); ok {
			maxT, nearest, material, found = hit.T, hit, shape.Material, true
			if breakOnHit {
				return nearest, material, true
			}
		}
	}

	for _, shape := range s.Rhombohedrons {
		if hit, ok := shape.Intersect(ray, maxT); ok {
			maxT, nearest, material, found = hit.T, hit, shape.Material, true
			if breakOnHit {
				return nearest, material, true
			}
		}
	}

	for _, shape := range s.Polygons {
		if hit, ok := shape.Intersect(ray, maxT); ok {
			maxT, nearest, material, found = hit.T, hit, shape.Material, true
			if breakOnHit {
				return nearest, material, true
			}
		}
	}

	return nearest, material, found
}
