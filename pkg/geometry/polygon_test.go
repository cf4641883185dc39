package geometry

import (
	"math"
	"testing"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

func TestNewPolygon_TooFewVertices(t *testing.T) {
	_, err := NewPolygon([]core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
	}, testMaterial())

	if err == nil {
		t.Error("Expected error for polygon with 2 vertices, got nil")
	}
}

func TestPolygon_Intersect_Quad(t *testing.T) {
	// Unit quad in the y=0 plane, fanned into two triangles
	polygon, err := NewPolygon([]core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 0, -2),
		core.NewVec3(-1, 0, -2),
		core.NewVec3(-1, 0, 0),
	}, testMaterial())
	if err != nil {
		t.Fatalf("NewPolygon failed: %v", err)
	}

	if len(polygon.Triangles) != 2 {
		t.Fatalf("Expected 2 fan triangles, got %d", len(polygon.Triangles))
	}

	tests := []struct {
		name      string
		rayOrigin core.Vec3
		expectHit bool
	}{
		{"inside first fan triangle", core.NewVec3(0.5, 1, -1.5), true},
		{"inside second fan triangle", core.NewVec3(-0.5, 1, -0.5), true},
		{"on the plane but outside", core.NewVec3(2, 1, -1), false},
		{"outside along z", core.NewVec3(0, 1, -3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, core.NewVec3(0, -1, 0))
			hit, ok := polygon.Intersect(ray, math.MaxFloat64)

			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.expectHit, ok)
			}
			if ok && math.Abs(hit.T-1.0) > 1e-9 {
				t.Errorf("Expected t=1, got t=%f", hit.T)
			}
		})
	}
}

func TestPolygon_Intersect_ParallelRay(t *testing.T) {
	polygon, err := NewPolygon([]core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
	}, testMaterial())
	if err != nil {
		t.Fatalf("NewPolygon failed: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))
	if _, ok := polygon.Intersect(ray, math.MaxFloat64); ok {
		t.Error("Expected parallel ray to miss")
	}
}
