package geometry

import (
	"math"
	"testing"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

func testMaterial() core.Material {
	return core.Material{
		Diffuse:              core.NewVec3(0.5, 0.5, 0.5),
		SpecularCoefficient:  0.3,
		SpecularPower:        20.0,
		Attenuation:          core.NewVec3(0, 0, 0),
		ElectricPermittivity: 1,
		MagneticPermeability: 1,
		IndexOfRefraction:    1,
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
	}{
		{
			name:         "perpendicular miss",
			rayOrigin:    core.NewVec3(2, 0, 0),
			rayDirection: core.NewVec3(0, 1, 0),
		},
		{
			name:         "pointing away",
			rayOrigin:    core.NewVec3(2, 0, 0),
			rayDirection: core.NewVec3(1, 0, 0),
		},
		{
			name:         "sphere entirely behind origin",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			if hit, ok := sphere.Intersect(ray, math.MaxFloat64); ok {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestSphere_Intersect_NearRootFromOutside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	// Through the center: roots at t=2 and t=4, near root reported
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected near root t=2, got t=%f", hit.T)
	}

	normal := hit.Normal.Normalize()
	if !vecsAlmostEqual(normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", normal)
	}
}

func TestSphere_Intersect_FarRootFromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected hit from inside, but got miss")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected far root t=1, got t=%f", hit.T)
	}
}

func TestSphere_Intersect_MaxTBound(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	if hit, ok := sphere.Intersect(ray, 1.5); ok {
		t.Errorf("Expected miss due to maxT bound, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Intersect_UnnormalizedDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	// Direction of length 2: t values halve
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -2))

	hit, ok := sphere.Intersect(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1 with direction of length 2, got t=%f", hit.T)
	}
}

func vecsAlmostEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
