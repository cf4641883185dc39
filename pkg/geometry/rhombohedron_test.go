package geometry

import (
	"math"
	"testing"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
)

func TestRhombohedron_Intersect_EntryAndExit(t *testing.T) {
	// Unit cube from the origin
	box := NewRhombohedron(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		testMaterial(),
	)

	// Along the length edge from just outside the entry face
	ray := core.NewRay(core.NewVec3(-0.5, 0.5, 0.5), core.NewVec3(1, 0, 0))

	enter, ok := box.Intersect(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected entry hit, but got miss")
	}
	if math.Abs(enter.T-0.5) > 1e-9 {
		t.Errorf("Expected entry at t=0.5, got t=%f", enter.T)
	}

	// Continue from inside to find the exit; the traversal distance between
	// entry and exit must match the edge length over the direction magnitude
	inside := core.NewRay(ray.At(enter.T+1e-9), ray.Direction)
	exit, ok := box.Intersect(inside, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected exit hit from inside, but got miss")
	}

	if math.Abs(exit.T-1.0) > 1e-6 {
		t.Errorf("Expected traversal distance 1.0, got %f", exit.T)
	}
}

func TestRhombohedron_Intersect_SpeedScalesT(t *testing.T) {
	box := NewRhombohedron(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		testMaterial(),
	)

	// Direction magnitude 2 halves all t values
	ray := core.NewRay(core.NewVec3(-0.5, 0.5, 0.5), core.NewVec3(2, 0, 0))

	enter, ok := box.Intersect(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(enter.T-0.25) > 1e-9 {
		t.Errorf("Expected entry at t=0.25, got t=%f", enter.T)
	}
}

func TestRhombohedron_Intersect_InsideReportsExitNormal(t *testing.T) {
	box := NewRhombohedron(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		testMaterial(),
	)

	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1, 0, 0))
	hit, ok := box.Intersect(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected hit from inside, but got miss")
	}

	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected exit at t=0.5, got t=%f", hit.T)
	}
	if !vecsAlmostEqual(hit.Normal, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected exit-face normal (1,0,0), got %v", hit.Normal)
	}
}

func TestRhombohedron_Intersect_ParallelOutsideMisses(t *testing.T) {
	box := NewRhombohedron(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		testMaterial(),
	)

	// Parallel to the top face and above it
	ray := core.NewRay(core.NewVec3(-2, 2, 0.5), core.NewVec3(1, 0, 0))
	if _, ok := box.Intersect(ray, math.MaxFloat64); ok {
		t.Error("Expected miss for parallel ray outside the slab")
	}
}

func TestRhombohedron_Intersect_Oblique(t *testing.T) {
	// Skewed box: length leans into z
	box := NewRhombohedron(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, -0.5),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		testMaterial(),
	)

	// Straight down through the middle of the top face
	ray := core.NewRay(core.NewVec3(0.5, 2, 0.25), core.NewVec3(0, -1, 0))
	hit, ok := box.Intersect(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected hit on oblique box, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected entry at t=1, got t=%f", hit.T)
	}
}
