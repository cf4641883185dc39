package scene

import (
	"math"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
	"github.com/prenoma/go-whitted-raytracer/pkg/geometry"
)

// NewDefaultScene creates the built-in demo scene: a shiny sphere, a glass
// rhombohedron, a tall ellipsoid and a floor polygon under two area lights.
func NewDefaultScene() *Scene {
	opaque := func(diffuse core.Vec3, specular, power float64) core.Material {
		return core.Material{
			Diffuse:              diffuse,
			SpecularCoefficient:  specular,
			SpecularPower:        power,
			Attenuation:          core.NewVec3(0, 0, 0),
			ElectricPermittivity: 1e6,
			MagneticPermeability: 1.0,
			IndexOfRefraction:    1000.0,
		}
	}

	s := &Scene{}

	s.Spheres = append(s.Spheres, geometry.NewSphere(
		core.NewVec3(0.5, 0.25, -0.5),
		0.25,
		opaque(core.NewVec3(0.5, 0.7, 0.5), 0.3, 70.0),
	))

	glass := core.Material{
		Diffuse:              core.NewVec3(0.3, 0.3, 0.5),
		SpecularCoefficient:  0.8,
		SpecularPower:        20.0,
		Attenuation:          core.NewVec3(0.5, 0.5, 0.5),
		ElectricPermittivity: 2.3716,
		MagneticPermeability: 1.0,
		IndexOfRefraction:    math.Sqrt(2.3716),
	}
	s.Rhombohedrons = append(s.Rhombohedrons, geometry.NewRhombohedron(
		core.NewVec3(-0.2623, 0.001, -0.7042),
		core.NewVec3(0.6495, 0, -0.375),
		core.NewVec3(-0.125, 0, -0.2165),
		core.NewVec3(0, 0.75, 0),
		glass,
	))

	floor, err := geometry.NewPolygon([]core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 0, -2),
		core.NewVec3(-1, 0, -2),
		core.NewVec3(-1, 0, 0),
	}, opaque(core.NewVec3(0.6, 0.6, 0.6), 0.4, 20.0))
	if err != nil {
		panic(err) // static vertices, cannot fail
	}
	s.Polygons = append(s.Polygons, floor)

	ellipsoid, err := geometry.NewEllipsoid(
		core.NewVec3(-0.5, 0.5, -1.5),
		[3]core.Vec3{
			core.NewVec3(0.25, 0, 0),
			core.NewVec3(0, 0.5, 0),
			core.NewVec3(0, 0, 0.25),
		},
		opaque(core.NewVec3(0.7, 0.5, 0.5), 0.3, 70.0),
	)
	if err != nil {
		panic(err) // static axes, cannot fail
	}
	s.Ellipsoids = append(s.Ellipsoids, ellipsoid)

	s.Lights = append(s.Lights,
		core.Light{
			Center: core.NewVec3(-1, 1, 0),
			Radius: 0.1,
			Color:  core.NewVec3(1, 1, 1),
		},
		core.Light{
			Center: core.NewVec3(0.75, 0.5, 0),
			Radius: 0.2,
			Color:  core.NewVec3(0.8, 0.8, 0.8),
		},
	)

	s.Ambient = core.NewVec3(0, 0, 0)
	s.AirAttenuation = core.NewVec3(1, 1, 1)

	s.ViewportOrigin = core.NewVec3(0.0267612, 0.846193, -0.14023)
	s.ViewportXAxis = core.NewVec3(0.343626, -0.274153, 0.238247)
	s.ViewportYAxis = core.NewVec3(0.362222, 0.234501, -0.252595)
	s.EyePosition = s.ViewportOrigin.Add(core.NewVec3(0.0535224, 0.692386, 0.719539))

	s.AAType = AASuperSample
	s.AARate = 1

	// Keep pixels square: derive the height from the viewport axis lengths
	s.Width = 860
	s.Height = int(float64(s.Width) * s.ViewportYAxis.Length() / s.ViewportXAxis.Length())

	return s
}
