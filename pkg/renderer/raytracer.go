package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
	"github.com/prenoma/go-whitted-raytracer/pkg/scene"
)

// surfaceEpsilon pushes secondary ray origins off the surface so they don't
// immediately re-intersect it
const surfaceEpsilon = 0.0012

// airRefractiveIndex marks rays traveling outside any object
const airRefractiveIndex = 1.0

// Config contains rendering configuration
type Config struct {
	MaxDepth      int           // Maximum recursion depth for reflection/transmission
	ShadowSamples int           // Shadow rays per light (1 = hard shadows)
	TimeBudget    time.Duration // Wall-clock budget per RenderChunk call
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:      10,
		ShadowSamples: 1,
		TimeBudget:    16 * time.Millisecond,
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene by recursive Whitted-style ray casting
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	random *rand.Rand
	logger core.Logger
	stats  RenderStats
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  s,
		camera: NewCamera(s.ViewportOrigin, s.ViewportXAxis, s.ViewportYAxis, s.EyePosition),
		config: config,
		random: rand.New(rand.NewSource(42)), // Deterministic for testing
		logger: logger,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

// unitNormal normalizes a hit normal only when it isn't already unit length
func unitNormal(normal core.Vec3) core.Vec3 {
	if almostEqual(normal.LengthSquared(), 1.0) {
		return normal
	}
	return normal.Normalize()
}

// fresnel computes the power reflectance at the interface between two media
// from their refractive indices (ni, nt), magnetic permeabilities (ui, ut)
// and the cosine of the incidence angle. Returns 1 under total internal
// reflection. The result is always in [0, 1].
// https://en.wikipedia.org/wiki/Fresnel_equations#Power_(intensity)_reflection_and_transmission_coefficients
func fresnel(ni, nt, ui, ut, cosThetaI float64) float64 {
	nit := ni / nt
	uit := ui / ut

	determinant := 1.0 - nit*nit*(1.0-cosThetaI*cosThetaI)
	if determinant < 0 {
		return 1.0
	}

	cosThetaT := math.Sqrt(determinant)

	perpendicular := (nit*cosThetaI - uit*cosThetaT) / (nit*cosThetaI + uit*cosThetaT)
	parallel := (uit*cosThetaI - nit*cosThetaT) / (uit*cosThetaI + nit*cosThetaT)

	return 0.5 * (perpendicular*perpendicular + parallel*parallel)
}

// reflectDirection mirrors the incident direction about the normal
func reflectDirection(normal, incident core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2.0 * incident.Dot(normal))).Normalize()
}

// transmitDirection solves Snell's law for the refracted direction. The
// from vector points away from the surface against the incident ray.
// Returns false when no transmission direction exists.
func transmitDirection(nit float64, normal, from core.Vec3) (core.Vec3, bool) {
	fDotN := from.Dot(normal)
	cosT := 1.0 - nit*nit*(1.0-fDotN*fDotN)

	if cosT <= 0 {
		return core.Vec3{}, false
	}

	transmission := math.Sqrt(cosT)
	if fDotN >= 0 {
		transmission = -transmission
	}

	return normal.Multiply(transmission + nit*fDotN).
		Subtract(from.Multiply(nit)).
		Normalize(), true
}

// localIllumination computes ambient plus direct lighting at a hit point.
// The specular weight comes from the caller's Fresnel split so highlight
// intensity follows mirror reflectance.
func (rt *Raytracer) localIllumination(ray core.Ray, intersection core.Intersection, material core.Material, specular float64) core.Vec3 {
	normal := unitNormal(intersection.Normal)
	position := ray.At(intersection.T)

	out := rt.scene.Ambient

	// Jump slightly off the surface so shadow feelers don't hit it
	feelerOrigin := position.Add(normal.Multiply(surfaceEpsilon))

	for _, light := range rt.scene.Lights {
		lightDisplacement := light.Center.Subtract(position)

		shadow := 1.0
		if rt.config.ShadowSamples <= 1 || almostEqual(light.Radius, 0) {
			// Binary shadow from a single feeler at the light center
			if rt.scene.IntersectShadow(core.NewRay(feelerOrigin, lightDisplacement)) {
				shadow = 0.0
			}
		} else {
			shadow = rt.softShadow(feelerOrigin, position, light, lightDisplacement)
		}

		// Diffuse term
		lightDir := lightDisplacement.Normalize()
		nDotL := math.Max(0, normal.Dot(lightDir))
		out = out.Add(material.Diffuse.MultiplyVec(light.Color).Multiply(shadow * nDotL))

		// Phong specular: reflect the light direction about the normal
		reflected := normal.Multiply(2.0 * normal.Dot(lightDir)).Subtract(lightDir)
		if vDotL := ray.Direction.Dot(reflected.Negate()); vDotL > 0 {
			out = out.Add(light.Color.Multiply(math.Pow(vDotL, material.SpecularPower) * specular))
		}
	}

	return out
}

// softShadow estimates the unoccluded fraction of an area light by sampling
// shadow feelers across the light's disk, oriented to face the hit point
func (rt *Raytracer) softShadow(feelerOrigin, position core.Vec3, light core.Light, lightDisplacement core.Vec3) float64 {
	axis1 := lightDisplacement.Cross(core.NewVec3(0, 0, 1))
	if almostEqual(axis1.LengthSquared(), 0) {
		// Light direction is parallel to the reference axis
		axis1 = lightDisplacement.Cross(core.NewVec3(0, 1, 0))
	}
	axis1 = axis1.Normalize()
	axis2 := lightDisplacement.Cross(axis1).Normalize()

	unoccluded := 0
	for i := 0; i < rt.config.ShadowSamples; i++ {
		p := core.RandomInUnitDisk(rt.random).Multiply(light.Radius)
		target := light.Center.Add(axis1.Multiply(p.X)).Add(axis2.Multiply(p.Y))

		if !rt.scene.IntersectShadow(core.NewRay(feelerOrigin, target.Subtract(position))) {
			unoccluded++
		}
	}

	return float64(unoccluded) / float64(rt.config.ShadowSamples)
}

// castRay traces a ray through the scene and returns its color. ni is the
// refractive index of the medium the ray is currently traveling in; air
// (1.0) means direct lighting applies and transmission enters the hit
// material, anything else means the ray is inside an object on its way out.
func (rt *Raytracer) castRay(ray core.Ray, depth int, ni float64) core.Vec3 {
	if depth == 0 {
		return core.Vec3{}
	}

	intersection, material, ok := rt.scene.Intersect(ray)
	if !ok {
		return core.Vec3{}
	}

	inAir := almostEqual(ni, airRefractiveIndex)

	nt, ui, ut := airRefractiveIndex, 1.0, 1.0
	attenuation := rt.scene.AirAttenuation
	if inAir {
		nt = material.IndexOfRefraction
		ut = material.MagneticPermeability
	} else {
		// Traveling inside the object: transmission exits to air and the
		// medium's own absorption applies
		ui = material.MagneticPermeability
		attenuation = material.Attenuation
	}

	normal := unitNormal(intersection.Normal)

	reflectance := fresnel(ni, nt, ui, ut, math.Abs(ray.Direction.Dot(normal)))
	reflectionWeight := material.SpecularCoefficient * reflectance
	transmissionWeight := material.SpecularCoefficient * (1.0 - reflectance)

	var color core.Vec3

	// Direct lighting only applies to light arriving from outside a surface
	if inAir {
		color = color.Add(rt.localIllumination(ray, intersection, material, reflectionWeight))
	}

	if depth > 1 {
		if !almostEqual(reflectionWeight, 0) {
			offset := surfaceEpsilon
			if !inAir {
				offset = -surfaceEpsilon
			}
			reflected := core.NewRay(
				ray.At(intersection.T).Add(normal.Multiply(offset)),
				reflectDirection(normal, ray.Direction),
			)
			color = color.Add(rt.castRay(reflected, depth-1, ni).Multiply(reflectionWeight))
		}

		if !almostEqual(transmissionWeight, 0) {
			if direction, ok := transmitDirection(ni/nt, normal, ray.Direction.Negate()); ok {
				offset := -surfaceEpsilon
				if !inAir {
					offset = surfaceEpsilon
				}
				transmitted := core.NewRay(
					ray.At(intersection.T).Add(normal.Multiply(offset)),
					direction,
				)
				color = color.Add(rt.castRay(transmitted, depth-1, nt).Multiply(transmissionWeight))
			}
		}
	}

	// Exponential absorption over the distance traveled in the current medium
	return color.MultiplyVec(attenuation.Pow(intersection.T))
}
