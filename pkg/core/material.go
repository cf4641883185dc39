package core

// Material holds the optical properties of a surface.
// By convention IndexOfRefraction = sqrt(ElectricPermittivity *
// MagneticPermeability); this is not enforced.
type Material struct {
	Diffuse              Vec3    `json:"diffuse"`
	SpecularCoefficient  float64 `json:"specularCoefficient"`
	SpecularPower        float64 `json:"specularPower"`
	Attenuation          Vec3    `json:"attenuation"`
	ElectricPermittivity float64 `json:"electricPermittivity"`
	MagneticPermeability float64 `json:"magneticPermeability"`
	IndexOfRefraction    float64 `json:"indexOfRefraction"`
}

// Light represents a spherical area light. Radius 0 behaves as a point
// light and casts hard shadows.
type Light struct {
	Center Vec3    `json:"center"`
	Radius float64 `json:"radius"`
	Color  Vec3    `json:"color"`
}

// Intersection is the result of a ray/shape test: the distance along the
// ray and the surface normal at the hit point. The normal is not
// guaranteed to be unit length; the shader normalizes it lazily.
type Intersection struct {
	T      float64
	Normal Vec3
}
