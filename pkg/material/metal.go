package material

import (
	"github.com/df07/go-weekend-tracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering.
// Rays reflect about the normal; fuzz perturbs the mirror direction by a
// scaled random unit vector. A perturbed ray that dips below the surface
// is absorbed, which darkens rough metal at grazing angles.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Vec3, hit.Normal.Vec3)

	fuzzed := reflected.Normalize()
	if m.Fuzz > 0 {
		fuzzed = fuzzed.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))
	}

	if hit.Normal.Dot(fuzzed) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, fuzzed),
		Attenuation: m.Albedo,
	}, true
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
