package material

import (
	"math"

	"github.com/df07/go-weekend-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass or water
type Dielectric struct {
	Albedo          core.Vec3 // Tint, white for clear glass
	RefractiveIndex float64   // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a clear dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{
		Albedo:          core.NewVec3(1.0, 1.0, 1.0),
		RefractiveIndex: refractiveIndex,
	}
}

// NewTintedDielectric creates a dielectric material with a color tint
func NewTintedDielectric(albedo core.Vec3, refractiveIndex float64) *Dielectric {
	return &Dielectric{Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// A front-face hit enters the medium (eta = 1/n), a back-face hit exits it
// (eta = n). The ray refracts by Snell's law; when the refraction equation
// has no solution (total internal reflection) it mirror-reflects instead of
// producing a NaN direction. No Fresnel term, the ray is never absorbed.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	var eta float64
	if hit.FrontFace {
		eta = 1.0 / d.RefractiveIndex
	} else {
		eta = d.RefractiveIndex
	}

	direction, refracted := Refract(rayIn.Direction.Vec3, hit.Normal.Vec3, eta)
	if !refracted {
		direction = Reflect(rayIn.Direction.Vec3, hit.Normal.Vec3)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: d.Albedo,
	}, true
}

// Refract calculates the refraction of unit vector uv through a surface with
// normal n using Snell's law, where eta is the ratio of refractive indices.
// Returns false when the sqrt argument goes negative, i.e. total internal
// reflection, in which case no refracted direction exists.
func Refract(uv, n core.Vec3, eta float64) (core.Vec3, bool) {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	discriminant := 1.0 - (1.0-cosTheta*cosTheta)*eta*eta
	if discriminant < 0 {
		return core.Vec3{}, false
	}

	outPerp := uv.Add(n.Multiply(cosTheta)).Multiply(eta)
	outParallel := n.Negate().Multiply(math.Sqrt(discriminant))
	return outPerp.Add(outParallel), true
}
