package material

import (
	"github.com/df07/go-weekend-tracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The bounce direction is the surface normal offset by a uniformly sampled
// point on the unit sphere, which approximates cosine-weighted diffuse
// reflection. Lambertian surfaces never absorb the ray.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler).Vec3)

	// The random offset can cancel the normal almost exactly, which would
	// normalize a near-zero vector into NaNs. Fall back to the normal.
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal.Vec3
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
