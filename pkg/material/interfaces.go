package material

import (
	"github.com/df07/go-weekend-tracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter computes the material response to an incoming ray at a hit
	// point. Returns false when the ray is absorbed and the path ends.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The outgoing bounce ray
	Attenuation core.Vec3 // Color attenuation, multiplied in linear space
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3    // Point of intersection
	Normal    core.UnitVec // Surface normal, always opposing the incoming ray
	T         float64      // Parameter t along the ray
	FrontFace bool         // Whether the ray hit the front (outside) face
	Material  Material     // Material of the hit object
}

// SetFaceNormal orients the normal against the ray and records which face was hit.
// The geometric outward normal comes in; the stored normal points outward for
// front-face hits and inward when the ray started inside the object.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.UnitVec) {
	h.FrontFace = ray.Direction.Dot(outwardNormal.Vec3) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Flip()
	}
}
