package integrator

import (
	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/geometry"
)

const (
	// MinHitDistance is the near clip for bounce rays. A bounce ray starts
	// exactly on the surface it just left; querying from zero would re-hit
	// that surface through floating-point rounding (shadow acne).
	MinHitDistance = 0.001

	// MaxHitDistance bounds the intersection search
	MaxHitDistance = 1e7
)

// PathTracer recursively evaluates light transport along a ray
type PathTracer struct {
	topColor    core.Vec3 // Sky color at the zenith
	bottomColor core.Vec3 // Sky color at the horizon
}

// NewPathTracer creates a path tracer with the given background gradient
func NewPathTracer(topColor, bottomColor core.Vec3) *PathTracer {
	return &PathTracer{topColor: topColor, bottomColor: bottomColor}
}

// NewDefaultPathTracer creates a path tracer with the white-to-blue sky
func NewDefaultPathTracer() *PathTracer {
	return NewPathTracer(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// RayColor computes the linear-space color for a ray by recursive sampling
// of material bounces, bounded by the remaining bounce budget.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, MinHitDistance, MaxHitDistance)
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	incoming := pt.RayColor(scatter.Scattered, world, sampler, depth-1)
	return scatter.Attenuation.MultiplyVec(incoming)
}

// backgroundGradient returns a vertical gradient based on ray direction
func (pt *PathTracer) backgroundGradient(r core.Ray) core.Vec3 {
	// Map direction.Y from [-1, 1] to [0, 1]
	t := 0.5 * (r.Direction.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.bottomColor.Multiply(1.0 - t).Add(pt.topColor.Multiply(t))
}
