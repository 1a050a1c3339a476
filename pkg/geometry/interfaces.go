package geometry

import (
	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/material"
)

// Hittable is the interface for objects that can be hit by rays.
// The valid parametric range is the half-open interval [tMin, tMax);
// an intersection exactly at tMax does not count. All implementations
// follow the same boundary policy.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
