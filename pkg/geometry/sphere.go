package geometry

import (
	"math"

	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere within [tMin, tMax).
//
// Ray directions are unit length, so the quadratic at² + bt + c = 0 has
// a = 1, and substituting b = -2h reduces the roots to h ∓ √(h² - c).
// The nearer root is tried first; the farther one only qualifies when the
// ray starts inside the sphere or the near intersection is out of range.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	q := s.Center.Subtract(ray.Origin)

	h := ray.Direction.Dot(q)
	c := q.Dot(q) - s.Radius*s.Radius

	discriminant := h*h - c
	if discriminant < 0 {
		return nil, false
	}

	// A grazing ray has discriminant ≈ 0 and a double root; it falls out
	// of the same selection below, no special case needed.
	sqrtD := math.Sqrt(discriminant)

	root := h - sqrtD
	if root < tMin || root >= tMax {
		root = h + sqrtD
		if root < tMin || root >= tMax {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal points from center to hit point
	outwardNormal := core.NewUnitVec(hit.Point.Subtract(s.Center))
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
