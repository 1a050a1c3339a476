package geometry

import (
	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/material"
)

// World is an ordered collection of hittable objects searched linearly.
// Insertion order never changes the result (only distance matters) but is
// kept stable so renders are deterministic under a fixed seed.
type World struct {
	Objects []Hittable
}

// NewWorld creates a world containing the given objects
func NewWorld(objects ...Hittable) *World {
	return &World{Objects: objects}
}

// Add appends an object to the world
func (w *World) Add(objects ...Hittable) {
	w.Objects = append(w.Objects, objects...)
}

// Hit finds the closest intersection within [tMin, tMax). Each candidate
// hit narrows the upper bound for the remaining objects, so a single pass
// returns the nearest hit regardless of insertion order.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
