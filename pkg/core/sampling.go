package core

import (
	"math"
	"math/rand"
)

// Sampler provides random values for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a deterministic sampler from a seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere maps a 2D sample uniformly onto the unit sphere surface
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// RandomUnitVector draws a uniformly distributed unit direction.
// The z/phi mapping lands on the sphere surface analytically, so the
// result is unit length without renormalizing.
func RandomUnitVector(sampler Sampler) UnitVec {
	return unitUnchecked(SampleOnUnitSphere(sampler.Get2D()))
}

// SampleUnitSquare returns a jitter offset uniform in [-0.5, 0.5)²
func SampleUnitSquare(sampler Sampler) Vec2 {
	s := sampler.Get2D()
	return NewVec2(s.X-0.5, s.Y-0.5)
}
