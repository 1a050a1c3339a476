package core

// UnitVec is a Vec3 tagged with the invariant that its length is 1.
// The only exported constructor normalizes, so every value of this type
// reachable outside the package satisfies the invariant and consumers
// never need to renormalize.
type UnitVec struct {
	Vec3
}

// NewUnitVec normalizes v and tags it as a unit vector
func NewUnitVec(v Vec3) UnitVec {
	return UnitVec{v.Normalize()}
}

// unitUnchecked wraps a vector already known to have unit length.
// Unexported: callers inside the package must guarantee the invariant.
func unitUnchecked(v Vec3) UnitVec {
	return UnitVec{v}
}

// Flip returns the opposite unit direction
func (u UnitVec) Flip() UnitVec {
	return UnitVec{u.Vec3.Negate()}
}

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction UnitVec
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: NewUnitVec(direction)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
