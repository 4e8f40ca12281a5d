package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnresolvableHit is returned when a hit cannot be mapped to a point on its ray
var ErrUnresolvableHit = errors.New("hit cannot be resolved on ray")

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayTo creates a ray from origin toward target. The direction is left
// unnormalized so that At(1) lands exactly on target.
func NewRayTo(origin, target Vec3) Ray {
	return Ray{Origin: origin, Direction: target.Subtract(origin)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// PointAtHit returns the point of intersection described by hit
func (r Ray) PointAtHit(hit Hit) (Vec3, error) {
	if math.IsNaN(hit.T) || math.IsInf(hit.T, 0) || hit.T < 0 {
		return Vec3{}, fmt.Errorf("%w: t=%v", ErrUnresolvableHit, hit.T)
	}
	return r.At(hit.T), nil
}

// IsDegenerate reports whether the ray has no direction
func (r Ray) IsDegenerate() bool {
	return r.Direction.IsZero()
}
