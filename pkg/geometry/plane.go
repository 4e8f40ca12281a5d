package geometry

import (
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// planeExtent bounds an infinite plane for BVH purposes
const planeExtent = 1e6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3 // unit length
}

// NewPlane creates a new plane; the normal is normalized
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	rec := &core.HitRecord{T: t, Point: ray.At(t)}
	rec.SetFaceNormal(ray, p.Normal)
	return rec, true
}

// BoundingBox returns a thin slab for axis-aligned planes and a huge cube
// otherwise
func (p *Plane) BoundingBox() core.AABB {
	const thickness = 0.001

	lo := core.NewVec3(-planeExtent, -planeExtent, -planeExtent)
	hi := core.NewVec3(planeExtent, planeExtent, planeExtent)

	switch {
	case math.Abs(p.Normal.X) > 0.999:
		lo.X, hi.X = p.Point.X-thickness, p.Point.X+thickness
	case math.Abs(p.Normal.Y) > 0.999:
		lo.Y, hi.Y = p.Point.Y-thickness, p.Point.Y+thickness
	case math.Abs(p.Normal.Z) > 0.999:
		lo.Z, hi.Z = p.Point.Z-thickness, p.Point.Z+thickness
	}
	return core.NewAABB(lo, hi)
}
