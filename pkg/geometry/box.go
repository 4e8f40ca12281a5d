package geometry

import (
	"github.com/df07/go-raytracer-lights/pkg/core"
)

// Box is an axis-aligned box made up of 6 quads
type Box struct {
	Center core.Vec3
	Size   core.Vec3 // half-extents
	faces  [6]*Quad
}

// NewBox creates a box around center. Size holds half-extents, so a size
// of (1,1,1) creates a 2x2x2 box.
func NewBox(center, size core.Vec3) *Box {
	b := &Box{Center: center, Size: size}

	lo := center.Subtract(size)
	dx := core.NewVec3(2*size.X, 0, 0)
	dy := core.NewVec3(0, 2*size.Y, 0)
	dz := core.NewVec3(0, 0, 2*size.Z)
	hi := lo.Add(dx).Add(dy).Add(dz)

	b.faces = [6]*Quad{
		NewQuad(lo, dz, dy),                           // -X
		NewQuad(lo.Add(dx), dy, dz),                   // +X
		NewQuad(lo, dx, dz),                           // -Y
		NewQuad(lo.Add(dy), dz, dx),                   // +Y
		NewQuad(lo, dy, dx),                           // -Z
		NewQuad(hi.Subtract(dx).Subtract(dy), dx, dy), // +Z
	}
	return b
}

// Hit returns the closest face intersection
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	for _, face := range b.faces {
		if rec, ok := face.Hit(ray, tMin, closestT); ok {
			closestT = rec.T
			closest = rec
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.Center.Subtract(b.Size), b.Center.Add(b.Size))
}
