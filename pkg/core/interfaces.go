package core

// Hit is the result of a ray intersecting a surface. Only the ray
// parameter is carried; the point is recovered with Ray.PointAtHit.
type Hit struct {
	T float64
}

// Surface is anything a shadow ray can be tested against
type Surface interface {
	// Intersect returns the nearest intersection along the ray's forward
	// direction, or false when there is none
	Intersect(ray Ray) (Hit, bool)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3    // Point of intersection
	Normal    Vec3    // Surface normal at intersection
	T         float64 // Parameter t along the ray
	FrontFace bool    // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}
