package lights

import (
	"fmt"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// nearestHitPoint asks surface for its intersection with ray and resolves
// the hit to a point
func nearestHitPoint(surface core.Surface, ray core.Ray) (core.Vec3, bool, error) {
	hit, ok := surface.Intersect(ray)
	if !ok {
		return core.Vec3{}, false, nil
	}

	point, err := ray.PointAtHit(hit)
	if err != nil {
		return core.Vec3{}, false, fmt.Errorf("surface %T returned a bad hit: %w", surface, err)
	}
	return point, true, nil
}

// mustOcclusion turns a surface contract violation into a panic. A
// misreported shadow would go unnoticed in every pixel it touches.
func mustOcclusion(occluded bool, err error) bool {
	if err != nil {
		panic(err)
	}
	return occluded
}
