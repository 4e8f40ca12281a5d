package geometry

import (
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// ShadowEpsilon is the smallest ray parameter accepted as an intersection.
// It keeps a shading point lying on a shape from occluding itself.
const ShadowEpsilon = 0.001

// Surface adapts a Shape to core.Surface so lights can shadow-test it
type Surface struct {
	shape core.Shape
	tMin  float64
}

// NewSurface wraps shape with the default ShadowEpsilon
func NewSurface(shape core.Shape) *Surface {
	return &Surface{shape: shape, tMin: ShadowEpsilon}
}

// NewSurfaceWithEpsilon wraps shape with a caller-chosen minimum parameter
func NewSurfaceWithEpsilon(shape core.Shape, tMin float64) *Surface {
	return &Surface{shape: shape, tMin: tMin}
}

// NewSceneSurface builds a BVH over shapes and wraps it as one Surface
func NewSceneSurface(shapes ...core.Shape) *Surface {
	return NewSurface(core.NewBVH(shapes))
}

// Intersect returns the nearest forward intersection with the wrapped shape
func (s *Surface) Intersect(ray core.Ray) (core.Hit, bool) {
	rec, ok := s.shape.Hit(ray, s.tMin, math.Inf(1))
	if !ok {
		return core.Hit{}, false
	}
	return core.Hit{T: rec.T}, true
}
