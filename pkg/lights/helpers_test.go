package lights

import (
	"testing"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// surfaceFunc adapts a function to core.Surface
type surfaceFunc func(ray core.Ray) (core.Hit, bool)

func (f surfaceFunc) Intersect(ray core.Ray) (core.Hit, bool) {
	return f(ray)
}

// hitAt always reports a hit at parameter t
func hitAt(t float64) core.Surface {
	return surfaceFunc(func(core.Ray) (core.Hit, bool) {
		return core.Hit{T: t}, true
	})
}

// noHit never reports a hit
var noHit core.Surface = surfaceFunc(func(core.Ray) (core.Hit, bool) {
	return core.Hit{}, false
})

func mustBuildPointLight(t *testing.T, b *PointLightBuilder) *PointLight {
	t.Helper()
	light, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return light
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
