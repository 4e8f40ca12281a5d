package lights

import "github.com/df07/go-raytracer-lights/pkg/core"

// Illuminate shadow-tests light at point against every occluder and
// returns the intensity it delivers. visible is false, with zero
// intensity, as soon as one occluder blocks the light.
func Illuminate(light Light, point core.Vec3, occluders ...core.Surface) (intensity core.Vec3, visible bool) {
	ray := light.RayToward(point)
	for _, occluder := range occluders {
		if light.IsOccludedBy(occluder, ray) {
			return core.Vec3{}, false
		}
	}
	return light.IntensityAt(point, ray), true
}

// Visible reports whether point receives light past every occluder
func Visible(light Light, point core.Vec3, occluders ...core.Surface) bool {
	_, visible := Illuminate(light, point, occluders...)
	return visible
}

// DirectLight returns the intensity light delivers to point, or zero when
// an occluder blocks it
func DirectLight(light Light, point core.Vec3, occluders ...core.Surface) core.Vec3 {
	intensity, _ := Illuminate(light, point, occluders...)
	return intensity
}
