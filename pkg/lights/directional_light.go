package lights

import (
	"fmt"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// DirectionalLight is a light infinitely far away: constant intensity,
// parallel rays. Any forward hit on a shadow ray occludes it.
type DirectionalLight struct {
	direction core.Vec3 // unit vector the light travels along
	intensity core.Vec3
}

// NewDirectionalLight creates a light travelling along direction
func NewDirectionalLight(direction, intensity core.Vec3) (*DirectionalLight, error) {
	if direction.IsZero() || !direction.IsFinite() {
		return nil, fmt.Errorf("directional light: %w: %v", ErrInvalidDirection, direction)
	}
	if !intensity.IsFinite() {
		return nil, fmt.Errorf("directional light: %w: intensity %v", ErrNonFinite, intensity)
	}
	return &DirectionalLight{direction: direction.Normalize(), intensity: intensity}, nil
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Direction returns the unit direction the light travels
func (dl *DirectionalLight) Direction() core.Vec3 {
	return dl.direction
}

// RayToward returns a unit-length ray from point back toward the light
func (dl *DirectionalLight) RayToward(point core.Vec3) core.Ray {
	return core.NewRay(point, dl.direction.Negate())
}

// IntensityAt returns the light's intensity; there is no falloff
func (dl *DirectionalLight) IntensityAt(point core.Vec3, rayToLight core.Ray) core.Vec3 {
	return dl.intensity
}

// IsOccludedBy reports whether surface is hit anywhere along rayToLight
func (dl *DirectionalLight) IsOccludedBy(surface core.Surface, rayToLight core.Ray) bool {
	return mustOcclusion(dl.CheckOcclusion(surface, rayToLight))
}

// CheckOcclusion is IsOccludedBy returning surface contract violations as errors
func (dl *DirectionalLight) CheckOcclusion(surface core.Surface, rayToLight core.Ray) (bool, error) {
	if rayToLight.IsDegenerate() {
		return false, nil
	}
	_, ok, err := nearestHitPoint(surface, rayToLight)
	return ok, err
}
