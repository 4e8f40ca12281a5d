package lights

import "github.com/df07/go-raytracer-lights/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is a source a shading routine can query for incoming intensity
// and shadowing. Implementations are immutable once constructed and safe
// for concurrent use.
type Light interface {
	Type() LightType

	// RayToward returns a ray from point toward the light
	RayToward(point core.Vec3) core.Ray

	// IsOccludedBy reports whether surface blocks rayToLight before it
	// reaches the light
	IsOccludedBy(surface core.Surface, rayToLight core.Ray) bool

	// IntensityAt returns the light's intensity arriving at point
	IntensityAt(point core.Vec3, rayToLight core.Ray) core.Vec3
}
