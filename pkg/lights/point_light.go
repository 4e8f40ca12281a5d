package lights

import (
	"fmt"
	"strings"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// Default decay factors for a point light
const (
	DefaultKq = 0.01
	DefaultKl = 0.1
	DefaultKc = 1.0
)

// PointLight is an omnidirectional light at a fixed position whose
// intensity falls off as 1/(kc + kl·d + kq·d²). Build one with
// PointLightBuilder.
type PointLight struct {
	intensity core.Vec3
	position  core.Vec3
	kq        float64 // quadratic decay
	kl        float64 // linear decay
	kc        float64 // constant decay
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Intensity returns the unattenuated intensity
func (pl *PointLight) Intensity() core.Vec3 {
	return pl.intensity
}

// Position returns the light's position
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// DecayFactors returns the quadratic, linear and constant decay factors
func (pl *PointLight) DecayFactors() (kq, kl, kc float64) {
	return pl.kq, pl.kl, pl.kc
}

// RayToward returns a ray from point to the light's position. The ray
// reaches the light at parameter 1.
func (pl *PointLight) RayToward(point core.Vec3) core.Ray {
	return core.NewRayTo(point, pl.position)
}

// IntensityAt returns the attenuated intensity at point. rayToLight is not
// used by the falloff.
func (pl *PointLight) IntensityAt(point core.Vec3, rayToLight core.Ray) core.Vec3 {
	d := point.Distance(pl.position)
	return pl.intensity.Multiply(1.0 / pl.attenuation(d))
}

// attenuation is always >= kc > 0 for a built light. Factored so a zero kq
// never multiplies an overflowed d*d.
func (pl *PointLight) attenuation(d float64) float64 {
	return pl.kc + d*(pl.kl+pl.kq*d)
}

// IsOccludedBy reports whether surface is hit strictly closer to the ray's
// origin than the light is. A hit exactly at the light's distance does not
// occlude. Panics if surface returns a hit the ray cannot resolve.
func (pl *PointLight) IsOccludedBy(surface core.Surface, rayToLight core.Ray) bool {
	return mustOcclusion(pl.CheckOcclusion(surface, rayToLight))
}

// CheckOcclusion is IsOccludedBy returning surface contract violations as
// errors instead of panicking
func (pl *PointLight) CheckOcclusion(surface core.Surface, rayToLight core.Ray) (bool, error) {
	if rayToLight.IsDegenerate() {
		return false, nil
	}

	hitPoint, ok, err := nearestHitPoint(surface, rayToLight)
	if err != nil || !ok {
		return false, err
	}

	origin := rayToLight.Origin
	return origin.DistanceSquared(hitPoint) < origin.DistanceSquared(pl.position), nil
}

func (pl *PointLight) String() string {
	var b strings.Builder
	b.WriteString("Point Light:\n")
	fmt.Fprintf(&b, "Intensity: %v\n", pl.intensity)
	fmt.Fprintf(&b, "Position: %v\n", pl.position)
	fmt.Fprintf(&b, "Decay factors: kq = %g, kl = %g, kc = %g\n", pl.kq, pl.kl, pl.kc)
	return b.String()
}
