package lights

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// PointLightBuilder collects point light settings. Build validates them and
// freezes the result into an immutable PointLight. A builder is not safe
// for concurrent use.
type PointLightBuilder struct {
	intensity    core.Vec3
	position     core.Vec3
	kq, kl, kc   float64
	hasIntensity bool
	hasPosition  bool
}

// NewPointLightBuilder returns a builder with the default decay factors
func NewPointLightBuilder() *PointLightBuilder {
	return &PointLightBuilder{kq: DefaultKq, kl: DefaultKl, kc: DefaultKc}
}

// WithIntensity sets the unattenuated intensity
func (b *PointLightBuilder) WithIntensity(intensity core.Vec3) *PointLightBuilder {
	b.intensity = intensity
	b.hasIntensity = true
	return b
}

// WithPosition sets the light's position
func (b *PointLightBuilder) WithPosition(position core.Vec3) *PointLightBuilder {
	b.position = position
	b.hasPosition = true
	return b
}

// WithDecayFactors sets the quadratic, linear and constant decay factors
func (b *PointLightBuilder) WithDecayFactors(kq, kl, kc float64) *PointLightBuilder {
	b.kq, b.kl, b.kc = kq, kl, kc
	return b
}

// Build validates the collected settings and returns the light. Every
// problem found is reported in the returned error.
func (b *PointLightBuilder) Build() (*PointLight, error) {
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("point light: %w", err)
	}

	return &PointLight{
		intensity: b.intensity,
		position:  b.position,
		kq:        b.kq,
		kl:        b.kl,
		kc:        b.kc,
	}, nil
}

// validate enforces kc > 0 and kl, kq >= 0, which keeps the attenuation
// denominator at or above kc for every distance
func (b *PointLightBuilder) validate() error {
	var err error

	if !b.hasIntensity {
		err = multierr.Append(err, fmt.Errorf("%w: intensity", ErrMissingField))
	} else if !b.intensity.IsFinite() {
		err = multierr.Append(err, fmt.Errorf("%w: intensity %v", ErrNonFinite, b.intensity))
	}

	if !b.hasPosition {
		err = multierr.Append(err, fmt.Errorf("%w: position", ErrMissingField))
	} else if !b.position.IsFinite() {
		err = multierr.Append(err, fmt.Errorf("%w: position %v", ErrNonFinite, b.position))
	}

	for _, f := range []struct {
		name     string
		value    float64
		positive bool
	}{
		{"kq", b.kq, false},
		{"kl", b.kl, false},
		{"kc", b.kc, true},
	} {
		switch {
		case math.IsNaN(f.value) || math.IsInf(f.value, 0):
			err = multierr.Append(err, fmt.Errorf("%w: %s = %v", ErrNonFinite, f.name, f.value))
		case f.positive && f.value <= 0:
			err = multierr.Append(err, fmt.Errorf("%w: %s = %v must be > 0", ErrInvalidDecay, f.name, f.value))
		case f.value < 0:
			err = multierr.Append(err, fmt.Errorf("%w: %s = %v must be >= 0", ErrInvalidDecay, f.name, f.value))
		}
	}

	return err
}
