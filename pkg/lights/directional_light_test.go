package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/geometry"
)

func TestNewDirectionalLight(t *testing.T) {
	light, err := NewDirectionalLight(core.NewVec3(0, -2, 0), core.NewVec3(1, 1, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if light.Direction() != core.NewVec3(0, -1, 0) {
		t.Errorf("Expected normalized direction, got %v", light.Direction())
	}
	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected type %q, got %q", LightTypeDirectional, light.Type())
	}

	if _, err := NewDirectionalLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Expected ErrInvalidDirection, got %v", err)
	}
	if _, err := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(math.NaN(), 1, 1)); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Expected ErrNonFinite, got %v", err)
	}
}

func TestDirectionalLight_RayAndIntensity(t *testing.T) {
	light, _ := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(0.5, 0.5, 0.5))
	p := core.NewVec3(3, 0, 3)
	ray := light.RayToward(p)

	if ray.Origin != p || ray.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected upward ray from %v, got %v", p, ray)
	}

	near := light.IntensityAt(p, ray)
	far := light.IntensityAt(core.NewVec3(1e6, 0, 0), ray)
	if near != far || near != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected constant intensity, got %v and %v", near, far)
	}
}

func TestDirectionalLight_IsOccludedBy(t *testing.T) {
	light, _ := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1))
	ray := light.RayToward(core.NewVec3(0, 0, 0))

	if !light.IsOccludedBy(hitAt(1e9), ray) {
		t.Error("Expected any forward hit to occlude")
	}
	if light.IsOccludedBy(noHit, ray) {
		t.Error("Expected no occlusion without a hit")
	}

	overhead := geometry.NewSurface(geometry.NewSphere(core.NewVec3(0, 50, 0), 1))
	if !light.IsOccludedBy(overhead, ray) {
		t.Error("Expected sphere overhead to occlude")
	}
	beside := geometry.NewSurface(geometry.NewSphere(core.NewVec3(5, 50, 0), 1))
	if light.IsOccludedBy(beside, ray) {
		t.Error("Expected sphere off to the side not to occlude")
	}

	if _, err := light.CheckOcclusion(hitAt(math.Inf(1)), ray); !errors.Is(err, core.ErrUnresolvableHit) {
		t.Errorf("Expected ErrUnresolvableHit, got %v", err)
	}
}
