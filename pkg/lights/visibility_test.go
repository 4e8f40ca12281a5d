package lights

import (
	"testing"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/geometry"
)

func TestVisibleAndDirectLight(t *testing.T) {
	light := mustBuildPointLight(t, NewPointLightBuilder().
		WithIntensity(core.NewVec3(2, 2, 2)).
		WithPosition(core.NewVec3(0, 10, 0)).
		WithDecayFactors(0, 0.1, 1))

	blocker := geometry.NewSurface(geometry.NewSphere(core.NewVec3(0, 5, 0), 1))
	ground := geometry.NewSurface(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)))

	tests := []struct {
		name      string
		point     core.Vec3
		occluders []core.Surface
		visible   bool
		expected  core.Vec3
	}{
		{
			name:     "no occluders",
			point:    core.NewVec3(0, 0, 0),
			visible:  true,
			expected: core.NewVec3(1, 1, 1), // 2 / (1 + 0.1*10)
		},
		{
			name:      "ground does not shadow a point on itself",
			point:     core.NewVec3(0, 0, 0),
			occluders: []core.Surface{ground},
			visible:   true,
			expected:  core.NewVec3(1, 1, 1),
		},
		{
			name:      "sphere blocks",
			point:     core.NewVec3(0, 0, 0),
			occluders: []core.Surface{ground, blocker},
			visible:   false,
		},
		{
			name:      "outside the sphere's shadow",
			point:     core.NewVec3(30, 10, 0),
			occluders: []core.Surface{ground, blocker},
			visible:   true,
			expected:  core.NewVec3(0.5, 0.5, 0.5), // 2 / (1 + 0.1*30)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(light, tt.point, tt.occluders...); got != tt.visible {
				t.Errorf("Expected visible=%v, got %v", tt.visible, got)
			}
			if got := DirectLight(light, tt.point, tt.occluders...); !vecNear(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVisible_StopsAtFirstBlocker(t *testing.T) {
	light := mustBuildPointLight(t, NewPointLightBuilder().
		WithIntensity(core.NewVec3(1, 1, 1)).
		WithPosition(core.NewVec3(0, 0, 0)))

	calls := 0
	counting := surfaceFunc(func(core.Ray) (core.Hit, bool) {
		calls++
		return core.Hit{}, false
	})

	if Visible(light, core.NewVec3(0, 0, 5), hitAt(0.5), counting) {
		t.Error("Expected point to be shadowed")
	}
	if calls != 0 {
		t.Errorf("Expected occluders after the blocker to be skipped, got %d calls", calls)
	}
}

func TestVisible_WorksForEveryLightKind(t *testing.T) {
	point := mustBuildPointLight(t, NewPointLightBuilder().
		WithIntensity(core.NewVec3(1, 1, 1)).
		WithPosition(core.NewVec3(0, 10, 0)))
	sun, err := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1))
	if err != nil {
		t.Fatal(err)
	}

	roof := geometry.NewSurface(geometry.NewQuad(core.NewVec3(-5, 20, -5), core.NewVec3(10, 0, 0), core.NewVec3(0, 0, 10)))

	for _, light := range []Light{point, sun} {
		visible := Visible(light, core.NewVec3(0, 0, 0), roof)
		// The roof sits above the point light but blocks the sun
		expected := light.Type() == LightTypePoint
		if visible != expected {
			t.Errorf("%s light: expected visible=%v, got %v", light.Type(), expected, visible)
		}
	}
}
