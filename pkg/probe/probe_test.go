package probe

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/geometry"
	"github.com/df07/go-raytracer-lights/pkg/lights"
)

func newOverheadLight(t *testing.T) *lights.PointLight {
	t.Helper()
	light, err := lights.NewPointLightBuilder().
		WithIntensity(core.NewVec3(1, 1, 1)).
		WithPosition(core.NewVec3(0, 10, 0)).
		WithDecayFactors(0, 0.1, 1).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return light
}

func TestEvaluate(t *testing.T) {
	light := newOverheadLight(t)
	blocker := geometry.NewSurface(geometry.NewSphere(core.NewVec3(0, 5, 0), 1))

	lit := Evaluate(light, core.NewVec3(0, 0, 0), nil)
	if !lit.Visible {
		t.Fatal("Expected point to be lit without occluders")
	}
	if math.Abs(lit.Intensity.X-0.5) > 1e-12 {
		t.Errorf("Expected 1/(1+0.1*10) = 0.5, got %v", lit.Intensity.X)
	}

	shadowed := Evaluate(light, core.NewVec3(0, 0, 0), []core.Surface{blocker})
	if shadowed.Visible || !shadowed.Intensity.IsZero() {
		t.Errorf("Expected shadowed sample, got %+v", shadowed)
	}
}

func TestGrid_Point(t *testing.T) {
	g := Grid{MinX: -2, MaxX: 2, MinZ: 0, MaxZ: 10, Height: 1, Cols: 5, Rows: 3}

	tests := []struct {
		col, row int
		expected core.Vec3
	}{
		{0, 0, core.NewVec3(-2, 1, 0)},
		{4, 2, core.NewVec3(2, 1, 10)},
		{2, 1, core.NewVec3(0, 1, 5)},
	}
	for _, tt := range tests {
		if got := g.Point(tt.col, tt.row); got != tt.expected {
			t.Errorf("Point(%d,%d): expected %v, got %v", tt.col, tt.row, tt.expected, got)
		}
	}

	single := Grid{MinX: -2, MaxX: 2, MinZ: -4, MaxZ: 4, Cols: 1, Rows: 1}
	if got := single.Point(0, 0); got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected single-point grid at the center, got %v", got)
	}
}

func TestGrid_Validate(t *testing.T) {
	tests := []struct {
		name  string
		grid  Grid
		valid bool
	}{
		{"ok", Grid{MaxX: 1, MaxZ: 1, Cols: 2, Rows: 2}, true},
		{"degenerate region", Grid{Cols: 1, Rows: 1}, true},
		{"no columns", Grid{MaxX: 1, MaxZ: 1, Rows: 2}, false},
		{"inverted x", Grid{MinX: 1, MaxZ: 1, Cols: 2, Rows: 2}, false},
		{"nan min x", Grid{MinX: math.NaN(), MaxX: 1, MaxZ: 1, Cols: 2, Rows: 2}, false},
		{"nan max z", Grid{MaxX: 1, MaxZ: math.NaN(), Cols: 2, Rows: 2}, false},
		{"infinite max x", Grid{MaxX: math.Inf(1), MaxZ: 1, Cols: 2, Rows: 2}, false},
		{"infinite min z", Grid{MaxX: 1, MinZ: math.Inf(-1), MaxZ: 1, Cols: 2, Rows: 2}, false},
		{"nan height", Grid{MaxX: 1, MaxZ: 1, Height: math.NaN(), Cols: 2, Rows: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.valid && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("Expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

func TestEvaluateGrid_MatchesSequential(t *testing.T) {
	light := newOverheadLight(t)
	occluders := []core.Surface{geometry.NewSceneSurface(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		geometry.NewSphere(core.NewVec3(0, 5, 0), 1.5),
		geometry.NewBox(core.NewVec3(4, 3, 4), core.NewVec3(1, 1, 1)),
	)}
	grid := Grid{MinX: -10, MaxX: 10, MinZ: -10, MaxZ: 10, Cols: 21, Rows: 17}

	for _, workers := range []int{1, 4, 0} {
		rows, err := EvaluateGrid(light, grid, occluders, workers)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(rows) != grid.Rows {
			t.Fatalf("Expected %d rows, got %d", grid.Rows, len(rows))
		}

		for r, row := range rows {
			if len(row) != grid.Cols {
				t.Fatalf("Row %d: expected %d samples, got %d", r, grid.Cols, len(row))
			}
			for c, got := range row {
				want := Evaluate(light, grid.Point(c, r), occluders)
				if got != want {
					t.Errorf("workers=%d (%d,%d): expected %+v, got %+v", workers, c, r, want, got)
				}
			}
		}
	}
}

func TestEvaluateGrid_InvalidGrid(t *testing.T) {
	_, err := EvaluateGrid(newOverheadLight(t), Grid{}, nil, 2)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("Expected ErrInvalidGrid, got %v", err)
	}
}

func TestSummarizeAndShadowMap(t *testing.T) {
	rows := [][]Sample{
		{
			{Visible: true, Intensity: core.NewVec3(1, 1, 1)},
			{Visible: false},
		},
		{
			{Visible: true, Intensity: core.NewVec3(3, 3, 3)},
			{Visible: false},
		},
	}

	stats := Summarize(rows)
	if stats.Total != 4 || stats.Lit != 2 {
		t.Errorf("Expected 2 of 4 lit, got %d of %d", stats.Lit, stats.Total)
	}
	if stats.LitFraction() != 0.5 {
		t.Errorf("Expected lit fraction 0.5, got %v", stats.LitFraction())
	}
	if stats.Peak != core.NewVec3(3, 3, 3) {
		t.Errorf("Expected peak (3,3,3), got %v", stats.Peak)
	}
	if stats.MeanLit != core.NewVec3(2, 2, 2) {
		t.Errorf("Expected mean (2,2,2), got %v", stats.MeanLit)
	}

	lines := ShadowMap(rows)
	if len(lines) != 2 || lines[0] != ".#" || lines[1] != ".#" {
		t.Errorf("Unexpected shadow map %q", lines)
	}

	if (Stats{}).LitFraction() != 0 {
		t.Error("Expected zero lit fraction for empty stats")
	}
}

func TestWorkerPool_NumWorkers(t *testing.T) {
	pool := NewWorkerPool(newOverheadLight(t), nil, 3, 1)
	if pool.NumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.NumWorkers())
	}
	if NewWorkerPool(newOverheadLight(t), nil, 0, 1).NumWorkers() < 1 {
		t.Error("Expected at least one worker by default")
	}
}
