// Package config handles light probe configuration loading and management.
package config

import (
	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/lights"
	"github.com/df07/go-raytracer-lights/pkg/probe"
)

// Config holds all probe settings.
type Config struct {
	Light   LightConfig   `yaml:"light"`
	Probe   ProbeConfig   `yaml:"probe"`
	Logging LoggingConfig `yaml:"logging"`
}

// LightConfig describes a point light. Vectors are [x, y, z] or [r, g, b].
type LightConfig struct {
	Intensity [3]float64  `yaml:"intensity"`
	Position  [3]float64  `yaml:"position"`
	Decay     DecayConfig `yaml:"decay"`
}

// DecayConfig holds the attenuation polynomial coefficients.
type DecayConfig struct {
	Kq float64 `yaml:"kq"`
	Kl float64 `yaml:"kl"`
	Kc float64 `yaml:"kc"`
}

// ProbeConfig selects the built-in occluder layout and the shading points
// to evaluate.
type ProbeConfig struct {
	Occluders string       `yaml:"occluders"`
	Points    [][3]float64 `yaml:"points"`
	Grid      GridConfig   `yaml:"grid"`
}

// GridConfig describes a lattice of shading points on a horizontal plane.
// A zero resolution disables the grid.
type GridConfig struct {
	Min        [2]float64 `yaml:"min"` // x, z
	Max        [2]float64 `yaml:"max"` // x, z
	Height     float64    `yaml:"height"`
	Resolution [2]int     `yaml:"resolution"` // columns, rows
	Workers    int        `yaml:"workers"`    // <= 0 means one per CPU
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Light: LightConfig{
			Intensity: [3]float64{1, 1, 1},
			Position:  [3]float64{0, 10, 0},
			Decay: DecayConfig{
				Kq: lights.DefaultKq,
				Kl: lights.DefaultKl,
				Kc: lights.DefaultKc,
			},
		},
		Probe: ProbeConfig{
			Occluders: "sphere",
			Points: [][3]float64{
				{0, 0, 0},
				{3, 0, 0},
				{10, 0, 0},
			},
			Grid: GridConfig{
				Min:        [2]float64{-10, -10},
				Max:        [2]float64{10, 10},
				Resolution: [2]int{21, 21},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Build turns the light settings into a validated PointLight.
func (lc LightConfig) Build() (*lights.PointLight, error) {
	return lights.NewPointLightBuilder().
		WithIntensity(toVec3(lc.Intensity)).
		WithPosition(toVec3(lc.Position)).
		WithDecayFactors(lc.Decay.Kq, lc.Decay.Kl, lc.Decay.Kc).
		Build()
}

// ShadingPoints returns the configured probe points.
func (pc ProbeConfig) ShadingPoints() []core.Vec3 {
	points := make([]core.Vec3, len(pc.Points))
	for i, p := range pc.Points {
		points[i] = toVec3(p)
	}
	return points
}

// Enabled reports whether a grid should be evaluated.
func (gc GridConfig) Enabled() bool {
	return gc.Resolution != [2]int{}
}

// Grid returns the probe grid described by gc.
func (gc GridConfig) Grid() probe.Grid {
	return probe.Grid{
		MinX:   gc.Min[0],
		MinZ:   gc.Min[1],
		MaxX:   gc.Max[0],
		MaxZ:   gc.Max[1],
		Height: gc.Height,
		Cols:   gc.Resolution[0],
		Rows:   gc.Resolution[1],
	}
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
