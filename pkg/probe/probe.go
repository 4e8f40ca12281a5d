// Package probe evaluates a light at shading points, singly or over a
// grid spread across a worker pool.
package probe

import (
	"strings"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/lights"
)

// Sample is what one light delivers to one shading point
type Sample struct {
	Point     core.Vec3
	Visible   bool
	Intensity core.Vec3 // zero when not visible
}

// Evaluate shadow-tests light at point and, when visible, attenuates it
func Evaluate(light lights.Light, point core.Vec3, occluders []core.Surface) Sample {
	intensity, visible := lights.Illuminate(light, point, occluders...)
	return Sample{Point: point, Visible: visible, Intensity: intensity}
}

// Stats summarizes a grid of samples
type Stats struct {
	Total   int
	Lit     int
	Peak    core.Vec3 // brightest visible intensity by magnitude
	MeanLit core.Vec3 // mean intensity over visible samples
}

// LitFraction returns the share of samples that see the light
func (s Stats) LitFraction() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Lit) / float64(s.Total)
}

// Summarize computes Stats over rows of samples
func Summarize(rows [][]Sample) Stats {
	var stats Stats
	var sum core.Vec3

	for _, row := range rows {
		for _, s := range row {
			stats.Total++
			if !s.Visible {
				continue
			}
			stats.Lit++
			sum = sum.Add(s.Intensity)
			if s.Intensity.LengthSquared() > stats.Peak.LengthSquared() {
				stats.Peak = s.Intensity
			}
		}
	}

	if stats.Lit > 0 {
		stats.MeanLit = sum.Multiply(1.0 / float64(stats.Lit))
	}
	return stats
}

// ShadowMap renders rows as text: '#' for shadowed, '.' for lit
func ShadowMap(rows [][]Sample) []string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, s := range row {
			if s.Visible {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		lines[i] = b.String()
	}
	return lines
}
