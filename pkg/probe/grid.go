package probe

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// ErrInvalidGrid is returned for a grid with no cells, a non-finite bound or
// an inverted region
var ErrInvalidGrid = errors.New("invalid probe grid")

// Grid is a regular lattice of shading points on the plane y = Height,
// spanning [MinX, MaxX] x [MinZ, MaxZ] with Cols x Rows points
type Grid struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Height     float64
	Cols, Rows int
}

// Validate checks that the grid has points and a finite, non-inverted region
func (g Grid) Validate() error {
	if g.Cols < 1 || g.Rows < 1 {
		return fmt.Errorf("%w: %dx%d points", ErrInvalidGrid, g.Cols, g.Rows)
	}
	for _, v := range [...]float64{g.MinX, g.MaxX, g.MinZ, g.MaxZ, g.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound %g", ErrInvalidGrid, v)
		}
	}
	if g.MaxX < g.MinX || g.MaxZ < g.MinZ {
		return fmt.Errorf("%w: region [%g,%g]x[%g,%g]", ErrInvalidGrid, g.MinX, g.MaxX, g.MinZ, g.MaxZ)
	}
	return nil
}

// Point returns the shading point at column col of row row
func (g Grid) Point(col, row int) core.Vec3 {
	return core.NewVec3(lerp(g.MinX, g.MaxX, col, g.Cols), g.Height, lerp(g.MinZ, g.MaxZ, row, g.Rows))
}

func lerp(lo, hi float64, i, n int) float64 {
	if n == 1 {
		return (lo + hi) / 2
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}
