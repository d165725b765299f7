package module

import (
	"math"

	"github.com/coherentfield/noisegraph/core"
)

// Checkerboard is a zero-arity generator that alternates between -1 and 1
// in unit-sized blocks, based on the parity of the input's integer
// coordinates. It is mainly useful for debugging a graph's coordinate
// transforms.
type Checkerboard struct {
	slots
}

// NewCheckerboard creates a Checkerboard generator.
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{slots: newSlots(0)}
}

func (c *Checkerboard) Value(x, y, z float64) float64 {
	ix := int(math.Floor(core.MakeInt32Range(x)))
	iy := int(math.Floor(core.MakeInt32Range(y)))
	iz := int(math.Floor(core.MakeInt32Range(z)))

	if (ix&1)^(iy&1)^(iz&1) != 0 {
		return -1.0
	}
	return 1.0
}

var _ Module = (*Checkerboard)(nil)
