package module

import (
	"fmt"
	"sort"

	"github.com/coherentfield/noisegraph/core"
)

// minCurveControlPoints is the minimum table size Curve.Value needs to
// perform cubic interpolation. Calling Value with fewer points bound is a
// programming error (see Module.Value).
const minCurveControlPoints = 4

// curvePoint is one (input, output) pair on Curve's spline.
type curvePoint struct {
	input, output float64
}

// Curve is a unary modifier that remaps its child's output through a cubic
// spline defined by a sorted table of control points.
type Curve struct {
	slots
	points []curvePoint
}

// NewCurve creates a Curve modifier with an empty control-point table. At
// least four points must be added with AddControlPoint before Value can be
// called.
func NewCurve() *Curve {
	return &Curve{slots: newSlots(1)}
}

// SetSourceModule binds the child module (slot 0).
func (c *Curve) SetSourceModule(child Module) { c.bindSlot(0, child) }

// ControlPointCount reports how many control points are currently bound.
func (c *Curve) ControlPointCount() int { return len(c.points) }

// ClearAllControlPoints removes every control point.
func (c *Curve) ClearAllControlPoints() { c.points = c.points[:0] }

// AddControlPoint inserts a (input, output) pair, keeping the table sorted
// by input value. It fails with core.ErrInvalidParam if input duplicates
// an existing control point's input value.
func (c *Curve) AddControlPoint(input, output float64) error {
	pos := sort.Search(len(c.points), func(i int) bool { return c.points[i].input >= input })
	if pos < len(c.points) && c.points[pos].input == input {
		return fmt.Errorf("%w: duplicate control point input %v", core.ErrInvalidParam, input)
	}
	c.points = append(c.points, curvePoint{})
	copy(c.points[pos+1:], c.points[pos:])
	c.points[pos] = curvePoint{input: input, output: output}
	return nil
}

func (c *Curve) Value(x, y, z float64) float64 {
	if len(c.points) < minCurveControlPoints {
		panic("module: Curve.Value requires at least 4 control points")
	}

	sourceValue := c.at(0).Value(x, y, z)

	last := len(c.points)
	indexPos := 0
	for ; indexPos < last; indexPos++ {
		if sourceValue < c.points[indexPos].input {
			break
		}
	}

	index0 := core.ClampInt(indexPos-2, 0, last-1)
	index1 := core.ClampInt(indexPos-1, 0, last-1)
	index2 := core.ClampInt(indexPos, 0, last-1)
	index3 := core.ClampInt(indexPos+1, 0, last-1)

	if index1 == index2 {
		return c.points[index1].output
	}

	input0 := c.points[index1].input
	input1 := c.points[index2].input
	alpha := (sourceValue - input0) / (input1 - input0)

	return core.CubicInterp(
		c.points[index0].output,
		c.points[index1].output,
		c.points[index2].output,
		c.points[index3].output,
		alpha,
	)
}

var _ Module = (*Curve)(nil)
