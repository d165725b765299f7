package module

import (
	"fmt"
	"sort"

	"github.com/coherentfield/noisegraph/core"
)

// minTerraceControlPoints is the minimum table size Terrace.Value needs.
const minTerraceControlPoints = 2

// Terrace is a unary modifier that remaps its child's output onto a
// terrace-forming curve: flat near each control point, with squared-alpha
// transitions between them. Used for step-like terrain features.
type Terrace struct {
	slots
	points []float64
	invert bool
}

// NewTerrace creates a Terrace modifier with an empty control-point table.
// At least two points must be added before Value can be called.
func NewTerrace() *Terrace {
	return &Terrace{slots: newSlots(1)}
}

// SetSourceModule binds the child module (slot 0).
func (t *Terrace) SetSourceModule(child Module) { t.bindSlot(0, child) }

// ControlPointCount reports how many control points are currently bound.
func (t *Terrace) ControlPointCount() int { return len(t.points) }

// ClearAllControlPoints removes every control point.
func (t *Terrace) ClearAllControlPoints() { t.points = t.points[:0] }

// InvertTerraces sets whether the curve is inverted between control points.
func (t *Terrace) InvertTerraces(invert bool) { t.invert = invert }

// IsTerracesInverted reports whether the curve is currently inverted.
func (t *Terrace) IsTerracesInverted() bool { return t.invert }

// AddControlPoint inserts a value, keeping the table sorted. It fails with
// core.ErrInvalidParam if value duplicates an existing control point.
func (t *Terrace) AddControlPoint(value float64) error {
	pos := sort.SearchFloat64s(t.points, value)
	if pos < len(t.points) && t.points[pos] == value {
		return fmt.Errorf("%w: duplicate control point value %v", core.ErrInvalidParam, value)
	}
	t.points = append(t.points, 0)
	copy(t.points[pos+1:], t.points[pos:])
	t.points[pos] = value
	return nil
}

// MakeControlPoints clears the table and inserts n equally spaced points
// spanning [-1, 1]. It fails with core.ErrInvalidParam if n < 2.
func (t *Terrace) MakeControlPoints(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: control point count %d is below the minimum of 2", core.ErrInvalidParam, n)
	}

	t.ClearAllControlPoints()

	step := 2.0 / (float64(n) - 1.0)
	value := -1.0
	for i := 0; i < n; i++ {
		if err := t.AddControlPoint(value); err != nil {
			return err
		}
		value += step
	}
	return nil
}

func (t *Terrace) Value(x, y, z float64) float64 {
	if len(t.points) < minTerraceControlPoints {
		panic("module: Terrace.Value requires at least 2 control points")
	}

	sourceValue := t.at(0).Value(x, y, z)

	last := len(t.points)
	indexPos := 0
	for ; indexPos < last; indexPos++ {
		if sourceValue < t.points[indexPos] {
			break
		}
	}

	index0 := core.ClampInt(indexPos-1, 0, last-1)
	index1 := core.ClampInt(indexPos, 0, last-1)

	if index0 == index1 {
		return t.points[index1]
	}

	value0 := t.points[index0]
	value1 := t.points[index1]
	alpha := (sourceValue - value0) / (value1 - value0)

	if t.invert {
		alpha = 1.0 - alpha
		value0, value1 = value1, value0
	}

	alpha *= alpha

	return core.LinearInterp(value0, value1, alpha)
}

var _ Module = (*Terrace)(nil)
