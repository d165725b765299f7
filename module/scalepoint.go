package module

const (
	defaultScalePointX = 1.0
	defaultScalePointY = 1.0
	defaultScalePointZ = 1.0
)

// ScalePoint is a unary transformer that scales the input coordinates
// before evaluating its child.
type ScalePoint struct {
	slots
	sx, sy, sz float64
}

// NewScalePoint creates a ScalePoint transformer with a unit scale.
func NewScalePoint() *ScalePoint {
	return &ScalePoint{
		slots: newSlots(1),
		sx:    defaultScalePointX,
		sy:    defaultScalePointY,
		sz:    defaultScalePointZ,
	}
}

// SetSourceModule binds the child module (slot 0).
func (s *ScalePoint) SetSourceModule(child Module) { s.bindSlot(0, child) }

// SetScale sets the scale factor applied to each axis.
func (s *ScalePoint) SetScale(sx, sy, sz float64) {
	s.sx, s.sy, s.sz = sx, sy, sz
}

func (s *ScalePoint) XScale() float64 { return s.sx }
func (s *ScalePoint) YScale() float64 { return s.sy }
func (s *ScalePoint) ZScale() float64 { return s.sz }

func (s *ScalePoint) Value(x, y, z float64) float64 {
	return s.at(0).Value(x*s.sx, y*s.sy, z*s.sz)
}

var _ Module = (*ScalePoint)(nil)
