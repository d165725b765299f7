package module

const (
	defaultTranslatePointX = 0.0
	defaultTranslatePointY = 0.0
	defaultTranslatePointZ = 0.0
)

// TranslatePoint is a unary transformer that offsets the input coordinates
// before evaluating its child.
type TranslatePoint struct {
	slots
	tx, ty, tz float64
}

// NewTranslatePoint creates a TranslatePoint transformer with a zero offset.
func NewTranslatePoint() *TranslatePoint {
	return &TranslatePoint{
		slots: newSlots(1),
		tx:    defaultTranslatePointX,
		ty:    defaultTranslatePointY,
		tz:    defaultTranslatePointZ,
	}
}

// SetSourceModule binds the child module (slot 0).
func (t *TranslatePoint) SetSourceModule(child Module) { t.bindSlot(0, child) }

// SetTranslation sets the offset applied to each axis.
func (t *TranslatePoint) SetTranslation(tx, ty, tz float64) {
	t.tx, t.ty, t.tz = tx, ty, tz
}

func (t *TranslatePoint) XTranslation() float64 { return t.tx }
func (t *TranslatePoint) YTranslation() float64 { return t.ty }
func (t *TranslatePoint) ZTranslation() float64 { return t.tz }

func (t *TranslatePoint) Value(x, y, z float64) float64 {
	return t.at(0).Value(x+t.tx, y+t.ty, z+t.tz)
}

var _ Module = (*TranslatePoint)(nil)
