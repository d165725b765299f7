package module

const (
	defaultScaleBiasBias  = 0.0
	defaultScaleBiasScale = 1.0
)

// ScaleBias is a unary modifier that scales and offsets its child's output:
// child*scale + bias.
type ScaleBias struct {
	slots
	scale, bias float64
}

// NewScaleBias creates a ScaleBias modifier with scale 1 and bias 0, the
// identity transform.
func NewScaleBias() *ScaleBias {
	return &ScaleBias{slots: newSlots(1), scale: defaultScaleBiasScale, bias: defaultScaleBiasBias}
}

// SetSourceModule binds the child module (slot 0).
func (sb *ScaleBias) SetSourceModule(child Module) { sb.bindSlot(0, child) }

func (sb *ScaleBias) Scale() float64 { return sb.scale }
func (sb *ScaleBias) Bias() float64  { return sb.bias }

func (sb *ScaleBias) SetScale(scale float64) { sb.scale = scale }
func (sb *ScaleBias) SetBias(bias float64)   { sb.bias = bias }

func (sb *ScaleBias) Value(x, y, z float64) float64 {
	return sb.at(0).Value(x, y, z)*sb.scale + sb.bias
}

var _ Module = (*ScaleBias)(nil)
