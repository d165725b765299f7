package module

import "math"

const (
	defaultRotateX = 0.0
	defaultRotateY = 0.0
	defaultRotateZ = 0.0

	degToRad = math.Pi / 180.0
)

// RotatePoint is a unary transformer that rotates the input coordinates
// around the origin before evaluating its child. The coordinate system is
// left-handed: x increases to the right, y increases upward, z increases
// inward.
type RotatePoint struct {
	slots
	xAngle, yAngle, zAngle float64

	x1, y1, z1 float64
	x2, y2, z2 float64
	x3, y3, z3 float64
}

// NewRotatePoint creates a RotatePoint transformer with zero rotation.
func NewRotatePoint() *RotatePoint {
	r := &RotatePoint{slots: newSlots(1)}
	r.SetAngles(defaultRotateX, defaultRotateY, defaultRotateZ)
	return r
}

// SetSourceModule binds the child module (slot 0).
func (r *RotatePoint) SetSourceModule(child Module) { r.bindSlot(0, child) }

func (r *RotatePoint) XAngle() float64 { return r.xAngle }
func (r *RotatePoint) YAngle() float64 { return r.yAngle }
func (r *RotatePoint) ZAngle() float64 { return r.zAngle }

// SetAngles sets the rotation angles, in degrees, around each axis and
// recomputes the 3x3 rotation matrix used by Value.
func (r *RotatePoint) SetAngles(xAngle, yAngle, zAngle float64) {
	xCos := math.Cos(xAngle * degToRad)
	yCos := math.Cos(yAngle * degToRad)
	zCos := math.Cos(zAngle * degToRad)
	xSin := math.Sin(xAngle * degToRad)
	ySin := math.Sin(yAngle * degToRad)
	zSin := math.Sin(zAngle * degToRad)

	r.x1 = ySin*xSin*zSin + yCos*zCos
	r.y1 = xCos * zSin
	r.z1 = ySin*zCos - yCos*xSin*zSin

	r.x2 = ySin*xSin*zCos - yCos*zSin
	r.y2 = xCos * zCos
	r.z2 = -yCos*xSin*zCos - ySin*zSin

	r.x3 = -ySin * xCos
	r.y3 = xSin
	r.z3 = yCos * xCos

	r.xAngle, r.yAngle, r.zAngle = xAngle, yAngle, zAngle
}

func (r *RotatePoint) Value(x, y, z float64) float64 {
	nx := r.x1*x + r.y1*y + r.z1*z
	ny := r.x2*x + r.y2*y + r.z2*z
	nz := r.x3*x + r.y3*y + r.z3*z
	return r.at(0).Value(nx, ny, nz)
}

var _ Module = (*RotatePoint)(nil)
