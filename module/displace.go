package module

// Displace is a quaternary transformer: it displaces the input coordinates
// by the outputs of three child modules (one per axis) before evaluating a
// fourth child at the displaced point.
type Displace struct{ slots }

// NewDisplace creates a Displace transformer.
func NewDisplace() *Displace { return &Displace{slots: newSlots(4)} }

// SetSourceModule binds the child evaluated at the displaced point (slot 0).
func (d *Displace) SetSourceModule(child Module) { d.bindSlot(0, child) }

// SetXDisplaceModule binds the module that displaces the x coordinate.
func (d *Displace) SetXDisplaceModule(child Module) { d.bindSlot(1, child) }

// SetYDisplaceModule binds the module that displaces the y coordinate.
func (d *Displace) SetYDisplaceModule(child Module) { d.bindSlot(2, child) }

// SetZDisplaceModule binds the module that displaces the z coordinate.
func (d *Displace) SetZDisplaceModule(child Module) { d.bindSlot(3, child) }

// SetDisplaceModules binds all three displacement modules at once.
func (d *Displace) SetDisplaceModules(x, y, z Module) {
	d.SetXDisplaceModule(x)
	d.SetYDisplaceModule(y)
	d.SetZDisplaceModule(z)
}

func (d *Displace) Value(x, y, z float64) float64 {
	xDisplace := d.at(1).Value(x, y, z)
	yDisplace := d.at(2).Value(x, y, z)
	zDisplace := d.at(3).Value(x, y, z)
	return d.at(0).Value(x+xDisplace, y+yDisplace, z+zDisplace)
}

var _ Module = (*Displace)(nil)
