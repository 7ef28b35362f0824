package physics

import (
	"joint-engine/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is a rigid body with a box collision shape. Its local extents are centred on
// the origin of its coordinate frame. Anchored primitives ignore gravity and velocity.
type Primitive struct {
	frame    geom.Frame
	Velocity mgl32.Vec3
	size     mgl32.Vec3
	Mass     float32
	Anchored bool
	surfaces [6]Surface

	world *World
	owner any
}

// NewPrimitive returns an unanchored primitive of the given size at the origin.
// Zero size components default to 1; mass <= 0 defaults to 1.
func NewPrimitive(size mgl32.Vec3, mass float32) *Primitive {
	if mass <= 0 {
		mass = 1
	}
	p := &Primitive{frame: geom.Identity(), Mass: mass}
	p.SetSize(size)
	return p
}

// CoordinateFrame returns the primitive's world transform.
func (p *Primitive) CoordinateFrame() geom.Frame {
	return p.frame
}

// SetCoordinateFrame moves the primitive.
func (p *Primitive) SetCoordinateFrame(f geom.Frame) {
	p.frame = f
}

// Position returns the world translation.
func (p *Primitive) Position() mgl32.Vec3 {
	return p.frame.Translation
}

// Size returns the box dimensions.
func (p *Primitive) Size() mgl32.Vec3 {
	return p.size
}

// SetSize resizes the box, keeping it centred. Zero components become 1.
func (p *Primitive) SetSize(size mgl32.Vec3) {
	size = geom.Abs(size)
	for i := range size {
		if size[i] == 0 {
			size[i] = 1
		}
	}
	p.size = size
}

// ExtentsLocal returns the box in the primitive's own frame.
func (p *Primitive) ExtentsLocal() geom.Extents {
	return geom.FromSize(p.size)
}

// ExtentsWorld returns the world axis aligned bounding box.
func (p *Primitive) ExtentsWorld() geom.Extents {
	return p.ExtentsLocal().Transform(p.frame)
}

// Surface returns the surface data of face n.
func (p *Primitive) Surface(n geom.NormalID) Surface {
	return p.surfaces[n]
}

// SetSurface replaces the surface data of face n.
func (p *Primitive) SetSurface(n geom.NormalID, s Surface) {
	p.surfaces[n] = s
}

// World returns the world the primitive was added to, or nil.
func (p *Primitive) World() *World {
	return p.world
}

// Owner returns the handle set with SetOwner. The scene uses it to map a primitive
// back to its part.
func (p *Primitive) Owner() any {
	return p.owner
}

// SetOwner records the primitive's owning object.
func (p *Primitive) SetOwner(o any) {
	p.owner = o
}
