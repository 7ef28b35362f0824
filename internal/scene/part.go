package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"joint-engine/internal/geom"
	"joint-engine/internal/physics"
)

// DefaultPartSize is the size of a part created with a zero size.
var DefaultPartSize = mgl32.Vec3{4, 1.2, 2}

// Part owns one physics primitive. While the part is inside a Workspace its primitive
// is a member of that workspace's world.
type Part struct {
	Instance
	prim *physics.Primitive
}

// NewPart returns a detached part of the given size at the origin.
func NewPart(name string, size mgl32.Vec3) *Part {
	if size == (mgl32.Vec3{}) {
		size = DefaultPartSize
	}
	p := &Part{prim: physics.NewPrimitive(size, 1)}
	p.prim.SetOwner(p)
	Init(p, name)
	return p
}

func (p *Part) ClassName() string { return "Part" }

// Primitive returns the part's physics primitive.
func (p *Part) Primitive() *physics.Primitive {
	return p.prim
}

// PartFromPrimitive returns the part owning prim, or nil.
func PartFromPrimitive(prim *physics.Primitive) *Part {
	if prim == nil {
		return nil
	}
	p, _ := prim.Owner().(*Part)
	return p
}

// OnAncestorChanged moves the primitive into the world of the enclosing workspace.
func (p *Part) OnAncestorChanged(AncestorChanged) {
	p.syncWorld()
}

// OnDestroy takes the primitive out of its world.
func (p *Part) OnDestroy() {
	if w := p.prim.World(); w != nil {
		w.RemovePrimitive(p.prim)
	}
}

func (p *Part) syncWorld() {
	old, want := p.prim.World(), WorldIfInWorkspace(p)
	if old == want {
		return
	}
	if old != nil {
		old.RemovePrimitive(p.prim)
	}
	if want != nil {
		want.AddPrimitive(p.prim)
	}
}

// Size returns the part's box dimensions.
func (p *Part) Size() mgl32.Vec3 {
	return p.prim.Size()
}

// SetSize resizes the part.
func (p *Part) SetSize(v mgl32.Vec3) {
	before := p.prim.Size()
	p.prim.SetSize(v)
	if p.prim.Size() != before {
		p.RaisePropertyChanged("Size")
	}
}

// CFrame returns the part's world transform.
func (p *Part) CFrame() geom.Frame {
	return p.prim.CoordinateFrame()
}

// SetCFrame moves the part.
func (p *Part) SetCFrame(f geom.Frame) {
	if p.prim.CoordinateFrame() == f {
		return
	}
	p.prim.SetCoordinateFrame(f)
	p.RaisePropertyChanged("CFrame")
}

// Position returns the world translation.
func (p *Part) Position() mgl32.Vec3 {
	return p.prim.Position()
}

// SetPosition moves the part keeping its rotation.
func (p *Part) SetPosition(v mgl32.Vec3) {
	f := p.prim.CoordinateFrame()
	f.Translation = v
	p.SetCFrame(f)
}

// Anchored reports whether the part ignores gravity and collisions.
func (p *Part) Anchored() bool {
	return p.prim.Anchored
}

// SetAnchored pins or frees the part.
func (p *Part) SetAnchored(v bool) {
	if p.prim.Anchored == v {
		return
	}
	p.prim.Anchored = v
	p.RaisePropertyChanged("Anchored")
}

// Surface returns the surface on face n.
func (p *Part) Surface(n geom.NormalID) physics.Surface {
	return p.prim.Surface(n)
}

// SetSurface replaces the surface on face n. The change is reported under the
// face's "<Face>Surface" property name.
func (p *Part) SetSurface(n geom.NormalID, s physics.Surface) {
	old := p.prim.Surface(n)
	if old == s {
		return
	}
	p.prim.SetSurface(n, s)
	face := n.String()
	if old.Type != s.Type {
		p.RaisePropertyChanged(face + "Surface")
	}
	if old.Input != s.Input {
		p.RaisePropertyChanged(face + "SurfaceInput")
	}
	if old.ParamA != s.ParamA {
		p.RaisePropertyChanged(face + "ParamA")
	}
	if old.ParamB != s.ParamB {
		p.RaisePropertyChanged(face + "ParamB")
	}
}
