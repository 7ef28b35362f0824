package joints

import (
	"fmt"

	"joint-engine/internal/geom"
	"joint-engine/internal/physics"
	"joint-engine/internal/scene"
)

// AutoJoint connects two parts and attaches its joint to the world of the enclosing
// Workspace. Part i being set always means slot i holds that part's primitive.
type AutoJoint struct {
	JointInstance
	parts [2]*scene.Part
}

type autoJointer interface {
	scene.Node
	AsAutoJoint() *AutoJoint
}

func (aj *AutoJoint) AsAutoJoint() *AutoJoint { return aj }

// ClassName is the joint type name ("Snap", "Weld", ...).
func (aj *AutoJoint) ClassName() string { return aj.joint.Type().String() }

func (aj *AutoJoint) init(n scene.Node, j *physics.Joint) {
	aj.JointInstance.init(n, j.Type().String(), j)
	for i := range aj.parts {
		prim := j.Primitive(i)
		part := scene.PartFromPrimitive(prim)
		if prim != nil && part == nil {
			panic(fmt.Sprintf("joints: slot %d primitive has no owning part", i))
		}
		aj.parts[i] = part
	}
}

// NewAutoJoint returns a detached AutoJoint with an empty joint of type t. Motor
// joints should be created with NewMotor to get the motor properties.
func NewAutoJoint(t physics.JointType) *AutoJoint {
	return WrapAs(physics.NewJoint(t), t)
}

func NewSnap() *AutoJoint    { return NewAutoJoint(physics.SnapJoint) }
func NewWeld() *AutoJoint    { return NewAutoJoint(physics.WeldJoint) }
func NewGlue() *AutoJoint    { return NewAutoJoint(physics.GlueJoint) }
func NewRotate() *AutoJoint  { return NewAutoJoint(physics.RotateJoint) }
func NewRotateP() *AutoJoint { return NewAutoJoint(physics.RotatePJoint) }
func NewRotateV() *AutoJoint { return NewAutoJoint(physics.RotateVJoint) }

// New returns the node class for joint type t: a *Motor for MotorJoint, an *AutoJoint
// otherwise.
func New(t physics.JointType) scene.Node {
	if t == physics.MotorJoint {
		return NewMotor()
	}
	return NewAutoJoint(t)
}

// Wrap adopts an existing joint, such as one returned by physics.CanBuildJoint, into
// the matching node class. Its parts are recovered from the primitives' owners.
func Wrap(j *physics.Joint) scene.Node {
	if j.Type() == physics.MotorJoint {
		return WrapMotor(j)
	}
	return WrapAs(j, j.Type())
}

// WrapAs adopts j as an AutoJoint of type t. A joint of any other type is a
// programming error.
func WrapAs(j *physics.Joint, t physics.JointType) *AutoJoint {
	if j.Type() != t {
		panic(fmt.Sprintf("joints: cannot wrap %s joint as %s", j.Type(), t))
	}
	aj := &AutoJoint{}
	aj.init(aj, j)
	return aj
}

// AskSetParent accepts only plain containers and parts.
func (aj *AutoJoint) AskSetParent(parent scene.Node) bool {
	_, isPart := parent.(*scene.Part)
	return isPart || scene.IsPlain(parent)
}

// OnAncestorChanged moves the joint into the world it should now belong to. A part
// reference whose node has been destroyed is dropped first.
func (aj *AutoJoint) OnAncestorChanged(scene.AncestorChanged) {
	for i, p := range aj.parts {
		if p != nil && p.IsDestroyed() {
			aj.setPart(i, nil)
		}
	}
	aj.moveToWorld(desiredWorld(aj))
}

// desiredWorld is nil without a parent or under a plain container, otherwise the
// world of the nearest enclosing Workspace.
func desiredWorld(n scene.Node) *physics.World {
	parent := n.AsInstance().Parent()
	if parent == nil || scene.IsPlain(parent) {
		return nil
	}
	return scene.WorldIfInWorkspace(n)
}

// OnDestroy empties both slots before releasing the joint.
func (aj *AutoJoint) OnDestroy() {
	aj.setPart(0, nil)
	aj.setPart(1, nil)
	aj.JointInstance.OnDestroy()
}

// setPart rebinds slot i. Assigning a part whose primitive is already in the slot
// does nothing.
func (aj *AutoJoint) setPart(i int, p *scene.Part) bool {
	var prim *physics.Primitive
	if p != nil {
		prim = p.Primitive()
	}
	if aj.joint.Primitive(i) == prim {
		return false
	}
	aj.parts[i] = p
	aj.joint.SetPrimitive(i, prim)
	return true
}

// Part0 returns the part in slot 0, or nil.
func (aj *AutoJoint) Part0() *scene.Part { return aj.parts[0] }

// Part1 returns the part in slot 1, or nil.
func (aj *AutoJoint) Part1() *scene.Part { return aj.parts[1] }

// SetPart0 binds slot 0 to p; nil empties the slot.
func (aj *AutoJoint) SetPart0(p *scene.Part) {
	if aj.setPart(0, p) {
		aj.RaisePropertyChanged("Part0")
	}
}

// SetPart1 binds slot 1 to p; nil empties the slot.
func (aj *AutoJoint) SetPart1(p *scene.Part) {
	if aj.setPart(1, p) {
		aj.RaisePropertyChanged("Part1")
	}
}

// C0 returns the joint frame in Part0's space.
func (aj *AutoJoint) C0() geom.Frame { return aj.joint.Coord(0) }

// C1 returns the joint frame in Part1's space.
func (aj *AutoJoint) C1() geom.Frame { return aj.joint.Coord(1) }

func (aj *AutoJoint) SetC0(f geom.Frame) { aj.setCoord(0, f, "C0") }
func (aj *AutoJoint) SetC1(f geom.Frame) { aj.setCoord(1, f, "C1") }

func (aj *AutoJoint) setCoord(i int, f geom.Frame, name string) {
	if aj.joint.Coord(i) == f {
		return
	}
	aj.joint.SetCoord(i, f)
	aj.RaisePropertyChanged(name)
}
