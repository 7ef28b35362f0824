package physics

import (
	"fmt"

	"joint-engine/internal/geom"
)

// JointType tags the closed set of joint variants. It is fixed at construction.
type JointType int

const (
	SnapJoint JointType = iota
	WeldJoint
	GlueJoint
	RotateJoint
	RotatePJoint
	RotateVJoint
	MotorJoint
	numJointTypes
)

func (t JointType) String() string {
	if t < 0 || t >= numJointTypes {
		return fmt.Sprintf("JointType(%d)", int(t))
	}
	return behaviors[t].name
}

// ParseJointType reads a joint type by name ("Snap", "Weld", ... "Motor").
func ParseJointType(s string) (JointType, error) {
	for t := SnapJoint; t < numJointTypes; t++ {
		if behaviors[t].name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown joint type %q", s)
}

// Joint is a constraint between up to two primitives. Slot i holds a primitive (or nil)
// and the joint's frame expressed in that primitive's local space.
//
// A joint belongs to at most one World. It is registered with that world's kernel,
// and reported Active, exactly while it is in a world and both slots are filled.
type Joint struct {
	typ    JointType
	prims  [2]*Primitive
	coords [2]geom.Frame
	world  *World
	conn   *connector
	owner  any

	// angle is the hinge angle kept while the joint is out of the kernel.
	angle  float32
	motor  motorState
	rotate rotateState
}

type motorState struct {
	maxVelocity  float32
	desiredAngle float32
}

type rotateState struct {
	lastStep  int
	channel   float32
	torqueArm float32
}

// NewJoint returns an empty joint of type t with identity frames.
func NewJoint(t JointType) *Joint {
	if t < 0 || t >= numJointTypes {
		panic(fmt.Sprintf("physics: invalid joint type %d", int(t)))
	}
	return &Joint{typ: t, coords: [2]geom.Frame{geom.Identity(), geom.Identity()}}
}

// NewJointBetween returns a joint of type t with both slots and frames filled in.
func NewJointBetween(t JointType, p0, p1 *Primitive, c0, c1 geom.Frame) *Joint {
	j := NewJoint(t)
	j.prims = [2]*Primitive{p0, p1}
	j.coords = [2]geom.Frame{c0, c1}
	return j
}

// Type returns the joint's variant tag.
func (j *Joint) Type() JointType {
	return j.typ
}

func checkSlot(i int) {
	if i != 0 && i != 1 {
		panic(fmt.Sprintf("physics: joint slot %d out of range", i))
	}
}

// Primitive returns the primitive in slot i, or nil.
func (j *Joint) Primitive(i int) *Primitive {
	checkSlot(i)
	return j.prims[i]
}

// SetPrimitive rebinds slot i. Kernel registration follows the new slot state.
func (j *Joint) SetPrimitive(i int, p *Primitive) {
	checkSlot(i)
	if j.prims[i] == p {
		return
	}
	if j.conn != nil {
		j.removeFromKernel()
	}
	j.prims[i] = p
	j.syncKernel()
}

// Coord returns the joint frame in slot i's primitive space.
func (j *Joint) Coord(i int) geom.Frame {
	checkSlot(i)
	return j.coords[i]
}

// SetCoord replaces the joint frame of slot i.
func (j *Joint) SetCoord(i int, f geom.Frame) {
	checkSlot(i)
	j.coords[i] = f
}

// World returns the world the joint is a member of, or nil.
func (j *Joint) World() *World {
	return j.world
}

// Active reports whether the joint is registered with its world's kernel.
func (j *Joint) Active() bool {
	return j.conn != nil
}

// IsAssembly reports whether the joint rigidly binds its primitives (Snap, Weld, Glue).
func (j *Joint) IsAssembly() bool {
	return behaviors[j.typ].assembly
}

// SpanWidth is the debug line width used when drawing an assembly joint.
func (j *Joint) SpanWidth() float32 {
	return behaviors[j.typ].spanWidth
}

// Owner returns the object that owns this joint (a scene node), or nil.
func (j *Joint) Owner() any {
	return j.owner
}

// SetOwner records the joint's owner.
func (j *Joint) SetOwner(o any) {
	j.owner = o
}

// WorldCoord returns slot i's joint frame in world space, or false if the slot is empty.
func (j *Joint) WorldCoord(i int) (geom.Frame, bool) {
	checkSlot(i)
	p := j.prims[i]
	if p == nil {
		return geom.Identity(), false
	}
	return p.CoordinateFrame().Mul(j.coords[i]), true
}

func (j *Joint) syncKernel() {
	want := j.world != nil && j.prims[0] != nil && j.prims[1] != nil
	switch {
	case want && j.conn == nil:
		j.putInKernel()
	case !want && j.conn != nil:
		j.removeFromKernel()
	}
}

func (j *Joint) putInKernel() {
	c := &connector{joint: j, angle: j.angle}
	behaviors[j.typ].putInKernel(j, c)
	j.world.kernel.insert(c)
	j.conn = c
}

func (j *Joint) removeFromKernel() {
	c := j.conn
	behaviors[j.typ].removeFromKernel(j, c)
	j.angle = c.angle
	c.kernel.remove(c)
	j.conn = nil
}

func (j *Joint) mustBe(t JointType) {
	if j.typ != t {
		panic(fmt.Sprintf("physics: %s joint used as %s", j.typ, t))
	}
}
