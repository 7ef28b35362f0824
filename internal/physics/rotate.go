package physics

import (
	"joint-engine/internal/geom"

	"github.com/chewxy/math32"
)

const (
	// UiStepsPerSecond converts ui step ids into seconds for Sin channels.
	UiStepsPerSecond = 60
	// rotatePServoSpeed is the angular speed (rad/s) of a RotateP joint seeking its channel.
	rotatePServoSpeed = 2 * math32.Pi
	// rotateBaseTorque scales the torque arm length into a connector torque limit.
	rotateBaseTorque = 100

	faceAngleTolerance = 0.01
	faceTouchTolerance = 0.05
)

// AxlePrim returns the primitive carrying the rotating surface (slot 0).
func (j *Joint) AxlePrim() *Primitive {
	return j.prims[0]
}

// HolePrim returns the primitive the axle turns in (slot 1).
func (j *Joint) HolePrim() *Primitive {
	return j.prims[1]
}

// AxleID returns the axle face, read from slot 0's frame.
func (j *Joint) AxleID() geom.NormalID {
	return geom.NormalFromMatrix(j.coords[0].Rotation)
}

// HoleID returns the hole-side axis direction, read from slot 1's frame.
func (j *Joint) HoleID() geom.NormalID {
	return geom.NormalFromMatrix(j.coords[1].Rotation)
}

// CanStepUi reports whether the joint type has a per-tick auxiliary step.
func (j *Joint) CanStepUi() bool {
	return behaviors[j.typ].stepUi != nil
}

// StepUi runs the type's auxiliary step for step id stepID. Ids that do not increase
// are ignored. Only the joint and its own connector are updated.
func (j *Joint) StepUi(stepID int) {
	b := behaviors[j.typ]
	if b.stepUi == nil || stepID <= j.rotate.lastStep {
		return
	}
	j.rotate.lastStep = stepID
	b.stepUi(j, stepID)
}

// ChannelValue returns the last value computed by StepUi.
func (j *Joint) ChannelValue() float32 {
	return j.rotate.channel
}

// TorqueArm returns the torque arm length computed by the last StepUi.
func (j *Joint) TorqueArm() float32 {
	return j.rotate.torqueArm
}

func stepRotateV(j *Joint, stepID int) {
	j.rotate.channel = j.channelValue(stepID)
	j.rotate.torqueArm = j.torqueArmLength()
	if c := j.conn; c != nil {
		c.velocity = j.rotate.channel
		c.maxTorque = rotateBaseTorque * j.rotate.torqueArm
	}
}

func stepRotateP(j *Joint, stepID int) {
	j.rotate.channel = j.channelValue(stepID)
	j.rotate.torqueArm = j.torqueArmLength()
	if c := j.conn; c != nil {
		c.desiredAngle = j.rotate.channel
		c.maxTorque = rotateBaseTorque * j.rotate.torqueArm
	}
}

// channelValue reads the axle surface input at the given step.
func (j *Joint) channelValue(stepID int) float32 {
	axle := j.prims[0]
	if axle == nil {
		return 0
	}
	s := axle.Surface(j.AxleID())
	switch s.Input {
	case Constant:
		return s.ParamB
	case Sin:
		t := float32(stepID) / UiStepsPerSecond
		return s.ParamA * math32.Sin(s.ParamB*t)
	}
	return 0
}

// torqueArmLength is half the largest extent of the hole primitive across the axis.
func (j *Joint) torqueArmLength() float32 {
	hole := j.prims[1]
	if hole == nil {
		return 0
	}
	size := hole.Size()
	axis := j.HoleID().Axis()
	var arm float32
	for a := 0; a < 3; a++ {
		if a != axis {
			arm = math32.Max(arm, size[a]*0.5)
		}
	}
	return arm
}

func rotateTypeFor(s SurfaceType) JointType {
	switch s {
	case Motor:
		return RotateVJoint
	case SteppingMotor:
		return RotatePJoint
	}
	return RotateJoint
}

func isStudLike(s SurfaceType) bool {
	return s == Studs || s == Inlet || s == Universal
}

// JointTypeForSurfaces maps a pair of touching surface types to the joint they build.
// axleFirst is false when the second surface carries the rotating side, in which case
// the caller swaps the primitives so that the axle ends up in slot 0. ok is false when
// the pair cannot join.
func JointTypeForSurfaces(s0, s1 SurfaceType) (t JointType, axleFirst bool, ok bool) {
	r0, r1 := s0.IsRotate(), s1.IsRotate()
	switch {
	case r0 && r1:
		return 0, false, false
	case r0:
		return rotateTypeFor(s0), true, true
	case r1:
		return rotateTypeFor(s1), false, true
	case s0 == Weld || s1 == Weld:
		return WeldJoint, true, true
	case s0 == Glue || s1 == Glue:
		return GlueJoint, true, true
	case isStudLike(s0) && isStudLike(s1) && (s0 != s1 || s0 == Universal):
		return SnapJoint, true, true
	}
	return 0, false, false
}

// CanBuildJoint returns a new joint connecting face n0 of p0 to face n1 of p1 when the
// surface types are compatible and the faces touch. The joint frames coincide in world
// space at the centre of the slot 0 face. The returned joint is in no world.
func CanBuildJoint(p0, p1 *Primitive, n0, n1 geom.NormalID) (*Joint, bool) {
	if p0 == nil || p1 == nil || p0 == p1 || !n0.Valid() || !n1.Valid() {
		return nil, false
	}
	t, axleFirst, ok := JointTypeForSurfaces(p0.Surface(n0).Type, p1.Surface(n1).Type)
	if !ok || !facesTouch(p0, p1, n0, n1) {
		return nil, false
	}
	if !axleFirst {
		p0, p1 = p1, p0
		n0 = n1
	}
	c0 := faceFrame(p0, n0)
	c1 := p1.CoordinateFrame().Inverse().Mul(p0.CoordinateFrame()).Mul(c0)
	return NewJointBetween(t, p0, p1, c0, c1), true
}

// faceFrame is the frame at the centre of face n looking out along the normal.
func faceFrame(p *Primitive, n geom.NormalID) geom.Frame {
	return geom.NewFrame(n.Matrix(), p.ExtentsLocal().FaceCenter(n))
}

// facesTouch reports whether the faces are antiparallel, coplanar and the centre of one
// lies on the other.
func facesTouch(p0, p1 *Primitive, n0, n1 geom.NormalID) bool {
	f0, f1 := p0.CoordinateFrame(), p1.CoordinateFrame()
	w0 := f0.VectorToWorld(n0.Vector())
	w1 := f1.VectorToWorld(n1.Vector())
	if w0.Dot(w1) > -1+faceAngleTolerance {
		return false
	}
	c0 := f0.PointToWorld(p0.ExtentsLocal().FaceCenter(n0))
	c1 := f1.PointToWorld(p1.ExtentsLocal().FaceCenter(n1))
	if math32.Abs(c0.Sub(c1).Dot(w1)) > faceTouchTolerance {
		return false
	}
	return p1.ExtentsLocal().Contains(f1.PointToObject(c0), faceTouchTolerance) ||
		p0.ExtentsLocal().Contains(f0.PointToObject(c1), faceTouchTolerance)
}
