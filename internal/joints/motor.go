package joints

import (
	"fmt"

	"joint-engine/internal/physics"
)

// Motor is an AutoJoint over a motor joint: a hinge that seeks DesiredAngle at up to
// MaxVelocity rad/s.
type Motor struct {
	AutoJoint
}

// NewMotor returns a detached Motor with an empty motor joint.
func NewMotor() *Motor {
	return WrapMotor(physics.NewJoint(physics.MotorJoint))
}

// WrapMotor adopts an existing motor joint. Any other joint type panics.
func WrapMotor(j *physics.Joint) *Motor {
	if j.Type() != physics.MotorJoint {
		panic(fmt.Sprintf("joints: cannot wrap %s joint as Motor", j.Type()))
	}
	m := &Motor{}
	m.init(m, j)
	return m
}

func (m *Motor) MaxVelocity() float32     { return m.joint.MaxVelocity() }
func (m *Motor) SetMaxVelocity(v float32) { setMotorValue(&m.JointInstance, "MaxVelocity", v) }

func (m *Motor) DesiredAngle() float32     { return m.joint.DesiredAngle() }
func (m *Motor) SetDesiredAngle(v float32) { setMotorValue(&m.JointInstance, "DesiredAngle", v) }

// CurrentAngle reads the live angle from the kernel while the joint is active.
func (m *Motor) CurrentAngle() float32 { return m.joint.CurrentAngle() }

// SetCurrentAngle forces the hinge to v; the motor seeks from there.
func (m *Motor) SetCurrentAngle(v float32) { setMotorValue(&m.JointInstance, "CurrentAngle", v) }

// motorFields maps motor property names to the joint accessors.
var motorFields = map[string]struct {
	get func(*physics.Joint) float32
	set func(*physics.Joint, float32)
}{
	"MaxVelocity":  {(*physics.Joint).MaxVelocity, (*physics.Joint).SetMaxVelocity},
	"DesiredAngle": {(*physics.Joint).DesiredAngle, (*physics.Joint).SetDesiredAngle},
	"CurrentAngle": {(*physics.Joint).CurrentAngle, (*physics.Joint).SetCurrentAngle},
}

// setMotorValue writes a motor field and reports the change; equal values are ignored.
func setMotorValue(ji *JointInstance, name string, v float32) {
	f := motorFields[name]
	if f.get(ji.joint) == v {
		return
	}
	f.set(ji.joint, v)
	ji.RaisePropertyChanged(name)
}
