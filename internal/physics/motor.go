package physics

// MaxVelocity returns the motor's maximum angular speed in rad/s.
// Motor accessors panic on joints of any other type.
func (j *Joint) MaxVelocity() float32 {
	j.mustBe(MotorJoint)
	return j.motor.maxVelocity
}

// SetMaxVelocity sets the maximum angular speed used while seeking the desired angle.
func (j *Joint) SetMaxVelocity(v float32) {
	j.mustBe(MotorJoint)
	j.motor.maxVelocity = v
	if j.conn != nil {
		j.conn.maxVelocity = v
	}
}

// DesiredAngle returns the target angle in radians.
func (j *Joint) DesiredAngle() float32 {
	j.mustBe(MotorJoint)
	return j.motor.desiredAngle
}

// SetDesiredAngle sets the target angle.
func (j *Joint) SetDesiredAngle(v float32) {
	j.mustBe(MotorJoint)
	j.motor.desiredAngle = v
	if j.conn != nil {
		j.conn.desiredAngle = v
	}
}

// CurrentAngle returns the live kernel angle while active, the stored angle otherwise.
func (j *Joint) CurrentAngle() float32 {
	j.mustBe(MotorJoint)
	if j.conn != nil {
		return j.conn.angle
	}
	return j.angle
}

// SetCurrentAngle forces the joint to angle v; the motor seeks from there.
func (j *Joint) SetCurrentAngle(v float32) {
	j.mustBe(MotorJoint)
	j.angle = v
	if j.conn != nil {
		j.conn.angle = v
	}
}

// Angle returns the hinge angle of any joint type (zero for rigid joints).
func (j *Joint) Angle() float32 {
	if j.conn != nil {
		return j.conn.angle
	}
	return j.angle
}
