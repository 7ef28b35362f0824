package physics

// behavior is the per-type entry of the joint dispatch table.
type behavior struct {
	name string
	// assembly joints rigidly bind their primitives and are drawn as spanning tree lines.
	assembly  bool
	spanWidth float32

	putInKernel      func(j *Joint, c *connector)
	removeFromKernel func(j *Joint, c *connector)
	// stepUi is nil for types without a per-tick auxiliary step.
	stepUi func(j *Joint, stepID int)
}

var behaviors = [numJointTypes]behavior{
	SnapJoint:    {name: "Snap", assembly: true, spanWidth: 20, putInKernel: putRigid, removeFromKernel: removeNoop},
	WeldJoint:    {name: "Weld", assembly: true, spanWidth: 30, putInKernel: putRigid, removeFromKernel: removeNoop},
	GlueJoint:    {name: "Glue", assembly: true, spanWidth: 20, putInKernel: putRigid, removeFromKernel: removeNoop},
	RotateJoint:  {name: "Rotate", putInKernel: putHinge, removeFromKernel: removeNoop},
	RotatePJoint: {name: "RotateP", putInKernel: putRotateP, removeFromKernel: removeNoop, stepUi: stepRotateP},
	RotateVJoint: {name: "RotateV", putInKernel: putRotateV, removeFromKernel: removeNoop, stepUi: stepRotateV},
	MotorJoint:   {name: "Motor", putInKernel: putMotor, removeFromKernel: removeNoop},
}

func putRigid(j *Joint, c *connector) {
	c.drive = driveLocked
}

func putHinge(j *Joint, c *connector) {
	c.drive = driveFree
}

func putRotateV(j *Joint, c *connector) {
	c.drive = driveVelocity
	c.velocity = j.rotate.channel
	c.maxTorque = rotateBaseTorque * j.rotate.torqueArm
}

func putRotateP(j *Joint, c *connector) {
	c.drive = driveServo
	c.maxVelocity = rotatePServoSpeed
	c.desiredAngle = j.rotate.channel
	c.maxTorque = rotateBaseTorque * j.rotate.torqueArm
}

func putMotor(j *Joint, c *connector) {
	c.drive = driveServo
	c.maxVelocity = j.motor.maxVelocity
	c.desiredAngle = j.motor.desiredAngle
}

func removeNoop(*Joint, *connector) {}
