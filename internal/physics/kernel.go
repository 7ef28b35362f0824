package physics

import "github.com/chewxy/math32"

type driveMode int

const (
	driveLocked driveMode = iota
	driveFree
	driveVelocity
	driveServo
)

// connector is the kernel-side record of an active joint. The kernel owns the live
// hinge angle while the connector exists.
type connector struct {
	joint  *Joint
	kernel *kernel
	drive  driveMode

	angle        float32
	velocity     float32
	desiredAngle float32
	maxVelocity  float32
	maxTorque    float32
}

// step advances the connector's angle by dt seconds.
func (c *connector) step(dt float32) {
	switch c.drive {
	case driveVelocity:
		c.angle += c.velocity * dt
	case driveServo:
		delta := c.desiredAngle - c.angle
		limit := math32.Abs(c.maxVelocity) * dt
		if math32.Abs(delta) <= limit {
			c.angle = c.desiredAngle
		} else {
			c.angle += math32.Copysign(limit, delta)
		}
	}
}

// kernel keeps the connectors of active joints in registration order.
type kernel struct {
	connectors []*connector
}

func (k *kernel) insert(c *connector) {
	c.kernel = k
	k.connectors = append(k.connectors, c)
}

func (k *kernel) remove(c *connector) {
	for i, other := range k.connectors {
		if other == c {
			k.connectors = append(k.connectors[:i], k.connectors[i+1:]...)
			break
		}
	}
	c.kernel = nil
}

func (k *kernel) step(dt float32) {
	for _, c := range k.connectors {
		c.step(dt)
	}
}

func (k *kernel) len() int {
	return len(k.connectors)
}
