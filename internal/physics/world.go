package physics

import (
	"fmt"

	"joint-engine/internal/geom"
	"joint-engine/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
)

// World holds primitives and joints and runs a simple 3D step: ui steps for joints that
// have one, connector integration, gravity, and AABB push-apart for free primitives.
//
// A World is not safe for concurrent use; scene edits and Step run on one goroutine.
type World struct {
	Gravity mgl32.Vec3
	prims   []*Primitive
	joints  []*Joint
	kernel  kernel
	stepID  int
	stats   Stats
	log     *logger.Logger
}

// Stats counts joint membership transitions since the world was created.
type Stats struct {
	Inserts int
	Removes int
}

// NewWorld returns a world with gravity (0, -9.8, 0); the scene uses Y-up.
func NewWorld() *World {
	return &World{Gravity: mgl32.Vec3{0, -9.8, 0}}
}

// SetLogger attaches a logger for membership events. nil disables logging.
func (w *World) SetLogger(l *logger.Logger) {
	w.log = l
}

// SetGravity sets the gravity vector.
func (w *World) SetGravity(g mgl32.Vec3) {
	w.Gravity = g
}

// AddPrimitive appends p. Order is preserved for stepping. Panics if p is already in a world.
func (w *World) AddPrimitive(p *Primitive) {
	if p.world != nil {
		panic("physics: primitive already in a world")
	}
	p.world = w
	w.prims = append(w.prims, p)
}

// RemovePrimitive drops p. Panics if p is not in w.
func (w *World) RemovePrimitive(p *Primitive) {
	if p.world != w {
		panic("physics: primitive not in this world")
	}
	for i, other := range w.prims {
		if other == p {
			w.prims = append(w.prims[:i], w.prims[i+1:]...)
			break
		}
	}
	p.world = nil
}

// Primitives returns the primitives in insertion order. The slice must not be modified.
func (w *World) Primitives() []*Primitive {
	return w.prims
}

// InsertJoint makes j a member of w and registers it with the kernel when both slots are
// filled. The joint's ui step follows w's step ids from then on. Inserting a joint that is already in any world is a programming error.
func (w *World) InsertJoint(j *Joint) {
	if j.world != nil {
		panic(fmt.Sprintf("physics: %s joint already in a world", j.typ))
	}
	j.world = w
	// Step ids restart in every world.
	j.rotate.lastStep = 0
	w.joints = append(w.joints, j)
	j.syncKernel()
	w.stats.Inserts++
	w.log.Logf("physics: inserted %s joint (active=%t)", j.typ, j.Active())
}

// RemoveJoint ends j's membership in w. Removing a joint that is not in w panics.
func (w *World) RemoveJoint(j *Joint) {
	if j.world != w {
		panic(fmt.Sprintf("physics: %s joint not in this world", j.typ))
	}
	if j.conn != nil {
		j.removeFromKernel()
	}
	for i, other := range w.joints {
		if other == j {
			w.joints = append(w.joints[:i], w.joints[i+1:]...)
			break
		}
	}
	j.world = nil
	w.stats.Removes++
	w.log.Logf("physics: removed %s joint", j.typ)
}

// Joints returns the member joints in insertion order. The slice must not be modified.
func (w *World) Joints() []*Joint {
	return w.joints
}

// ActiveJoints returns how many joints are registered with the kernel.
func (w *World) ActiveJoints() int {
	return w.kernel.len()
}

// Stats returns the membership counters.
func (w *World) Stats() Stats {
	return w.stats
}

// StepID returns the id of the last completed step.
func (w *World) StepID() int {
	return w.stepID
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b geom.Extents) (depth float32, axis int) {
	axis = -1
	for i := 0; i < 3; i++ {
		overlap := min(a.Max[i], b.Max[i]) - max(a.Min[i], b.Min[i])
		if overlap <= 0 {
			return 0, -1
		}
		if axis < 0 || overlap < depth {
			depth, axis = overlap, i
		}
	}
	return depth, axis
}

// Step advances the simulation by dt seconds. Joints with a ui step see a new,
// increasing step id once per call, before the kernel integrates connector angles.
// Free primitives then fall under gravity and are pushed apart along the axis of
// minimum penetration; anchored primitives never move.
func (w *World) Step(dt float32) {
	w.stepID++
	for _, j := range w.joints {
		j.StepUi(w.stepID)
	}
	w.kernel.step(dt)

	for _, p := range w.prims {
		if p.Anchored {
			continue
		}
		p.Velocity = p.Velocity.Add(w.Gravity.Mul(dt))
		p.frame.Translation = p.frame.Translation.Add(p.Velocity.Mul(dt))
	}

	for i := 0; i < len(w.prims); i++ {
		pi := w.prims[i]
		boxI := pi.ExtentsWorld()
		for k := i + 1; k < len(w.prims); k++ {
			pk := w.prims[k]
			if pi.Anchored && pk.Anchored {
				continue
			}
			depth, axis := penetrationAxis(boxI, pk.ExtentsWorld())
			if axis < 0 {
				continue
			}
			// Push apart along axis; the lower-centred body moves down. Anchored bodies stay put.
			sign := float32(1)
			if pi.frame.Translation[axis] > pk.frame.Translation[axis] {
				sign = -1
			}
			var moveI, moveK float32
			switch {
			case pi.Anchored:
				moveK = depth
			case pk.Anchored:
				moveI = -depth
			default:
				total := pi.Mass + pk.Mass
				moveI = -depth * (pk.Mass / total)
				moveK = depth * (pi.Mass / total)
			}
			pi.frame.Translation[axis] += sign * moveI
			pk.frame.Translation[axis] += sign * moveK
			if !pi.Anchored {
				pi.Velocity[axis] = 0
			}
			if !pk.Anchored {
				pk.Velocity[axis] = 0
			}
			boxI = pi.ExtentsWorld()
		}
	}
}
