// Package joints holds the scene nodes that own physics joints: AutoJoint and its
// typed variants, Motor, the surface Features and VelocityMotor. These nodes keep
// their joint's primitive slots and world membership in step with the scene tree.
package joints

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"joint-engine/internal/adorn"
	"joint-engine/internal/physics"
	"joint-engine/internal/scene"
)

// JointInstance is a scene node that exclusively owns one joint. The joint is created
// with the node and released when the node is destroyed.
type JointInstance struct {
	scene.Instance
	joint *physics.Joint
}

func (ji *JointInstance) init(n scene.Node, name string, j *physics.Joint) {
	scene.Init(n, name)
	ji.joint = j
	j.SetOwner(n)
}

func (ji *JointInstance) ClassName() string { return "JointInstance" }

// Joint returns the owned joint.
func (ji *JointInstance) Joint() *physics.Joint {
	return ji.joint
}

// OnDestroy releases the joint. By now the node must be parentless and the joint out
// of every world; anything else is a lifecycle bug.
func (ji *JointInstance) OnDestroy() {
	if ji.Parent() != nil {
		panic(fmt.Sprintf("joints: %s destroyed while parented", ji.Name()))
	}
	if ji.joint.World() != nil {
		panic(fmt.Sprintf("joints: %s destroyed while its joint is in a world", ji.Name()))
	}
	ji.joint.SetOwner(nil)
}

// moveToWorld makes w the joint's world. A change is always a removal from the old
// world followed by an insertion into the new one.
func (ji *JointInstance) moveToWorld(w *physics.World) {
	old := ji.joint.World()
	if old == w {
		return
	}
	if old != nil {
		old.RemoveJoint(ji.joint)
	}
	if w != nil {
		w.InsertJoint(ji.joint)
	}
}

// ShouldRender3dAdorn draws rigid joints as spanning tree lines.
func (ji *JointInstance) ShouldRender3dAdorn(opts adorn.Options) bool {
	return opts.SpanningTree && ji.joint.IsAssembly()
}

// Render3dAdorn draws a line between the two primitives, green while the joint is
// active and red otherwise. An empty slot draws from the world origin.
func (ji *JointInstance) Render3dAdorn(a adorn.Adorn) {
	if !ji.joint.IsAssembly() {
		return
	}
	var from, to mgl32.Vec3
	if p := ji.joint.Primitive(0); p != nil {
		from = p.Position()
	}
	if p := ji.joint.Primitive(1); p != nil {
		to = p.Position()
	}
	c := adorn.Red
	if ji.joint.Active() {
		c = adorn.Green
	}
	a.LineSegment(from, to, c, ji.joint.SpanWidth())
}
