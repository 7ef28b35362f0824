package joints

import (
	"joint-engine/internal/geom"
	"joint-engine/internal/physics"
	"joint-engine/internal/scene"
)

const (
	featurePositionTolerance = 0.05
	featureAxisTolerance     = 0.01
)

// JoinParts builds the joint implied by the first pair of touching faces of a and b
// whose surfaces can join, parents it under a and returns it. ok is false when no
// face pair can join.
func JoinParts(a, b *scene.Part) (scene.Node, bool) {
	if a == nil || b == nil || a == b || a.IsDestroyed() || b.IsDestroyed() {
		return nil, false
	}
	for _, n0 := range geom.Faces {
		for _, n1 := range geom.Faces {
			j, ok := physics.CanBuildJoint(a.Primitive(), b.Primitive(), n0, n1)
			if !ok {
				continue
			}
			node := Wrap(j)
			if err := node.AsInstance().SetParent(a); err != nil {
				node.AsInstance().Destroy()
				return nil, false
			}
			return node, true
		}
	}
	return nil, false
}

// motorAndHole sorts a and b into a MotorFeature and a Hole.
func motorAndHole(a, b scene.Node) (*MotorFeature, *Hole, bool) {
	if m, ok := a.(*MotorFeature); ok {
		h, ok := b.(*Hole)
		return m, h, ok
	}
	if m, ok := b.(*MotorFeature); ok {
		h, ok := a.(*Hole)
		return m, h, ok
	}
	return nil, nil, false
}

// CanJoin reports whether a and b are a MotorFeature and a Hole, on different parts,
// whose world frames share a position and a Z axis.
func CanJoin(a, b scene.Node) bool {
	m, h, ok := motorAndHole(a, b)
	if !ok {
		return false
	}
	mp, hp := m.Part(), h.Part()
	if mp == nil || hp == nil || mp == hp {
		return false
	}
	mc, _ := m.RenderCoord()
	hc, _ := h.RenderCoord()
	if mc.Translation.Sub(hc.Translation).Len() > featurePositionTolerance {
		return false
	}
	return mc.Axis(2).Dot(hc.Axis(2)) >= 1-featureAxisTolerance
}

// Join creates a VelocityMotor under the MotorFeature driving into the Hole. ok is
// false when CanJoin is false.
func Join(a, b scene.Node) (*VelocityMotor, bool) {
	if !CanJoin(a, b) {
		return nil, false
	}
	m, h, _ := motorAndHole(a, b)
	vm := NewVelocityMotor()
	vm.SetHole(h)
	// Features are always accepted as VelocityMotor parents.
	_ = vm.SetParent(m)
	return vm, true
}
