package joints

import (
	"joint-engine/internal/physics"
	"joint-engine/internal/scene"
	"joint-engine/internal/signal"
)

// VelocityMotor drives a motor joint between the Feature it is parented to (slot 0)
// and a Hole elsewhere in the tree (slot 1). Slots are never set directly: they are
// re-derived from the parent and the Hole whenever either moves, whenever a bound
// feature changes its selectors, and whenever a bound part is resized.
type VelocityMotor struct {
	JointInstance
	hole     *Hole
	holeConn *signal.Connection
	watches  [2]slotWatch
}

// slotWatch tracks the feature and part slot i is derived from.
type slotWatch struct {
	feature     *Feature
	part        *scene.Part
	featureConn *signal.Connection
	partConn    *signal.Connection
}

func (w *slotWatch) stop() {
	w.featureConn.Disconnect()
	w.partConn.Disconnect()
	*w = slotWatch{}
}

// NewVelocityMotor returns a detached VelocityMotor with an empty motor joint.
func NewVelocityMotor() *VelocityMotor {
	vm := &VelocityMotor{}
	vm.init(vm, "VelocityMotor", physics.NewJoint(physics.MotorJoint))
	return vm
}

func (vm *VelocityMotor) ClassName() string { return "VelocityMotor" }

// AskSetParent accepts features and plain containers.
func (vm *VelocityMotor) AskSetParent(parent scene.Node) bool {
	return featureOf(parent) != nil || scene.IsPlain(parent)
}

// OnAncestorChanged rebinds slot 0 to the parent feature and moves the joint into
// the world of the enclosing Workspace.
func (vm *VelocityMotor) OnAncestorChanged(scene.AncestorChanged) {
	vm.bind(0)
	vm.moveToWorld(scene.WorldIfInWorkspace(vm))
}

// OnDestroy drops the Hole subscription and empties both slots.
func (vm *VelocityMotor) OnDestroy() {
	vm.holeConn.Disconnect()
	vm.holeConn = nil
	for i := range vm.watches {
		vm.watches[i].stop()
		vm.joint.SetPrimitive(i, nil)
	}
	vm.JointInstance.OnDestroy()
}

// Hole returns the referenced hole, or nil.
func (vm *VelocityMotor) Hole() *Hole {
	return vm.hole
}

// SetHole references h for slot 1 and follows its ancestry from now on.
func (vm *VelocityMotor) SetHole(h *Hole) {
	if h == vm.hole {
		return
	}
	vm.holeConn.Disconnect()
	vm.holeConn = nil
	vm.hole = h
	if h != nil {
		vm.holeConn = h.AncestryChanged.Connect(func(scene.AncestorChanged) { vm.bind(1) })
	}
	vm.RaisePropertyChanged("Hole")
	vm.bind(1)
}

// source returns the feature slot i is derived from.
func (vm *VelocityMotor) source(i int) *Feature {
	if i == 0 {
		return featureOf(vm.Parent())
	}
	if vm.hole == nil || vm.hole.IsDestroyed() {
		return nil
	}
	return &vm.hole.Feature
}

// bind re-derives slot i: its primitive from the source feature's part and its frame
// from the feature's current geometry.
func (vm *VelocityMotor) bind(i int) {
	f := vm.source(i)
	var part *scene.Part
	if f != nil {
		part = f.Part()
	}
	vm.watch(i, f, part)

	var prim *physics.Primitive
	if part != nil {
		prim = part.Primitive()
		vm.joint.SetCoord(i, f.ComputeLocalCoordinateFrame())
	}
	vm.joint.SetPrimitive(i, prim)
}

func (vm *VelocityMotor) watch(i int, f *Feature, part *scene.Part) {
	w := &vm.watches[i]
	if w.feature == f && w.part == part {
		return
	}
	w.stop()
	w.feature, w.part = f, part
	if f != nil {
		w.featureConn = f.PropertyChanged.Connect(func(name string) {
			switch name {
			case "FaceId", "TopBottom", "LeftRight", "InOut":
				vm.bind(i)
			}
		})
	}
	if part != nil {
		w.partConn = part.PropertyChanged.Connect(func(name string) {
			if name == "Size" {
				vm.bind(i)
			}
		})
	}
}

func (vm *VelocityMotor) MaxVelocity() float32 { return vm.joint.MaxVelocity() }
func (vm *VelocityMotor) SetMaxVelocity(v float32) {
	setMotorValue(&vm.JointInstance, "MaxVelocity", v)
}

func (vm *VelocityMotor) DesiredAngle() float32 { return vm.joint.DesiredAngle() }
func (vm *VelocityMotor) SetDesiredAngle(v float32) {
	setMotorValue(&vm.JointInstance, "DesiredAngle", v)
}

func (vm *VelocityMotor) CurrentAngle() float32 { return vm.joint.CurrentAngle() }
func (vm *VelocityMotor) SetCurrentAngle(v float32) {
	setMotorValue(&vm.JointInstance, "CurrentAngle", v)
}
