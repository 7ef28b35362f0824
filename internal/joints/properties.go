package joints

import (
	"fmt"

	"joint-engine/internal/geom"
	"joint-engine/internal/props"
	"joint-engine/internal/scene"
)

func (aj *AutoJoint) Properties() *props.Table     { return AutoJointProperties }
func (m *Motor) Properties() *props.Table          { return MotorProperties }
func (f *Feature) Properties() *props.Table        { return FeatureProperties }
func (vm *VelocityMotor) Properties() *props.Table { return VelocityMotorProperties }

var AutoJointProperties = props.NewTable(scene.InstanceProperties,
	partRef("Part0", func(n autoJointer) *scene.Part { return n.AsAutoJoint().Part0() },
		func(n autoJointer, p *scene.Part) { n.AsAutoJoint().SetPart0(p) }),
	partRef("Part1", func(n autoJointer) *scene.Part { return n.AsAutoJoint().Part1() },
		func(n autoJointer, p *scene.Part) { n.AsAutoJoint().SetPart1(p) }),
	props.New("C0", "Data",
		func(n autoJointer) geom.Frame { return n.AsAutoJoint().C0() },
		func(n autoJointer, f geom.Frame) { n.AsAutoJoint().SetC0(f) },
	).WithParser(props.Owned[autoJointer](parseFramePosition)).WithFormatter(scene.FormatFrame),
	props.New("C1", "Data",
		func(n autoJointer) geom.Frame { return n.AsAutoJoint().C1() },
		func(n autoJointer, f geom.Frame) { n.AsAutoJoint().SetC1(f) },
	).WithParser(props.Owned[autoJointer](parseFramePosition)).WithFormatter(scene.FormatFrame),
)

var MotorProperties = props.NewTable(AutoJointProperties,
	floatProp("MaxVelocity", (*Motor).MaxVelocity, (*Motor).SetMaxVelocity),
	floatProp("DesiredAngle", (*Motor).DesiredAngle, (*Motor).SetDesiredAngle),
	floatProp("CurrentAngle", (*Motor).CurrentAngle, (*Motor).SetCurrentAngle),
)

var FeatureProperties = props.NewTable(scene.InstanceProperties,
	props.New("FaceId", "Data",
		func(n featureNode) geom.NormalID { return n.AsFeature().FaceID() },
		func(n featureNode, v geom.NormalID) { n.AsFeature().SetFaceID(v) },
	).WithParser(props.Owned[featureNode](geom.ParseNormalID)),
	props.New("TopBottom", "Data",
		func(n featureNode) TopBottom { return n.AsFeature().TopBottom() },
		func(n featureNode, v TopBottom) { n.AsFeature().SetTopBottom(v) },
	).WithParser(props.Owned[featureNode](ParseTopBottom)),
	props.New("LeftRight", "Data",
		func(n featureNode) LeftRight { return n.AsFeature().LeftRight() },
		func(n featureNode, v LeftRight) { n.AsFeature().SetLeftRight(v) },
	).WithParser(props.Owned[featureNode](ParseLeftRight)),
	props.New("InOut", "Data",
		func(n featureNode) InOut { return n.AsFeature().InOut() },
		func(n featureNode, v InOut) { n.AsFeature().SetInOut(v) },
	).WithParser(props.Owned[featureNode](ParseInOut)),
)

var VelocityMotorProperties = props.NewTable(scene.InstanceProperties,
	props.New("Hole", "Data", (*VelocityMotor).Hole, (*VelocityMotor).SetHole).
		WithParser(parseHoleRef).
		WithFormatter(func(h *Hole) string {
			if h == nil {
				return ""
			}
			return h.FullName()
		}),
	floatProp("MaxVelocity", (*VelocityMotor).MaxVelocity, (*VelocityMotor).SetMaxVelocity),
	floatProp("DesiredAngle", (*VelocityMotor).DesiredAngle, (*VelocityMotor).SetDesiredAngle),
	floatProp("CurrentAngle", (*VelocityMotor).CurrentAngle, (*VelocityMotor).SetCurrentAngle),
)

func floatProp[O any](name string, get func(O) float32, set func(O, float32)) *props.Descriptor[O, float32] {
	return props.New(name, "Data", get, set).WithParser(props.Owned[O](props.ParseFloat32))
}

func partRef(name string, get func(autoJointer) *scene.Part, set func(autoJointer, *scene.Part)) *props.Descriptor[autoJointer, *scene.Part] {
	return props.New(name, "Data", get, set).
		WithParser(func(owner autoJointer, s string) (*scene.Part, error) {
			n, err := scene.ParseNodeRef(owner, s)
			if err != nil || n == nil {
				return nil, err
			}
			p, ok := n.(*scene.Part)
			if !ok {
				return nil, fmt.Errorf("%w: %s is a %s, not a Part", props.ErrType, s, n.ClassName())
			}
			return p, nil
		}).
		WithFormatter(func(p *scene.Part) string {
			if p == nil {
				return ""
			}
			return p.FullName()
		})
}

func parseHoleRef(owner *VelocityMotor, s string) (*Hole, error) {
	n, err := scene.ParseNodeRef(owner, s)
	if err != nil || n == nil {
		return nil, err
	}
	h, ok := n.(*Hole)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a Hole", props.ErrType, s, n.ClassName())
	}
	return h, nil
}

// parseFramePosition reads "x,y,z" as an unrotated frame at that position.
func parseFramePosition(s string) (geom.Frame, error) {
	v, err := props.ParseVec3(s)
	if err != nil {
		return geom.Frame{}, err
	}
	return geom.Translation(v), nil
}
