package joints

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"joint-engine/internal/adorn"
	"joint-engine/internal/geom"
	"joint-engine/internal/scene"
)

// InsetMargin is how far an Inset feature is pulled in from the face edges, and how
// deep it is recessed below the face.
const InsetMargin = 1

// TopBottom selects the row of a feature on its face.
type TopBottom int

const (
	Top TopBottom = iota
	VerticalCenter
	Bottom
)

// LeftRight selects the column of a feature on its face.
type LeftRight int

const (
	Left LeftRight = iota
	HorizontalCenter
	Right
)

// InOut selects the depth of a feature.
type InOut int

const (
	Edge InOut = iota
	Inset
	DepthCenter
)

var (
	topBottomNames = [...]string{"Top", "Center", "Bottom"}
	leftRightNames = [...]string{"Left", "Center", "Right"}
	inOutNames     = [...]string{"Edge", "Inset", "Center"}
)

func (v TopBottom) String() string { return enumName(topBottomNames[:], int(v), "TopBottom") }
func (v LeftRight) String() string { return enumName(leftRightNames[:], int(v), "LeftRight") }
func (v InOut) String() string     { return enumName(inOutNames[:], int(v), "InOut") }

func enumName(names []string, v int, kind string) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

func parseEnum(names []string, s, kind string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

func ParseTopBottom(s string) (TopBottom, error) {
	i, err := parseEnum(topBottomNames[:], s, "TopBottom")
	return TopBottom(i), err
}

func ParseLeftRight(s string) (LeftRight, error) {
	i, err := parseEnum(leftRightNames[:], s, "LeftRight")
	return LeftRight(i), err
}

func ParseInOut(s string) (InOut, error) {
	i, err := parseEnum(inOutNames[:], s, "InOut")
	return InOut(i), err
}

// Orientation decides which way the Z axis of a feature frame points.
type Orientation int

const (
	// ZOut points along the face normal, away from the part.
	ZOut Orientation = iota
	// ZIn points into the part.
	ZIn
)

// Selectors locate a feature on a box.
type Selectors struct {
	Face      geom.NormalID
	TopBottom TopBottom
	LeftRight LeftRight
	InOut     InOut
}

// DefaultSelectors is the centre of the +X face.
var DefaultSelectors = Selectors{
	Face:      geom.NormalX,
	TopBottom: VerticalCenter,
	LeftRight: HorizontalCenter,
	InOut:     DepthCenter,
}

// LocalFrame computes a feature frame on ext, in the same space as ext.
//
// The far corner of the box is projected into the face's uvw space. Its u and v
// magnitudes are placed by the row and column selectors. Inset pulls u and v toward
// zero by InsetMargin, never past it, and recesses the point by InsetMargin below the
// face, at most to the box centre. DepthCenter puts the point at the face centre.
// Signed zeros are normalized to +0.
func LocalFrame(ext geom.Extents, s Selectors, o Orientation) geom.Frame {
	uvw := geom.Abs(geom.ObjectToUvw(ext.Max, s.Face))
	uvw[2] = 0

	switch s.LeftRight {
	case Left:
		uvw[0] = -uvw[0]
	case HorizontalCenter:
		uvw[0] = 0
	}
	switch s.TopBottom {
	case VerticalCenter:
		uvw[1] = 0
	case Bottom:
		uvw[1] = -uvw[1]
	}
	switch s.InOut {
	case Inset:
		uvw[0] = shrink(uvw[0], InsetMargin)
		uvw[1] = shrink(uvw[1], InsetMargin)
		halfDepth := ext.Size()[s.Face.Axis()] / 2
		uvw[2] = -math32.Min(InsetMargin, halfDepth)
	case DepthCenter:
		uvw[0], uvw[1] = 0, 0
	}

	pt := ext.FaceCenter(s.Face).Add(geom.UvwToObject(uvw, s.Face))
	for i := range pt {
		if pt[i] == 0 {
			pt[i] = 0
		}
	}

	face := s.Face
	if o == ZIn {
		face = face.Opposite()
	}
	return geom.NewFrame(face.Matrix(), pt)
}

// shrink moves x toward zero by margin without crossing it.
func shrink(x, margin float32) float32 {
	if x == 0 {
		return 0
	}
	return math32.Copysign(math32.Max(0, math32.Abs(x)-margin), x)
}

// Feature is a symbolic point on its parent part's surface. Its frame is recomputed
// from the part's current extents every time it is asked for.
type Feature struct {
	scene.Instance
	sel         Selectors
	orientation Orientation
}

type featureNode interface {
	scene.Node
	AsFeature() *Feature
}

func (f *Feature) AsFeature() *Feature { return f }

func (f *Feature) ClassName() string { return "Feature" }

func (f *Feature) init(n scene.Node, name string, o Orientation) {
	scene.Init(n, name)
	f.sel = DefaultSelectors
	f.orientation = o
}

// NewFeature returns a detached outward facing feature.
func NewFeature() *Feature {
	f := &Feature{}
	f.init(f, "Feature", ZOut)
	return f
}

// AskSetParent accepts parts and plain containers.
func (f *Feature) AskSetParent(parent scene.Node) bool {
	_, isPart := parent.(*scene.Part)
	return isPart || scene.IsPlain(parent)
}

// Part returns the parent part, or nil.
func (f *Feature) Part() *scene.Part {
	p, _ := f.Parent().(*scene.Part)
	return p
}

// Selectors returns the current selector values.
func (f *Feature) Selectors() Selectors {
	return f.sel
}

// Orientation returns the feature's Z axis convention.
func (f *Feature) Orientation() Orientation {
	return f.orientation
}

// ComputeLocalCoordinateFrame returns the feature frame in the parent part's space,
// or the identity frame when the parent is not a part.
func (f *Feature) ComputeLocalCoordinateFrame() geom.Frame {
	part := f.Part()
	if part == nil {
		return geom.Identity()
	}
	return LocalFrame(part.Primitive().ExtentsLocal(), f.sel, f.orientation)
}

// RenderCoord returns the feature frame in world space. ok is false when there is no
// parent part, meaning there is nothing to draw.
func (f *Feature) RenderCoord() (geom.Frame, bool) {
	part := f.Part()
	if part == nil {
		return geom.Identity(), false
	}
	return part.CFrame().Mul(f.ComputeLocalCoordinateFrame()), true
}

func (f *Feature) FaceID() geom.NormalID { return f.sel.Face }
func (f *Feature) TopBottom() TopBottom  { return f.sel.TopBottom }
func (f *Feature) LeftRight() LeftRight  { return f.sel.LeftRight }
func (f *Feature) InOut() InOut          { return f.sel.InOut }

func (f *Feature) SetFaceID(v geom.NormalID) {
	if !v.Valid() {
		panic(fmt.Sprintf("joints: invalid face id %d", int(v)))
	}
	setSelector(f, &f.sel.Face, v, "FaceId")
}

func (f *Feature) SetTopBottom(v TopBottom) { setSelector(f, &f.sel.TopBottom, v, "TopBottom") }
func (f *Feature) SetLeftRight(v LeftRight) { setSelector(f, &f.sel.LeftRight, v, "LeftRight") }
func (f *Feature) SetInOut(v InOut)         { setSelector(f, &f.sel.InOut, v, "InOut") }

func setSelector[T comparable](f *Feature, field *T, v T, name string) {
	if *field == v {
		return
	}
	*field = v
	f.RaisePropertyChanged(name)
}

// Hole is a feature whose Z axis points into its part. A VelocityMotor binds its
// second slot to a Hole.
type Hole struct {
	Feature
}

// NewHole returns a detached Hole.
func NewHole() *Hole {
	h := &Hole{}
	h.init(h, "Hole", ZIn)
	return h
}

func (h *Hole) ClassName() string { return "Hole" }

func (h *Hole) ShouldRender3dAdorn(opts adorn.Options) bool { return opts.Features }

// Render3dAdorn draws a short black cylinder along the hole axis.
func (h *Hole) Render3dAdorn(a adorn.Adorn) {
	if c, ok := h.RenderCoord(); ok {
		a.Cylinder(c, 2, 0.2, 0.3, adorn.Black)
	}
}

// MotorFeature is a feature whose Z axis points out of its part, the drive shaft of a
// VelocityMotor.
type MotorFeature struct {
	Feature
}

// NewMotorFeature returns a detached MotorFeature.
func NewMotorFeature() *MotorFeature {
	m := &MotorFeature{}
	m.init(m, "MotorFeature", ZOut)
	return m
}

func (m *MotorFeature) ClassName() string { return "MotorFeature" }

func (m *MotorFeature) ShouldRender3dAdorn(opts adorn.Options) bool { return opts.Features }

// Render3dAdorn draws a yellow shaft along the feature axis.
func (m *MotorFeature) Render3dAdorn(a adorn.Adorn) {
	if c, ok := m.RenderCoord(); ok {
		a.Cylinder(c, 2, 1.0, 0.3, adorn.Yellow)
	}
}

// featureOf returns n as a feature, or nil.
func featureOf(n scene.Node) *Feature {
	if fn, ok := n.(featureNode); ok {
		return fn.AsFeature()
	}
	return nil
}
