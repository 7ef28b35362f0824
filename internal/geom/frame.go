package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is a rigid transform: a rotation followed by a translation.
// The zero Frame has a zero rotation; use Identity for the neutral frame.
type Frame struct {
	Rotation    mgl32.Mat3
	Translation mgl32.Vec3
}

// Identity returns the frame that maps every point to itself.
func Identity() Frame {
	return Frame{Rotation: mgl32.Ident3()}
}

// Translation returns an unrotated frame at t.
func Translation(t mgl32.Vec3) Frame {
	return Frame{Rotation: mgl32.Ident3(), Translation: t}
}

// NewFrame returns a frame with the given rotation and translation.
func NewFrame(r mgl32.Mat3, t mgl32.Vec3) Frame {
	return Frame{Rotation: r, Translation: t}
}

// Mul composes f with o: the result maps o's object space into f's parent space.
func (f Frame) Mul(o Frame) Frame {
	return Frame{
		Rotation:    f.Rotation.Mul3(o.Rotation),
		Translation: f.Translation.Add(f.Rotation.Mul3x1(o.Translation)),
	}
}

// Inverse returns the frame undoing f. Rotations are orthonormal so the transpose is used.
func (f Frame) Inverse() Frame {
	rt := f.Rotation.Transpose()
	return Frame{Rotation: rt, Translation: rt.Mul3x1(f.Translation).Mul(-1)}
}

// PointToWorld maps an object space point through f.
func (f Frame) PointToWorld(p mgl32.Vec3) mgl32.Vec3 {
	return f.Translation.Add(f.Rotation.Mul3x1(p))
}

// PointToObject maps a world point into f's object space.
func (f Frame) PointToObject(p mgl32.Vec3) mgl32.Vec3 {
	return f.Rotation.Transpose().Mul3x1(p.Sub(f.Translation))
}

// VectorToWorld rotates an object space direction into world space.
func (f Frame) VectorToWorld(v mgl32.Vec3) mgl32.Vec3 {
	return f.Rotation.Mul3x1(v)
}

// Axis returns column i of the rotation (0 right, 1 up, 2 normal/look).
func (f Frame) Axis(i int) mgl32.Vec3 {
	return f.Rotation.Col(i)
}

// ApproxEqual compares rotation and translation component-wise within eps.
func (f Frame) ApproxEqual(o Frame, eps float32) bool {
	return f.Rotation.ApproxEqualThreshold(o.Rotation, eps) &&
		f.Translation.ApproxEqualThreshold(o.Translation, eps)
}

func (f Frame) String() string {
	t := f.Translation
	return fmt.Sprintf("pos(%.3g, %.3g, %.3g) look%s", t[0], t[1], t[2], NormalFromMatrix(f.Rotation))
}
