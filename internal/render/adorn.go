package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"joint-engine/internal/geom"
)

const (
	cylinderSides = 12
	// lineWidthScale converts an adornment line width to a world space radius.
	lineWidthScale = 0.002
)

// Adorn draws adornments with raylib. It must be used between BeginMode3D and EndMode3D.
type Adorn struct{}

func toRL(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Cylinder draws a cylinder centred on the frame origin along the given frame axis.
func (Adorn) Cylinder(frame geom.Frame, axis int, length, radius float32, c color.RGBA) {
	half := frame.Axis(axis).Mul(length / 2)
	from := frame.Translation.Sub(half)
	to := frame.Translation.Add(half)
	rl.DrawCylinderEx(toRL(from), toRL(to), radius, radius, cylinderSides, rlColor(c))
}

// LineSegment draws a thin cylinder so that the width is visible at any distance.
func (Adorn) LineSegment(from, to mgl32.Vec3, c color.RGBA, width float32) {
	if width <= 1 {
		rl.DrawLine3D(toRL(from), toRL(to), rlColor(c))
		return
	}
	r := width * lineWidthScale
	rl.DrawCylinderEx(toRL(from), toRL(to), r, r, cylinderSides, rlColor(c))
}
