// Package adorn is the debug drawing surface. Scene nodes decide whether and where
// to draw; an Adorn implementation decides how.
package adorn

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"joint-engine/internal/geom"
	"joint-engine/internal/scene"
)

var (
	Black  = color.RGBA{0, 0, 0, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Red    = color.RGBA{255, 0, 0, 255}
)

// Adorn draws debug geometry in world space.
type Adorn interface {
	// Cylinder draws a cylinder centred on frame's origin whose length runs along
	// frame axis axis (0=X, 1=Y, 2=Z).
	Cylinder(frame geom.Frame, axis int, length, radius float32, c color.RGBA)
	LineSegment(from, to mgl32.Vec3, c color.RGBA, width float32)
}

// Options gates the adornment families.
type Options struct {
	SpanningTree bool
	Features     bool
}

// Renderable is implemented by nodes that draw debug adornments. Render3dAdorn is only
// called when ShouldRender3dAdorn returned true and must not change node state.
type Renderable interface {
	ShouldRender3dAdorn(opts Options) bool
	Render3dAdorn(a Adorn)
}

// RenderTree draws every Renderable under root (root included) that wants to be drawn
// and returns how many did.
func RenderTree(root scene.Node, a Adorn, opts Options) int {
	drawn := 0
	root.AsInstance().Walk(func(n scene.Node) bool {
		if r, ok := n.(Renderable); ok && r.ShouldRender3dAdorn(opts) {
			r.Render3dAdorn(a)
			drawn++
		}
		return true
	})
	return drawn
}
