// Package render draws a scene tree with raylib: a free camera, the editor grid, every
// Part as a lit box and the debug adornments of joints and features.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"joint-engine/internal/adorn"
	"joint-engine/internal/geom"
	"joint-engine/internal/scene"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Viewer holds a 3D camera and draws a scene tree. Update runs camera logic (free camera);
// Draw renders between BeginMode3D and EndMode3D. Based on raylib examples/core/core_3d_camera_free.
type Viewer struct {
	Camera      rl.Camera3D
	GridVisible bool
	Adorn       adorn.Options
	cursorDone  bool
	boxes       *boxes
	lightDir    [3]float32
}

// NewViewer returns a viewer with a perspective camera looking at the origin.
// Camera: position (10,10,10), target (0,0,0), up (0,1,0), fovy 45°. Grid is visible by default.
func NewViewer() *Viewer {
	v := &Viewer{GridVisible: true, boxes: newBoxes(), lightDir: [3]float32{0.5, 1, 0.5}}
	v.Camera.Position = rl.NewVector3(10, 10, 10)
	v.Camera.Target = rl.NewVector3(0, 0, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 45
	v.Camera.Projection = rl.CameraPerspective
	return v
}

// Update runs once per frame. When captured, the mouse and keyboard drive a free camera.
// Pass captured false while a text input owns the keyboard.
func (v *Viewer) Update(captured bool) {
	if !captured {
		return
	}
	if !v.cursorDone {
		rl.DisableCursor()
		v.cursorDone = true
	}
	rl.UpdateCamera(&v.Camera, rl.CameraFree)
}

// Draw renders root: grid, parts, then adornments on top. Call after ClearBackground and
// before any 2D overlay.
func (v *Viewer) Draw(root scene.Node) {
	pos := v.Camera.Position
	v.boxes.setView([3]float32{pos.X, pos.Y, pos.Z}, v.lightDir)

	rl.BeginMode3D(v.Camera)
	if v.GridVisible {
		drawEditorGrid()
	}
	root.AsInstance().Walk(func(n scene.Node) bool {
		if p, ok := n.(*scene.Part); ok {
			v.boxes.draw(p.CFrame(), p.Size(), partColor(p))
		}
		return true
	})
	adorn.RenderTree(root, Adorn{}, v.Adorn)
	rl.EndMode3D()
}

var (
	freePartColor     = rl.NewColor(163, 162, 165, 255)
	anchoredPartColor = rl.NewColor(110, 130, 160, 255)
)

func partColor(p *scene.Part) rl.Color {
	if p.Anchored() {
		return anchoredPartColor
	}
	return freePartColor
}

// frameMatrix converts a frame into a raylib transform (rotation then translation).
func frameMatrix(f geom.Frame) rl.Matrix {
	r, t := f.Rotation, f.Translation
	return rl.Matrix{
		M0: r.At(0, 0), M4: r.At(0, 1), M8: r.At(0, 2), M12: t.X(),
		M1: r.At(1, 0), M5: r.At(1, 1), M9: r.At(1, 2), M13: t.Y(),
		M2: r.At(2, 0), M6: r.At(2, 1), M10: r.At(2, 2), M14: t.Z(),
		M15: 1,
	}
}

func vec3(x, y, z float32) rl.Vector3 {
	return rl.NewVector3(x, y, z)
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	// X red, Y green, Z blue
	rl.DrawLine3D(vec3(-gridExtent, 0, 0), vec3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(vec3(0, -gridExtent, 0), vec3(0, gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(vec3(0, 0, -gridExtent), vec3(0, 0, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
