package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"joint-engine/internal/physics"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays at the top-right: FPS, heap allocation and joint kernel
// statistics. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowJoints   bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	fpsText      string
	memText      string
	jointText    string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// JointText formats the joint kernel line for w.
func JointText(w *physics.World) string {
	st := w.Stats()
	return fmt.Sprintf("Joints: %d/%d active  +%d -%d  step %d",
		w.ActiveJoints(), len(w.Joints()), st.Inserts, st.Removes, w.StepID())
}

// Draw renders the enabled overlays. Call after the scene and terminal in the draw loop.
// Text is only recomputed every updateInterval frames; w may be nil when ShowJoints is off.
func (d *Debug) Draw(w *physics.World) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.fpsText == "") ||
		(d.ShowMemAlloc && d.memText == "") ||
		(d.ShowJoints && d.jointText == "")

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.fpsText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		d.drawRight(d.memText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowJoints && w != nil {
		if update {
			d.jointText = JointText(w)
		}
		d.drawRight(d.jointText, y, rl.Yellow)
	}
}

func (d *Debug) drawRight(text string, y int32, c rl.Color) {
	if text == "" {
		return
	}
	screenW := float32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fontSize)
		pos := rl.NewVector2(screenW-rl.MeasureTextEx(d.font, text, sz, 1).X-padding, float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, c)
		return
	}
	x := int32(screenW) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, c)
}
