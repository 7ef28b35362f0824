package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window configures the viewer window. Zero Width or Height means the monitor size.
type Window struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Loop holds the per-frame callbacks. Tick runs at a fixed step of Dt seconds as many
// times as real time demands (capped at MaxTicks per frame), then Update runs once, then
// the screen is cleared and Draw is called.
type Loop struct {
	Dt       float32
	MaxTicks int
	Tick     func(dt float32)
	Update   func()
	Draw     func()
}

// Run opens the window and drives l until the window is closed.
// ESC toggles the terminal, so it is not the exit key; close via the window button.
func Run(w Window, l Loop) {
	if w.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()
	if w.Width == 0 || w.Height == 0 {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}

	rl.SetExitKey(rl.KeyNull)
	fps := w.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))

	var acc float32
	for !rl.WindowShouldClose() {
		if l.Tick != nil && l.Dt > 0 {
			acc += rl.GetFrameTime()
			for n := 0; acc >= l.Dt && (l.MaxTicks <= 0 || n < l.MaxTicks); n++ {
				l.Tick(l.Dt)
				acc -= l.Dt
			}
			if l.MaxTicks > 0 && acc > l.Dt*float32(l.MaxTicks) {
				acc = 0
			}
		}
		if l.Update != nil {
			l.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if l.Draw != nil {
			l.Draw()
		}
		rl.EndDrawing()
	}
}
