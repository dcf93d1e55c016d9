package engine

import (
	"time"

	"github.com/bloeys/texcube/input"
	"github.com/bloeys/texcube/timing"
	"github.com/veandco/go-sdl2/sdl"
)

var isRunning = false

// Run drives delegate with win until Quit is called, the window is closed or escape is pressed.
// It must be called on the thread that called Init.
func Run(win *Window, delegate ViewDelegate) {

	isRunning = true
	timing.Init()

	// Initial size, the same way the view reports later size changes
	fbWidth, fbHeight := win.SDLWin.GLGetDrawableSize()
	delegate.OnResize(fbWidth, fbHeight)

	for isRunning {

		timing.FrameStarted()

		win.handleInputs(delegate)
		if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
			Quit()
		}

		delegate.OnDraw(win)

		win.paceFrame()
		timing.FrameEnded()
	}

	logger.Debugf("Frame loop stopped after %.2f seconds", timing.ElapsedTime())
}

// paceFrame waits out the rest of the frame when swapping doesn't block (vsync off or nothing presented)
func (w *Window) paceFrame() {

	if w.Surface.PreferredFPS <= 0 {
		return
	}

	if w.Surface.VSync {
		fbWidth, fbHeight := w.drawableSize()
		if fbWidth > 0 && fbHeight > 0 {
			return
		}
	}

	frameTime := time.Second / time.Duration(w.Surface.PreferredFPS)
	spent := time.Duration(timing.FrameTimeSoFar() * float64(time.Second))
	if spent < frameTime {
		sdl.Delay(uint32((frameTime - spent).Milliseconds()))
	}
}

func Quit() {
	isRunning = false
}
