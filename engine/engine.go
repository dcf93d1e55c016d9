package engine

import (
	"runtime"

	"github.com/bloeys/texcube/assert"
	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/input"
	"github.com/bloeys/texcube/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false

	logger = logging.New("engine")
)

// SurfaceConfig describes the drawables of every window created after Init
type SurfaceConfig struct {
	SampleCount      int
	ClearColor       gpu.ClearColor
	ColorPixelFormat gpu.PixelFormat
	DepthPixelFormat gpu.PixelFormat
	PreferredFPS     int
	VSync            bool
}

// ViewDelegate receives the callbacks of a window's frame loop
type ViewDelegate interface {
	OnResize(width, height int32)
	OnDraw(view gpu.Surface)
}

var _ gpu.Surface = &Window{}

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)
	Surface        SurfaceConfig
}

func (w *Window) handleInputs(delegate ViewDelegate) {

	input.EventLoopStart()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		//Internal processing
		switch e := event.(type) {

		case *sdl.KeyboardEvent:
			input.HandleKeyboardEvent(e)

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize(delegate)
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent(e)
		}
	}
}

func (w *Window) handleWindowResize(delegate ViewDelegate) {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	gl.Viewport(0, 0, fbWidth, fbHeight)
	delegate.OnResize(fbWidth, fbHeight)
}

func (w *Window) PreferredFramesPerSecond() int {
	return w.Surface.PreferredFPS
}

func (w *Window) Bounds() (width, height int32) {
	return w.SDLWin.GetSize()
}

func (w *Window) ColorPixelFormat() gpu.PixelFormat {
	return w.Surface.ColorPixelFormat
}

func (w *Window) DepthStencilPixelFormat() gpu.PixelFormat {
	return w.Surface.DepthPixelFormat
}

func (w *Window) SampleCount() int {
	return w.Surface.SampleCount
}

// drawableSize is zero while the window is minimized
func (w *Window) drawableSize() (width, height int32) {

	if w.SDLWin.GetFlags()&sdl.WINDOW_MINIMIZED != 0 {
		return 0, 0
	}

	return w.SDLWin.GLGetDrawableSize()
}

// CurrentRenderPassDescriptor clears color and depth of the default framebuffer
func (w *Window) CurrentRenderPassDescriptor() (*gpu.RenderPassDescriptor, bool) {

	fbWidth, fbHeight := w.drawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return nil, false
	}

	return &gpu.RenderPassDescriptor{
		ColorLoadAction: gpu.LoadActionClear,
		ClearColor:      w.Surface.ClearColor,
		DepthLoadAction: gpu.LoadActionClear,
		ClearDepth:      1,
		Width:           fbWidth,
		Height:          fbHeight,
	}, true
}

func (w *Window) CurrentDrawable() (gpu.Drawable, bool) {

	fbWidth, fbHeight := w.drawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return nil, false
	}

	return &drawable{win: w.SDLWin}, true
}

func (w *Window) Destroy() error {
	sdl.GLDeleteContext(w.GlCtx)
	return w.SDLWin.Destroy()
}

// drawable is the back buffer of the window. Presenting it swaps buffers.
type drawable struct {
	win *sdl.Window
}

func (d *drawable) Present() {
	d.win.GLSwap()
}

func Init(surface SurfaceConfig) error {

	isInited = true

	runtime.LockOSThread()
	err := initSDL(surface)

	return err
}

func initSDL(surface SurfaceConfig) error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, surface.DepthPixelFormat.DepthBits())
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, surface.DepthPixelFormat.StencilBits())

	if surface.ColorPixelFormat.IsSRGB() {
		sdl.GLSetAttribute(sdl.GL_FRAMEBUFFER_SRGB_CAPABLE, 1)
	}

	// Allows us to do MSAA
	if surface.SampleCount > 1 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, surface.SampleCount)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func CreateOpenGLWindow(title string, x, y, width, height int32, flags WindowFlags, surface SurfaceConfig) (*Window, error) {
	return createWindow(title, x, y, width, height, WindowFlags_OPENGL|flags, surface)
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, surface SurfaceConfig) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags, surface)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags, surface SurfaceConfig) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
		Surface:        surface,
	}

	// Fails when the driver can't give us a 4.1 core context
	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, errors.Wrapf(gpu.ErrNoDevice, "creating OpenGL context: %v", err)
	}

	SetVSync(surface.VSync)

	fbWidth, fbHeight := sdlWin.GLGetDrawableSize()
	logger.Infof("Created window '%s' (%dx%d, drawable %dx%d, %dx MSAA)", title, width, height, fbWidth, fbHeight, surface.SampleCount)

	return win, nil
}

func SetVSync(enabled bool) {

	interval := 0
	if enabled {
		interval = 1
	}

	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warningf("Failed to set swap interval to %d. Err: %s", interval, err.Error())
	}
}

// Shutdown is called once all windows are destroyed
func Shutdown() {
	sdl.Quit()
	isInited = false
}
