package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gregjohnson2017/glsu/pkg/config"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

var sdlKeys = map[Key]int{
	KeyW:      int(sdl.SCANCODE_W),
	KeyA:      int(sdl.SCANCODE_A),
	KeyS:      int(sdl.SCANCODE_S),
	KeyD:      int(sdl.SCANCODE_D),
	KeyQ:      int(sdl.SCANCODE_Q),
	KeyE:      int(sdl.SCANCODE_E),
	KeyUp:     int(sdl.SCANCODE_UP),
	KeyDown:   int(sdl.SCANCODE_DOWN),
	KeyLeft:   int(sdl.SCANCODE_LEFT),
	KeyRight:  int(sdl.SCANCODE_RIGHT),
	KeySpace:  int(sdl.SCANCODE_SPACE),
	KeyShift:  int(sdl.SCANCODE_LSHIFT),
	KeyEscape: int(sdl.SCANCODE_ESCAPE),
}

type sdlBackend struct {
	win       *sdl.Window
	ctx       sdl.GLContext
	framerate *gfx.FPSmanager
}

func newSDLBackend(cfg *config.Config) (backend, error) {
	var err error
	if err = sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor},
		{sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err = sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
		}
	}

	var win *sdl.Window
	if win, err = sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.ScreenWidth, cfg.ScreenHeight, sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	var ctx sdl.GLContext
	if ctx, err = win.GLCreateContext(); err != nil {
		_ = win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	b := &sdlBackend{win: win, ctx: ctx}
	if err = b.makeCurrent(); err != nil {
		b.destroy()
		return nil, err
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err = sdl.GLSetSwapInterval(interval); err != nil {
		log.Warnf("could not set swap interval %v: %v", interval, err)
	}

	if !cfg.VSync && cfg.FramesPerSecond > 0 {
		b.framerate = &gfx.FPSmanager{}
		gfx.InitFramerate(b.framerate)
		if !gfx.SetFramerate(b.framerate, uint32(cfg.FramesPerSecond)) {
			log.Warnf("could not set framerate: %v", sdl.GetError())
			b.framerate = nil
		}
	}
	return b, nil
}

func (b *sdlBackend) makeCurrent() error {
	if err := b.win.GLMakeCurrent(b.ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	return nil
}

func (b *sdlBackend) detach() error {
	if err := b.win.GLMakeCurrent(nil); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	return nil
}

func (b *sdlBackend) pollEvents() bool {
	quit := false
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch evt := e.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if evt.Type == sdl.KEYDOWN && int(evt.Keysym.Scancode) == sdlKeys[KeyEscape] {
				quit = true
			}
		}
	}
	return quit
}

func (b *sdlBackend) pressed(k Key) bool {
	code, ok := sdlKeys[k]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return code < len(state) && state[code] != 0
}

func (b *sdlBackend) swap() {
	b.win.GLSwap()
	if b.framerate != nil {
		gfx.FramerateDelay(b.framerate)
	}
}

func (b *sdlBackend) size() (int32, int32) {
	return b.win.GetSize()
}

func (b *sdlBackend) destroy() {
	sdl.GLDeleteContext(b.ctx)
	_ = b.win.Destroy()
	sdl.Quit()
}

// SDLWindow returns the native SDL window, or nil when the window was created
// by another backend.
func (w *Window) SDLWindow() *sdl.Window {
	if b, ok := w.b.(*sdlBackend); ok {
		return b.win
	}
	return nil
}
