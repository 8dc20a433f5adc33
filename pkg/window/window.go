// Package window creates a native window with an OpenGL core profile context
// and loads the driver's function table for it. SDL is the default backend;
// GLFW is available as an alternative.
//
// Every function in this package must be called from the main OS thread.
package window

import (
	"fmt"
	"runtime"

	"github.com/gregjohnson2017/glsu/pkg/config"
	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/glapi/gogl"
	"github.com/gregjohnson2017/glsu/pkg/log"
)

// ErrBackend is returned for a backend name that is not supported.
const ErrBackend log.ConstErr = "unknown window backend"

// ErrCreateWindow wraps failures from the windowing library.
const ErrCreateWindow log.ConstErr = "failed to create window"

func init() {
	runtime.LockOSThread()
}

// Key names a keyboard key independent of the backend.
type Key int

// Keys the window can report.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyShift
	KeyEscape
)

var keyNames = [...]string{
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyD:      "D",
	KeyQ:      "Q",
	KeyE:      "E",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeySpace:  "Space",
	KeyShift:  "Shift",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// backend is what SDL and GLFW each provide.
type backend interface {
	makeCurrent() error
	detach() error
	// pollEvents drains pending events and reports whether the user asked to
	// close the window.
	pollEvents() bool
	pressed(k Key) bool
	swap()
	size() (int32, int32)
	destroy()
}

// Window owns a native window and its GL context.
type Window struct {
	cfg    *config.Config
	b      backend
	fn     gogl.Functions
	active bool
	closed bool
}

var backends = map[config.Backend]func(cfg *config.Config) (backend, error){
	config.BackendSDL:  newSDLBackend,
	config.BackendGLFW: newGLFWBackend,
}

// New creates the window described by cfg, makes its context current and
// loads the OpenGL functions.
func New(cfg *config.Config) (*Window, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	create, ok := backends[cfg.Backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackend, cfg.Backend)
	}
	b, err := create(cfg)
	if err != nil {
		return nil, err
	}
	fn, err := gogl.New()
	if err != nil {
		b.destroy()
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	log.Infof("%v backend, OpenGL %v", cfg.Backend, gogl.Version())
	return &Window{cfg: cfg, b: b, fn: fn, active: true}, nil
}

// Functions returns the function table bound to this window's context.
func (w *Window) Functions() glapi.Functions {
	return w.fn
}

// Config returns the configuration the window was created with.
func (w *Window) Config() *config.Config {
	return w.cfg
}

// Activate makes the window's context current on the calling thread.
func (w *Window) Activate() error {
	if w.closed {
		return fmt.Errorf("%w: window is closed", ErrCreateWindow)
	}
	if err := w.b.makeCurrent(); err != nil {
		return err
	}
	w.active = true
	return nil
}

// Deactivate releases the context from the calling thread.
func (w *Window) Deactivate() error {
	if !w.active {
		return nil
	}
	if err := w.b.detach(); err != nil {
		return err
	}
	w.active = false
	return nil
}

// IsActive reports whether the window's context is current.
func (w *Window) IsActive() bool {
	return w.active && !w.closed
}

// PollEvents processes pending input and reports whether the window should
// close.
func (w *Window) PollEvents() bool {
	if w.closed {
		return true
	}
	return w.b.pollEvents()
}

// Pressed reports whether k is currently held down.
func (w *Window) Pressed(k Key) bool {
	if w.closed {
		return false
	}
	return w.b.pressed(k)
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int32, int32) {
	return w.b.size()
}

// Aspect returns the drawable width to height ratio.
func (w *Window) Aspect() float32 {
	width, height := w.Size()
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	if !w.closed {
		w.b.swap()
	}
}

// Close destroys the context and the window. It is safe to call more than
// once.
func (w *Window) Close() {
	if w == nil || w.closed {
		return
	}
	w.b.destroy()
	w.closed = true
	w.active = false
}
