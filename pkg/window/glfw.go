package window

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gregjohnson2017/glsu/pkg/config"
)

var glfwKeys = map[Key]glfw.Key{
	KeyW:      glfw.KeyW,
	KeyA:      glfw.KeyA,
	KeyS:      glfw.KeyS,
	KeyD:      glfw.KeyD,
	KeyQ:      glfw.KeyQ,
	KeyE:      glfw.KeyE,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
	KeyLeft:   glfw.KeyLeft,
	KeyRight:  glfw.KeyRight,
	KeySpace:  glfw.KeySpace,
	KeyShift:  glfw.KeyLeftShift,
	KeyEscape: glfw.KeyEscape,
}

type glfwBackend struct {
	win *glfw.Window
	// minimum time between swaps when vsync is off
	frame    time.Duration
	lastSwap time.Time
}

func newGLFWBackend(cfg *config.Config) (backend, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(int(cfg.ScreenWidth), int(cfg.ScreenHeight), cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	win.MakeContextCurrent()

	b := &glfwBackend{win: win, lastSwap: time.Now()}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
		if cfg.FramesPerSecond > 0 {
			b.frame = time.Second / time.Duration(cfg.FramesPerSecond)
		}
	}
	return b, nil
}

func (b *glfwBackend) makeCurrent() error {
	b.win.MakeContextCurrent()
	return nil
}

func (b *glfwBackend) detach() error {
	glfw.DetachCurrentContext()
	return nil
}

func (b *glfwBackend) pollEvents() bool {
	glfw.PollEvents()
	if b.win.GetKey(glfw.KeyEscape) == glfw.Press {
		b.win.SetShouldClose(true)
	}
	return b.win.ShouldClose()
}

func (b *glfwBackend) pressed(k Key) bool {
	key, ok := glfwKeys[k]
	if !ok {
		return false
	}
	return b.win.GetKey(key) == glfw.Press
}

func (b *glfwBackend) swap() {
	b.win.SwapBuffers()
	if b.frame > 0 {
		if d := b.frame - time.Since(b.lastSwap); d > 0 {
			time.Sleep(d)
		}
		b.lastSwap = time.Now()
	}
}

func (b *glfwBackend) size() (int32, int32) {
	w, h := b.win.GetFramebufferSize()
	return int32(w), int32(h)
}

func (b *glfwBackend) destroy() {
	b.win.Destroy()
	glfw.Terminate()
}
