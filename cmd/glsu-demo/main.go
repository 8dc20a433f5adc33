// Command glsu-demo opens a window and draws a grid, an image on a quad and a
// text overlay while flying a camera with the keyboard.
//
// Usage:
//
//	glsu-demo [flags] [image]
//
// WASD moves, Q and E move down and up, the arrow keys look around and Shift
// moves faster. Escape quits.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gregjohnson2017/glsu/pkg/camera"
	"github.com/gregjohnson2017/glsu/pkg/config"
	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
	"github.com/gregjohnson2017/glsu/pkg/perf"
	"github.com/gregjohnson2017/glsu/pkg/window"
)

const errNoFile log.ConstErr = "no image chosen"

const (
	moveSpeed = 3  // units per second
	lookSpeed = 90 // degrees per second
)

type options struct {
	config   string
	open     bool
	fontSize int
	atlas    string
}

// parseFlags binds the command line to cfg. Values from a -config file are
// applied first so that flags given explicitly still win.
func parseFlags(cfg *config.Config) (*options, error) {
	opts := &options{}
	backend := string(cfg.Backend)
	width, height := int(cfg.ScreenWidth), int(cfg.ScreenHeight)
	flag.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	flag.IntVar(&width, "width", width, "window width in pixels")
	flag.IntVar(&height, "height", height, "window height in pixels")
	flag.StringVar(&backend, "backend", backend, "window backend: sdl or glfw")
	flag.IntVar(&cfg.GLMajor, "gl-major", cfg.GLMajor, "OpenGL major version")
	flag.IntVar(&cfg.GLMinor, "gl-minor", cfg.GLMinor, "OpenGL minor version")
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "wait for vertical sync")
	flag.IntVar(&cfg.FramesPerSecond, "fps", cfg.FramesPerSecond, "frame limit when vsync is off")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	flag.BoolVar(&cfg.Colorized, "color", cfg.Colorized, "colorize log prefixes")
	flag.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "record and report timings")
	flag.BoolVar(&opts.open, "open", false, "choose an image with the native file dialog")
	flag.IntVar(&opts.fontSize, "font-size", 18, "overlay font size in points")
	flag.StringVar(&opts.atlas, "atlas", "", "write the font atlas to this PNG file")
	flag.StringVar(&opts.config, "config", "", "load settings from this YAML file")
	flag.Parse()

	if opts.config != "" {
		set := make(map[string]string)
		flag.Visit(func(f *flag.Flag) {
			set[f.Name] = f.Value.String()
		})
		loaded, err := config.LoadFile(opts.config)
		if err != nil {
			return nil, err
		}
		*cfg = *loaded
		backend = string(cfg.Backend)
		width, height = int(cfg.ScreenWidth), int(cfg.ScreenHeight)
		for name, value := range set {
			if err = flag.Set(name, value); err != nil {
				return nil, err
			}
		}
	}
	cfg.Backend = config.Backend(backend)
	cfg.ScreenWidth, cfg.ScreenHeight = int32(width), int32(height)
	return opts, cfg.Validate()
}

func setupLogging(cfg *config.Config) {
	log.SetOutput(log.LevelInfo, os.Stdout)
	log.SetOutput(log.LevelWarn, os.Stderr)
	log.SetOutput(log.LevelFatal, os.Stderr)
	if cfg.Debug {
		log.SetOutput(log.LevelDebug, os.Stdout)
	}
	if cfg.Metrics {
		log.SetOutput(log.LevelPerf, os.Stdout)
	}
	log.SetColorized(cfg.Colorized)
	perf.SetMetricsEnabled(cfg.Metrics)
}

func loadImage(fileName string) (image.Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", fileName, err)
	}
	return img, nil
}

func writeAtlas(s *scene, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err = s.font.WriteAtlasPNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// steer applies held keys to the camera for a frame lasting dt seconds.
func steer(win *window.Window, cam *camera.Camera, dt float32) {
	speed := float32(moveSpeed)
	if win.Pressed(window.KeyShift) {
		speed *= 3
	}
	var move mgl32.Vec3
	axes := []struct {
		key  window.Key
		axis mgl32.Vec3
	}{
		{window.KeyW, mgl32.Vec3{0, 0, 1}},
		{window.KeyS, mgl32.Vec3{0, 0, -1}},
		{window.KeyD, mgl32.Vec3{1, 0, 0}},
		{window.KeyA, mgl32.Vec3{-1, 0, 0}},
		{window.KeyE, mgl32.Vec3{0, 1, 0}},
		{window.KeyQ, mgl32.Vec3{0, -1, 0}},
	}
	for _, a := range axes {
		if win.Pressed(a.key) {
			move = move.Add(a.axis)
		}
	}
	if move.Len() > 0 {
		move = move.Normalize().Mul(speed * dt)
		// Move takes (right, up, front)
		cam.Move(move)
	}

	var yaw, pitch float32
	if win.Pressed(window.KeyLeft) {
		yaw--
	}
	if win.Pressed(window.KeyRight) {
		yaw++
	}
	if win.Pressed(window.KeyUp) {
		pitch++
	}
	if win.Pressed(window.KeyDown) {
		pitch--
	}
	if yaw != 0 || pitch != 0 {
		cam.Rotate(yaw*lookSpeed*dt, pitch*lookSpeed*dt)
	}
}

func run(cfg *config.Config, opts *options) error {
	win, err := window.New(cfg)
	if err != nil {
		return err
	}
	defer win.Close()

	var img image.Image = gradient(256, 256)
	fileName := flag.Arg(0)
	if fileName == "" && opts.open {
		if fileName, err = openFileDialog(win); err != nil {
			log.Warnf("%v", err)
			fileName = ""
		}
	}
	if fileName != "" {
		if img, err = loadImage(fileName); err != nil {
			return err
		}
	}

	ctx := gfx.NewContext(win.Functions())
	defer ctx.Close()
	fn := ctx.Functions()

	s, err := newScene(ctx, img, int32(opts.fontSize))
	if err != nil {
		return err
	}
	defer s.destroy()
	if opts.atlas != "" {
		if err = writeAtlas(s, opts.atlas); err != nil {
			return err
		}
		log.Infof("wrote font atlas to %v", opts.atlas)
	}
	ctx.Probe().AssertNoErrors("scene setup")

	cam := camera.New(camera.WithPosition(mgl32.Vec3{0, 1, 4}), camera.WithPitch(-10))
	fn.Enable(glapi.BLEND)
	fn.BlendFunc(glapi.SRC_ALPHA, glapi.ONE_MINUS_SRC_ALPHA)
	fn.ClearColor(0.1, 0.1, 0.12, 1)

	last := time.Now()
	second := last
	frames, fps := 0, 0
	for !win.PollEvents() {
		sw := perf.Start()
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		frames++
		if now.Sub(second) >= time.Second {
			fps, frames, second = frames, 0, now
		}

		steer(win, cam, dt)
		if err = s.setLabel(labelFor(fps, cam)); err != nil {
			return err
		}

		width, height := win.Size()
		fn.Viewport(0, 0, width, height)
		var tq *gfx.TimerQuery
		if cfg.Metrics {
			tq = gfx.StartTimer(ctx)
		}
		fn.Clear(glapi.COLOR_BUFFER_BIT)
		if err = s.draw(cam, width, height); err != nil {
			return err
		}
		if tq != nil {
			tq.Stop("gpu.frame")
		}
		ctx.Probe().AssertNoErrors("frame")
		sw.StopRecordAverage("cpu.frame")
		win.Swap()
	}
	return nil
}

func main() {
	cfg := config.Default()
	opts, err := parseFlags(cfg)
	setupLogging(cfg)
	if err != nil {
		log.Warnf("%v", err)
		os.Exit(2)
	}
	defer perf.LogMetrics()

	if err = run(cfg, opts); err != nil {
		log.Warnf("%v", err)
		perf.LogMetrics()
		os.Exit(1)
	}
}
