package config

// Backend names the library used to create the window and its GL context.
type Backend string

// Supported window backends.
const (
	BackendSDL  Backend = "sdl"
	BackendGLFW Backend = "glfw"
)

// Config represents the window and context configuration for an application.
type Config struct {
	Title        string `yaml:"title"`
	ScreenWidth  int32  `yaml:"screen_width"`
	ScreenHeight int32  `yaml:"screen_height"`
	// GLMajor and GLMinor request a core profile context of that version.
	GLMajor int     `yaml:"gl_major"`
	GLMinor int     `yaml:"gl_minor"`
	Backend Backend `yaml:"backend"`
	VSync   bool    `yaml:"vsync"`

	FramesPerSecond int  `yaml:"fps"`
	Debug           bool `yaml:"debug"`
	Colorized       bool `yaml:"colorized"`
	Metrics         bool `yaml:"metrics"`
}

// New is an optional constructor for Config, mainly for a friendlier API.
func New(title string, screenWidth, screenHeight int32, fps int) *Config {
	cfg := Default()
	cfg.Title = title
	cfg.ScreenWidth = screenWidth
	cfg.ScreenHeight = screenHeight
	cfg.FramesPerSecond = fps
	return cfg
}

// Default returns a 3.3 core profile SDL configuration.
func Default() *Config {
	return &Config{
		Title:           "glsu",
		ScreenWidth:     960,
		ScreenHeight:    720,
		GLMajor:         3,
		GLMinor:         3,
		Backend:         BackendSDL,
		VSync:           true,
		FramesPerSecond: 60,
	}
}

// Aspect returns the width to height ratio of the screen.
func (c *Config) Aspect() float32 {
	if c.ScreenHeight == 0 {
		return 1
	}
	return float32(c.ScreenWidth) / float32(c.ScreenHeight)
}
