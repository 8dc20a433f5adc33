package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/gregjohnson2017/glsu/pkg/log"
)

// ErrConfig indicates a configuration that cannot be used to open a window.
const ErrConfig log.ConstErr = "invalid config"

// Load reads a YAML document over the defaults. Keys that are absent keep
// their default value; unknown keys are an error.
func Load(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err = yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile is Load for the named file.
func LoadFile(fileName string) (*Config, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fileName, err)
	}
	log.Debugf("loaded config from %v", fileName)
	return cfg, nil
}

// Validate checks the fields a window backend depends on.
func (c *Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %vx%v", ErrConfig, c.ScreenWidth, c.ScreenHeight)
	case c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3):
		return fmt.Errorf("%w: OpenGL %v.%v has no core profile", ErrConfig, c.GLMajor, c.GLMinor)
	case c.Backend != BackendSDL && c.Backend != BackendGLFW:
		return fmt.Errorf("%w: backend %q", ErrConfig, c.Backend)
	case c.FramesPerSecond < 0:
		return fmt.Errorf("%w: negative frame rate", ErrConfig)
	}
	return nil
}

// Marshal encodes c as YAML, the format Load reads.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
