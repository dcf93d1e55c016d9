package config

import (
	"fmt"
	"os"

	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/logging"
	"gopkg.in/yaml.v3"
)

const (
	TimestepFixed    = "fixed"
	TimestepMeasured = "measured"
)

// Config holds everything the app reads from its config file.
// Fields missing from the file keep the values from Default().
type Config struct {
	Window  Window  `yaml:"window"`
	Surface Surface `yaml:"surface"`
	Assets  Assets  `yaml:"assets"`
	Render  Render  `yaml:"render"`
	Log     Log     `yaml:"log"`
}

type Window struct {
	Title        string `yaml:"title"`
	Width        int32  `yaml:"width"`
	Height       int32  `yaml:"height"`
	Resizable    bool   `yaml:"resizable"`
	VSync        bool   `yaml:"vsync"`
	PreferredFPS int    `yaml:"preferred_fps"`
}

type Surface struct {
	SampleCount int       `yaml:"sample_count"`
	ClearColor  []float64 `yaml:"clear_color"`
	ColorFormat string    `yaml:"color_format"`
	DepthFormat string    `yaml:"depth_format"`
}

type Assets struct {
	// Dir is searched before the bundled assets, if set
	Dir     string `yaml:"dir"`
	Texture string `yaml:"texture"`
	// Mesh is a model file used instead of the built-in cube, if set
	Mesh string `yaml:"mesh"`
	// NoSrgb uploads the texture as linear data
	NoSrgb bool `yaml:"no_srgb"`
}

type Render struct {
	Timestep string `yaml:"timestep"`
}

type Log struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Title:        "texcube",
			Width:        1280,
			Height:       720,
			Resizable:    true,
			VSync:        true,
			PreferredFPS: 60,
		},
		Surface: Surface{
			SampleCount: 4,
			ClearColor:  []float64{1, 1, 1, 1},
			ColorFormat: gpu.PixelFormatBGRA8Unorm.String(),
			DepthFormat: gpu.PixelFormatDepth32Float.String(),
		},
		Assets: Assets{
			Texture: "checkerboard",
		},
		Render: Render{
			Timestep: TimestepFixed,
		},
		Log: Log{
			Level: "notice",
		},
	}
}

// Load reads a YAML config file on top of the defaults
func Load(path string) (*Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive but is %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Window.PreferredFPS <= 0 {
		return fmt.Errorf("window.preferred_fps must be positive but is %d", c.Window.PreferredFPS)
	}

	switch c.Surface.SampleCount {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("surface.sample_count must be 1, 2, 4 or 8 but is %d", c.Surface.SampleCount)
	}

	if len(c.Surface.ClearColor) != 4 {
		return fmt.Errorf("surface.clear_color needs 4 components (rgba) but has %d", len(c.Surface.ClearColor))
	}

	for i, v := range c.Surface.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("surface.clear_color component %d must be in [0, 1] but is %f", i, v)
		}
	}

	if f, err := gpu.ParsePixelFormat(c.Surface.ColorFormat); err != nil || !f.IsColor() {
		return fmt.Errorf("surface.color_format '%s' is not a color format", c.Surface.ColorFormat)
	}

	if f, err := gpu.ParsePixelFormat(c.Surface.DepthFormat); err != nil || !f.IsDepth() {
		return fmt.Errorf("surface.depth_format '%s' is not a depth format", c.Surface.DepthFormat)
	}

	if c.Assets.Texture == "" {
		return fmt.Errorf("assets.texture must not be empty")
	}

	if c.Render.Timestep != TimestepFixed && c.Render.Timestep != TimestepMeasured {
		return fmt.Errorf("render.timestep must be '%s' or '%s' but is '%s'", TimestepFixed, TimestepMeasured, c.Render.Timestep)
	}

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("unknown log.level '%s'", c.Log.Level)
	}

	return nil
}

// ColorPixelFormat is only valid on a validated config
func (s *Surface) ColorPixelFormat() gpu.PixelFormat {
	f, _ := gpu.ParsePixelFormat(s.ColorFormat)
	return f
}

// DepthPixelFormat is only valid on a validated config
func (s *Surface) DepthPixelFormat() gpu.PixelFormat {
	f, _ := gpu.ParsePixelFormat(s.DepthFormat)
	return f
}

func (s *Surface) Clear() gpu.ClearColor {
	return gpu.ClearColor{R: s.ClearColor[0], G: s.ClearColor[1], B: s.ClearColor[2], A: s.ClearColor[3]}
}
