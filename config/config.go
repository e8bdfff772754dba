// SPDX-License-Identifier: Unlicense OR MIT

// Package config reads the quadscreen YAML configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes the display surface and how it is presented.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Canvas string `yaml:"canvas"`
	// ClearColor is RGBA in [0, 1].
	ClearColor []float32 `yaml:"clearColor,flow"`
	LogLevel   string    `yaml:"logLevel"`
	// Image is an optional PNG or BMP file scaled to the surface.
	Image string `yaml:"image,omitempty"`
	// Label is optional text drawn onto the initial pixels.
	Label   string  `yaml:"label,omitempty"`
	Shaders Shaders `yaml:"shaders,omitempty"`
}

// Shaders name shader source files replacing the built-in ones.
type Shaders struct {
	Vertex      string `yaml:"vertex,omitempty"`
	Fragment    string `yaml:"fragment,omitempty"`
	Vertex150   string `yaml:"vertex150,omitempty"`
	Fragment150 string `yaml:"fragment150,omitempty"`
}

const (
	DefaultWidth  = 160
	DefaultHeight = 144
	DefaultCanvas = "#canvas"
)

var defaultClearColor = []float32{1, 0, 0, 1}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.normalize()
	return c
}

func (c *Config) normalize() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Canvas == "" {
		c.Canvas = DefaultCanvas
	}
	if c.ClearColor == nil {
		c.ClearColor = append([]float32(nil), defaultClearColor...)
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Parse decodes a YAML document. Fields it leaves out take their
// default values.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (%s)", err, path)
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if len(c.ClearColor) != 4 {
		return fmt.Errorf("config: clearColor has %d components, expected 4", len(c.ClearColor))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: clearColor component %d is %v, outside [0, 1]", i, v)
		}
	}
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	if l, ok := levels[c.LogLevel]; ok {
		return l
	}
	return slog.LevelInfo
}

// Clear returns ClearColor as an array. It must be validated.
func (c Config) Clear() [4]float32 {
	var rgba [4]float32
	copy(rgba[:], c.ClearColor)
	return rgba
}

// Encode writes c as YAML.
func (c Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}
