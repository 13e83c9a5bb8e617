package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/image/math/f32"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfigYAML []byte

var errInvalidConfig = errors.New("invalid config")

type config struct {
	AngleStep  float32    `yaml:"angle_step"`
	Axis       [3]float32 `yaml:"axis"`
	ClearColor [4]float32 `yaml:"clear_color"`
	Color      [4]float32 `yaml:"color"`
	Vertices   []f32.Vec2 `yaml:"vertices"`
	LogLevel   slog.Level `yaml:"log_level"`
}

// loadConfig returns the built-in config overridden by the given YAML
// documents. Keys missing in an override keep the previous value.
func loadConfig(overrides ...[]byte) (*config, error) {
	c := &config{}
	if err := c.decode(defaultConfigYAML); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	for _, o := range overrides {
		if err := c.decode(o); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *config) decode(b []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	return nil
}

func (c *config) validate() error {
	if c.Axis == [3]float32{} {
		return fmt.Errorf("%w: rotation axis must not be zero", errInvalidConfig)
	}
	if len(c.Vertices) < 3 {
		return fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", errInvalidConfig, len(c.Vertices))
	}
	for name, col := range map[string][4]float32{
		"color":       c.Color,
		"clear_color": c.ClearColor,
	} {
		for _, v := range col {
			if v < 0 || 1 < v {
				return fmt.Errorf("%w: %s components must be in [0, 1], got %v", errInvalidConfig, name, col)
			}
		}
	}
	return nil
}
