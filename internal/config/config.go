// Package config loads sandbox tuning from a YAML file.
package config

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

type ViewportConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	Fov      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

// StackConfig shapes the falling-cube stack: Count x Count cubes per
// layer, Layers layers high.
type StackConfig struct {
	Count  int     `yaml:"count"`
	Layers int     `yaml:"layers"`
	Radius float32 `yaml:"radius"` // cube half extent
}

type GroundConfig struct {
	HalfSize   float32 `yaml:"half_size"`
	HalfHeight float32 `yaml:"half_height"`
}

type PlayerConfig struct {
	Position Vec3    `yaml:"position"`
	Radius   float32 `yaml:"radius"`
}

type ShootConfig struct {
	Impulse  float32 `yaml:"impulse"`  // magnitude along camera forward
	Cooldown float32 `yaml:"cooldown"` // seconds between shots
}

type Config struct {
	Gravity  Vec3           `yaml:"gravity"`
	Viewport ViewportConfig `yaml:"viewport"`
	Camera   CameraConfig   `yaml:"camera"`
	Ground   GroundConfig   `yaml:"ground"`
	Stack    StackConfig    `yaml:"stack"`
	Player   PlayerConfig   `yaml:"player"`
	Shoot    ShootConfig    `yaml:"shoot"`
}

// Default returns the reference sandbox tuning.
func Default() Config {
	return Config{
		Gravity:  Vec3{Y: -98.1},
		Viewport: ViewportConfig{Width: 1280, Height: 720},
		Camera: CameraConfig{
			Position: Vec3{X: -30, Y: 30, Z: 100},
			Target:   Vec3{Y: 10},
			Fov:      45,
			Near:     0.1,
			Far:      1000,
		},
		Ground: GroundConfig{HalfSize: 200.1, HalfHeight: 0.1},
		Stack:  StackConfig{Count: 8, Layers: 20, Radius: 1},
		Player: PlayerConfig{Position: Vec3{X: -30, Y: 30, Z: 50}, Radius: 0.5},
		Shoot:  ShootConfig{Impulse: 5000, Cooldown: 0.15},
	}
}

// Load reads path and unmarshals it over the defaults, so a partial
// file only overrides what it mentions.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport %gx%g must be positive", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera planes near=%g far=%g invalid", c.Camera.Near, c.Camera.Far)
	}
	if c.Stack.Count < 0 || c.Stack.Layers < 0 {
		return fmt.Errorf("stack %dx%d layers must not be negative", c.Stack.Count, c.Stack.Layers)
	}
	return nil
}
