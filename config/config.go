// SPDX-License-Identifier: Unlicense OR MIT

// Package config parses monoui.toml application configuration.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"tinygo.org/x/tinyfont"

	"monoui.org/f64"
	"monoui.org/key"
	"monoui.org/text"
	"monoui.org/view"
)

// FileName is the conventional name of a configuration file.
const FileName = "monoui.toml"

// Config is the top-level monoui.toml configuration.
type Config struct {
	Display   DisplayConfig   `toml:"display"`
	Animation AnimationConfig `toml:"animation"`
	Font      FontConfig      `toml:"font"`
	Keys      KeysConfig      `toml:"keys"`
}

// DisplayConfig describes the target display.
type DisplayConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	FPS    int `toml:"fps"`
	// Scale is the number of terminal columns per pixel in the
	// simulator.
	Scale int `toml:"scale"`
	// Device is a framebuffer device such as /dev/fb0. Empty selects
	// the terminal simulator.
	Device string `toml:"device"`
}

// AnimationConfig holds animator constants. Speeds are in frames; a
// larger speed converges more slowly.
type AnimationConfig struct {
	Epsilon  float64 `toml:"epsilon"`
	Default  float64 `toml:"default_speed"`
	Cursor   float64 `toml:"cursor_speed"`
	Scroll   float64 `toml:"scroll_speed"`
	Modal    float64 `toml:"modal_speed"`
	Tile     float64 `toml:"tile_speed"`
	Entrance float64 `toml:"entrance_speed"`
}

// FontConfig selects the face used for text.
type FontConfig struct {
	// Face is one of basic, gomono or tiny.
	Face string  `toml:"face"`
	Size float64 `toml:"size"`
}

// KeysConfig binds terminal keys, as named by Bubble Tea, to key codes.
type KeysConfig struct {
	Up      []string `toml:"up"`
	Down    []string `toml:"down"`
	Left    []string `toml:"left"`
	Right   []string `toml:"right"`
	Enter   []string `toml:"enter"`
	Back    []string `toml:"back"`
	Dismiss []string `toml:"dismiss"`
}

// Defaults returns the configuration of a 128x64 display at 60 frames
// per second.
func Defaults() Config {
	th := view.NewTheme()
	return Config{
		Display: DisplayConfig{Width: 128, Height: 64, FPS: th.FPS, Scale: 1},
		Animation: AnimationConfig{
			Epsilon:  th.Epsilon,
			Default:  th.Speed.Default,
			Cursor:   th.Speed.Cursor,
			Scroll:   th.Speed.Scroll,
			Modal:    th.Speed.Modal,
			Tile:     th.Speed.Tile,
			Entrance: th.Speed.Entrance,
		},
		Font: FontConfig{Face: "basic", Size: 13},
		Keys: KeysConfig{
			Up:      []string{"up", "k"},
			Down:    []string{"down", "j"},
			Left:    []string{"left", "h"},
			Right:   []string{"right", "l"},
			Enter:   []string{"enter", " "},
			Back:    []string{"backspace", "b"},
			Dismiss: []string{"esc"},
		},
	}
}

// Load reads the configuration at path over the defaults. An empty path
// returns the defaults. Unknown keys are reported as errors.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return &cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := checkUndecoded(path, meta); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// Parse decodes a configuration from s over the defaults.
func Parse(s string) (*Config, error) {
	cfg := Defaults()
	meta, err := toml.Decode(s, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := checkUndecoded("input", meta); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func checkUndecoded(name string, meta toml.MetaData) error {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("config: unknown keys in %s: %s", name, strings.Join(keys, ", "))
}

// Validate checks the configuration and returns every issue found,
// joined together.
func (c *Config) Validate() error {
	var errs []error
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 || d.Width > 4096 || d.Height > 4096 {
		errs = append(errs, fmt.Errorf("display size %dx%d out of range", d.Width, d.Height))
	}
	if d.FPS <= 0 || d.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps must be in 1..240, got %d", d.FPS))
	}
	if d.Scale < 1 || d.Scale > 4 {
		errs = append(errs, fmt.Errorf("display.scale must be in 1..4, got %d", d.Scale))
	}
	a := c.Animation
	if a.Epsilon <= 0 {
		errs = append(errs, fmt.Errorf("animation.epsilon must be > 0"))
	}
	for _, s := range []struct {
		name string
		v    float64
	}{
		{"default_speed", a.Default},
		{"cursor_speed", a.Cursor},
		{"scroll_speed", a.Scroll},
		{"modal_speed", a.Modal},
		{"tile_speed", a.Tile},
		{"entrance_speed", a.Entrance},
	} {
		// Speeds below 10 overshoot the target.
		if s.v < 10 {
			errs = append(errs, fmt.Errorf("animation.%s must be >= 10, got %g", s.name, s.v))
		}
	}
	switch c.Font.Face {
	case "basic", "tiny":
	case "gomono":
		if c.Font.Size <= 0 {
			errs = append(errs, fmt.Errorf("font.size must be > 0 for gomono"))
		}
	default:
		errs = append(errs, fmt.Errorf("font.face must be basic, gomono or tiny, got %q", c.Font.Face))
	}
	seen := make(map[string]key.Code)
	bindings := c.Keys.Bindings()
	for _, code := range slices.Sorted(maps.Keys(bindings)) {
		names := bindings[code]
		if len(names) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s must not be empty", strings.ToLower(code.String())))
		}
		for _, n := range names {
			if prev, ok := seen[n]; ok {
				errs = append(errs, fmt.Errorf("key %q bound to both %v and %v", n, prev, code))
				continue
			}
			seen[n] = code
		}
	}
	return errors.Join(errs...)
}

// Bindings returns the terminal keys bound to each key code.
func (k KeysConfig) Bindings() map[key.Code][]string {
	return map[key.Code][]string{
		key.Up:      k.Up,
		key.Down:    k.Down,
		key.Left:    k.Left,
		key.Right:   k.Right,
		key.Enter:   k.Enter,
		key.Back:    k.Back,
		key.Dismiss: k.Dismiss,
	}
}

// Screen returns the display size.
func (c *Config) Screen() f64.Size {
	return f64.Sz(float64(c.Display.Width), float64(c.Display.Height))
}

// Theme returns the default theme with the configured animation
// constants and frame rate.
func (c *Config) Theme() *view.Theme {
	th := view.NewTheme()
	th.FPS = c.Display.FPS
	th.Epsilon = c.Animation.Epsilon
	th.Speed = view.Speeds{
		Default:  c.Animation.Default,
		Cursor:   c.Animation.Cursor,
		Scroll:   c.Animation.Scroll,
		Modal:    c.Animation.Modal,
		Tile:     c.Animation.Tile,
		Entrance: c.Animation.Entrance,
	}
	return th
}

// Face returns the configured font face.
func (c *Config) Face() (text.Face, error) {
	switch c.Font.Face {
	case "basic":
		return text.Basic(), nil
	case "gomono":
		f, err := text.GoMono(c.Font.Size)
		if err != nil {
			return nil, fmt.Errorf("config: font: %w", err)
		}
		return f, nil
	case "tiny":
		return text.NewTinyFace(&tinyfont.TomThumb, 0, 0), nil
	}
	return nil, fmt.Errorf("config: unknown font face %q", c.Font.Face)
}
