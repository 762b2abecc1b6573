package config

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/gridpad/internal/illum"
	"github.com/dshills/gridpad/internal/key"
	"github.com/dshills/gridpad/internal/keymap"
	"github.com/dshills/gridpad/internal/status"
)

// Layer configures one layer: its idle color and the symbol at every
// position. Keys uses the symbols' display labels ("KP_1", "F5", "L_NEXT").
type Layer struct {
	Name  string   `toml:"name"`
	Color []int    `toml:"color"`
	Keys  []string `toml:"keys"`
}

// Config is the full device configuration.
type Config struct {
	DeviceName      string  `toml:"device_name"`
	NumKeys         int     `toml:"num_keys"`
	BrightnessLimit int     `toml:"brightness_limit"`
	PollIntervalMS  int     `toml:"poll_interval_ms"`
	Layers          []Layer `toml:"layer"`
}

// Default returns the reference device configuration.
func Default() *Config {
	layout := keymap.DefaultLayout()
	base := illum.DefaultBaseColors()
	names := []string{"numbers", "function", "media", "letters"}

	layers := make([]Layer, len(layout))
	for i, row := range layout {
		keys := make([]string, len(row))
		for pos, sym := range row {
			keys[pos] = sym.String()
		}
		layers[i] = Layer{
			Name:  names[i],
			Color: []int{int(base[i].R), int(base[i].G), int(base[i].B), int(base[i].W)},
			Keys:  keys,
		}
	}

	return &Config{
		DeviceName:      status.DefaultDeviceName,
		NumKeys:         keymap.DefaultNumKeys,
		BrightnessLimit: 150,
		PollIntervalMS:  10,
		Layers:          layers,
	}
}

// Load reads a TOML file over the defaults and validates the result. An
// empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		// The file replaces the layer list wholesale when it defines any
		// layer; partial layer overrides would make completeness
		// validation ambiguous.
		overlay := &Config{}
		if err := toml.Unmarshal(data, overlay); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		cfg.merge(overlay)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge applies the set fields of an overlay onto the defaults.
func (c *Config) merge(o *Config) {
	if o.DeviceName != "" {
		c.DeviceName = o.DeviceName
	}
	if o.NumKeys != 0 {
		c.NumKeys = o.NumKeys
	}
	if o.BrightnessLimit != 0 {
		c.BrightnessLimit = o.BrightnessLimit
	}
	if o.PollIntervalMS != 0 {
		c.PollIntervalMS = o.PollIntervalMS
	}
	if len(o.Layers) != 0 {
		c.Layers = o.Layers
	}
}

// Validate checks the whole configuration, fail-fast on the first problem.
func (c *Config) Validate() error {
	if c.NumKeys < 1 {
		return &ValidationError{Field: "num_keys", Message: fmt.Sprintf("must be at least 1, got %d", c.NumKeys)}
	}
	if c.BrightnessLimit < 0 || c.BrightnessLimit > 255 {
		return &ValidationError{Field: "brightness_limit", Message: fmt.Sprintf("must be in [0,255], got %d", c.BrightnessLimit)}
	}
	if c.PollIntervalMS < 1 {
		return &ValidationError{Field: "poll_interval_ms", Message: fmt.Sprintf("must be at least 1, got %d", c.PollIntervalMS)}
	}
	if len(c.Layers) == 0 {
		return &ValidationError{Field: "layer", Message: "at least one layer required"}
	}

	for i, l := range c.Layers {
		field := fmt.Sprintf("layer[%d]", i)
		if len(l.Color) != 4 {
			return &ValidationError{Field: field + ".color", Message: fmt.Sprintf("want 4 channels (r,g,b,w), got %d", len(l.Color))}
		}
		for ch, v := range l.Color {
			if v < 0 || v > 255 {
				return &ValidationError{Field: field + ".color", Message: fmt.Sprintf("channel %d = %d, must be in [0,255]", ch, v)}
			}
		}
		if len(l.Keys) != c.NumKeys {
			return &ValidationError{Field: field + ".keys", Message: fmt.Sprintf("defines %d positions, want %d", len(l.Keys), c.NumKeys)}
		}
		for pos, name := range l.Keys {
			if _, ok := key.Parse(name); !ok {
				return &ValidationError{Field: fmt.Sprintf("%s.keys[%d]", field, pos), Message: fmt.Sprintf("unknown symbol %q", name)}
			}
		}
	}
	return nil
}

// Table builds the validated keymap table.
func (c *Config) Table() (*keymap.Table, error) {
	layers := make([][]key.Symbol, len(c.Layers))
	for i, l := range c.Layers {
		row := make([]key.Symbol, len(l.Keys))
		for pos, name := range l.Keys {
			sym, ok := key.Parse(name)
			if !ok {
				return nil, &ValidationError{Field: fmt.Sprintf("layer[%d].keys[%d]", i, pos), Message: fmt.Sprintf("unknown symbol %q", name)}
			}
			row[pos] = sym
		}
		layers[i] = row
	}
	return keymap.New(layers, c.NumKeys)
}

// BaseColors returns the per-layer idle colors.
func (c *Config) BaseColors() []illum.RGBW {
	colors := make([]illum.RGBW, len(c.Layers))
	for i, l := range c.Layers {
		colors[i] = illum.RGBW{
			R: uint8(l.Color[0]),
			G: uint8(l.Color[1]),
			B: uint8(l.Color[2]),
			W: uint8(l.Color[3]),
		}
	}
	return colors
}

// PollInterval returns the scan cycle period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
