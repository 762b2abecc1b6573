// Package app wires the macropad core to its collaborators and runs the
// scan scheduler.
package app

import (
	"fmt"

	"github.com/dshills/gridpad/internal/config"
	"github.com/dshills/gridpad/internal/illum"
	"github.com/dshills/gridpad/internal/key"
	"github.com/dshills/gridpad/internal/keymap"
	"github.com/dshills/gridpad/internal/layer"
	"github.com/dshills/gridpad/internal/oled"
	"github.com/dshills/gridpad/internal/scan"
	"github.com/dshills/gridpad/internal/sim"
	"github.com/dshills/gridpad/internal/status"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML configuration file; empty uses the defaults.
	ConfigPath string

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// Headless runs the canned demonstration cycle instead of the
	// interactive terminal simulator.
	Headless bool

	// SnapshotDir, when set, receives an OLED framebuffer snapshot at the
	// end of a headless run.
	SnapshotDir string
}

// App owns the wired core and the collaborator implementations.
type App struct {
	opts Options
	log  *Logger

	cfg      *config.Config
	pipeline *scan.Pipeline
	display  *oled.Rasterizer
	term     *sim.Terminal
}

// New loads the configuration and wires the core. Configuration problems
// surface here, before the scan loop starts.
func New(opts Options) (*App, error) {
	a := &App{
		opts:    opts,
		log:     NewLogger(ParseLogLevel(opts.LogLevel), nil),
		display: oled.New(),
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if !opts.Headless {
		term, err := sim.NewTerminal(cfg.NumKeys)
		if err != nil {
			return nil, fmt.Errorf("app: creating terminal: %w", err)
		}
		a.term = term
	}

	if err := a.buildCore(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// buildCore constructs the state objects and pipeline from a validated
// configuration. Called at startup and again on a live config reload.
func (a *App) buildCore(cfg *config.Config) error {
	table, err := cfg.Table()
	if err != nil {
		return err
	}
	layers, err := layer.New(table.Layers())
	if err != nil {
		return err
	}

	var drv illum.Driver
	if a.term != nil {
		drv = a.term
	}
	lights, err := illum.New(drv, cfg.BaseColors(), cfg.NumKeys, table.Layers(), uint8(cfg.BrightnessLimit))
	if err != nil {
		return err
	}

	stat := status.New(cfg.DeviceName)
	displays := []status.Display{a.display}
	if a.term != nil {
		displays = append(displays, a.term)
	}

	a.cfg = cfg
	a.pipeline = scan.NewPipeline(layers, table, lights, stat, fanout(displays))
	return nil
}

// fanout broadcasts status text to every display.
type fanout []status.Display

func (f fanout) ShowText(text string) {
	for _, d := range f {
		d.ShowText(text)
	}
}

// logDispatcher logs each resolved symbol the way a host transport would
// consume it.
type logDispatcher struct {
	log *Logger
}

func (d *logDispatcher) Dispatch(sym key.Symbol) {
	if code, ok := sym.HIDCode(); ok {
		d.log.Info("dispatch %s (hid usage 0x%02X)", sym, code)
		return
	}
	d.log.Info("dispatch %s", sym)
}

// demoScript is the headless demonstration: a tap on position 6, a layer
// cycle, a tap under the new layer, a press held across a layer change,
// and a cycle back around to layer 0.
func demoScript() [][]key.Transition {
	return [][]key.Transition{
		{key.Press(6)},
		{key.Release(6)},
		{key.Press(keymap.LayerNextPos)},
		{key.Release(keymap.LayerNextPos)},
		{key.Press(0)},
		{key.Release(0)},
		{key.Press(5), key.Press(keymap.LayerNextPos)},
		{key.Release(keymap.LayerNextPos)},
		{key.Release(5)},
		{key.Press(keymap.LayerPrevPos), key.Release(keymap.LayerPrevPos)},
		{key.Press(keymap.LayerPrevPos), key.Release(keymap.LayerPrevPos)},
	}
}
