package app

import (
	"fmt"
	"time"

	"github.com/dshills/gridpad/internal/config"
)

// Run executes the application until the user quits (interactive) or the
// demonstration script completes (headless). A matrix contract violation
// is fatal and returned.
func (a *App) Run() error {
	if a.opts.Headless {
		return a.runHeadless()
	}
	return a.runInteractive()
}

func (a *App) runInteractive() error {
	if err := a.term.Init(); err != nil {
		return fmt.Errorf("app: starting terminal: %w", err)
	}
	defer a.term.Shutdown()

	// The simulator owns the terminal; raw log lines would corrupt it.
	a.log.Disable()

	var watchCh <-chan struct{}
	if a.opts.ConfigPath != "" {
		w, err := config.NewWatcher(a.opts.ConfigPath)
		if err == nil {
			defer w.Close()
			watchCh = w.Events()
		}
	}

	a.pipeline.Sync()
	a.term.Draw()

	ticker := time.NewTicker(a.cfg.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-a.term.Done():
			return nil

		case <-watchCh:
			a.reloadConfig()
			ticker.Reset(a.cfg.PollInterval())

		case <-ticker.C:
			syms, err := a.pipeline.Cycle(a.term.Poll())
			if err != nil {
				return fmt.Errorf("app: matrix scanner contract violated: %w", err)
			}
			for _, sym := range syms {
				a.term.Dispatch(sym)
			}
			a.term.Draw()
		}
	}
}

// reloadConfig applies a changed configuration between scan cycles. A
// replacement that fails to load or validate is rejected; the running
// configuration stays in effect. A successful reload rebuilds the core,
// which resets held-key state and re-synchronizes all visuals.
func (a *App) reloadConfig() {
	cfg, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		a.log.Warn("config reload rejected: %v", err)
		return
	}
	if err := a.buildCore(cfg); err != nil {
		a.log.Warn("config reload rejected: %v", err)
		return
	}
	a.pipeline.Sync()
	if a.term != nil {
		a.term.Draw()
	}
}

func (a *App) runHeadless() error {
	a.log.Info("device %q: %d keys, %d layers, poll %s",
		a.cfg.DeviceName, a.cfg.NumKeys, len(a.cfg.Layers), a.cfg.PollInterval())

	disp := &logDispatcher{log: a.log}
	a.pipeline.Sync()

	for i, batch := range demoScript() {
		syms, err := a.pipeline.Cycle(batch)
		if err != nil {
			return fmt.Errorf("app: cycle %d: %w", i, err)
		}
		for _, sym := range syms {
			disp.Dispatch(sym)
		}
	}

	a.log.Info("final status: %q", a.display.Text())

	if a.opts.SnapshotDir != "" {
		path, err := a.display.SavePNG(a.opts.SnapshotDir)
		if err != nil {
			return err
		}
		a.log.Info("oled snapshot written to %s", path)
	}
	return nil
}
