package scan

import (
	"github.com/dshills/gridpad/internal/illum"
	"github.com/dshills/gridpad/internal/layer"
	"github.com/dshills/gridpad/internal/status"
)

// Watcher reconciles illumination and status against the layer state once
// per scan cycle. Layer mutation can originate from more than one path;
// the watcher guarantees the visual subsystems never drift more than one
// cycle behind, no matter which path changed the layer.
type Watcher struct {
	layers   *layer.State
	lights   *illum.State
	stat     *status.Renderer
	display  status.Display
	lastSeen int
}

// NewWatcher creates a watcher with its remembered layer initialized from
// the current layer state. Initializing here, not lazily on first check,
// keeps a conditional off the hot path and makes cycle-zero behavior
// unambiguous.
func NewWatcher(ls *layer.State, lights *illum.State, stat *status.Renderer, display status.Display) *Watcher {
	return &Watcher{
		layers:   ls,
		lights:   lights,
		stat:     stat,
		display:  display,
		lastSeen: ls.Current(),
	}
}

// Check compares the active layer against the remembered value. On a
// change it reapplies the layer base colors to every slot, updates the
// status line, refreshes the display, and remembers the new layer. Returns
// whether a change was reconciled.
func (w *Watcher) Check() bool {
	cur := w.layers.Current()
	if cur == w.lastSeen {
		return false
	}

	w.lights.ApplyBase(cur)
	w.stat.NoteLayer(cur)
	if w.display != nil {
		w.display.ShowText(w.stat.Render())
	}
	w.lastSeen = cur
	return true
}
