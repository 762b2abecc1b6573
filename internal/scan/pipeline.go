package scan

import (
	"github.com/dshills/gridpad/internal/illum"
	"github.com/dshills/gridpad/internal/key"
	"github.com/dshills/gridpad/internal/keymap"
	"github.com/dshills/gridpad/internal/layer"
	"github.com/dshills/gridpad/internal/status"
)

// Scanner produces the transitions detected in one poll of the matrix.
// The sequence is ordered and possibly empty. Debouncing and deduplication
// are the scanner's responsibility.
type Scanner interface {
	Poll() []key.Transition
}

// Dispatcher receives each resolved symbol for downstream host action
// (keystroke injection, media control). Out of this core's scope beyond
// the hand-off.
type Dispatcher interface {
	Dispatch(key.Symbol)
}

// Pipeline is the fixed ordered per-cycle sequence: process transitions,
// reconcile the layer watcher, push status text to the display. It is the
// single entry point the scheduler invokes once per poll interval.
type Pipeline struct {
	proc    *Processor
	watcher *Watcher
	stat    *status.Renderer
	display status.Display
	numKeys int
}

// NewPipeline wires the pipeline stages. The same display the watcher
// refreshes also receives the status text after a cycle with key presses.
func NewPipeline(ls *layer.State, table *keymap.Table, lights *illum.State, stat *status.Renderer, display status.Display) *Pipeline {
	return &Pipeline{
		proc:    NewProcessor(ls, table, lights, stat),
		watcher: NewWatcher(ls, lights, stat, display),
		stat:    stat,
		display: display,
		numKeys: table.NumKeys(),
	}
}

// Sync pushes the current base colors and status text out, as done once at
// startup before the first cycle.
func (p *Pipeline) Sync() {
	p.proc.lights.ApplyBase(p.proc.layers.Current())
	p.stat.NoteLayer(p.proc.layers.Current())
	if p.display != nil {
		p.display.ShowText(p.stat.Render())
	}
}

// Cycle runs one scan cycle over the transitions from this poll and
// returns the symbols to hand to host dispatch, in event order. Layer
// controls and releases resolve but are not forwarded.
//
// A transition outside the matrix is a scanner contract violation; Cycle
// stops and returns a PositionError, which callers must treat as fatal.
func (p *Pipeline) Cycle(transitions []key.Transition) ([]key.Symbol, error) {
	var resolved []key.Symbol
	pressed := false

	for _, t := range transitions {
		if t.Pos < 0 || t.Pos >= p.numKeys {
			return nil, &PositionError{Pos: t.Pos, NumKeys: p.numKeys}
		}
		sym, forward := p.proc.Handle(t)
		if forward {
			resolved = append(resolved, sym)
			pressed = true
		}
	}

	reconciled := p.watcher.Check()

	// The watcher already refreshed the display if the layer changed this
	// cycle; otherwise a press still needs the new key label shown.
	if pressed && !reconciled && p.display != nil {
		p.display.ShowText(p.stat.Render())
	}

	return resolved, nil
}
