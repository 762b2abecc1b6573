package scan

import (
	"github.com/dshills/gridpad/internal/illum"
	"github.com/dshills/gridpad/internal/key"
	"github.com/dshills/gridpad/internal/keymap"
	"github.com/dshills/gridpad/internal/layer"
	"github.com/dshills/gridpad/internal/status"
)

// Processor consumes one key transition at a time, resolving it against the
// keymap under the active layer and driving illumination and status updates.
type Processor struct {
	layers *layer.State
	table  *keymap.Table
	lights *illum.State
	stat   *status.Renderer
}

// NewProcessor wires a processor to its collaborating state.
func NewProcessor(ls *layer.State, table *keymap.Table, lights *illum.State, stat *status.Renderer) *Processor {
	return &Processor{
		layers: ls,
		table:  table,
		lights: lights,
		stat:   stat,
	}
}

// Handle processes a single transition. It returns the resolved symbol and
// whether that symbol should be forwarded to host dispatch; layer-cycle
// controls and releases are never forwarded.
//
// Releases restore the key's illumination slot with the layer active at the
// moment of release. The layer may have changed while the key was held, and
// the slot must revert to the color of whichever layer is active now, not
// the one captured at press time.
func (p *Processor) Handle(t key.Transition) (key.Symbol, bool) {
	sym := p.table.Lookup(p.layers.Current(), t.Pos)

	switch {
	case sym.IsLayerControl() && t.Pressed:
		// Momentary trigger: cycle the layer, show the press on the key's
		// slot. The watcher's base reapply will cover it a moment later.
		if sym == key.SymLayerNext {
			p.layers.Cycle(layer.Forward)
		} else {
			p.layers.Cycle(layer.Backward)
		}
		p.lights.SetPressed(t.Pos)
		return sym, false

	case t.Pressed:
		// No-op symbols still get full visual feedback; the pad is a
		// physical feedback surface even for unmapped keys.
		p.stat.NoteKey(sym.String())
		p.lights.SetPressed(t.Pos)
		return sym, true

	default:
		p.lights.Release(t.Pos, p.layers.Current())
		return sym, false
	}
}
