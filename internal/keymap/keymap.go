package keymap

import (
	"github.com/dshills/gridpad/internal/key"
)

// Table is the immutable (layer, position) → symbol mapping. Build one with
// New, which validates completeness; after that Lookup assumes the
// invariants hold.
type Table struct {
	layers  [][]key.Symbol
	numKeys int
}

// New builds a table from per-layer symbol rows, each exactly numKeys long.
// Validation is fail-fast: a missing position or an undefined symbol value
// rejects the whole table at startup rather than surfacing mid-scan.
func New(layers [][]key.Symbol, numKeys int) (*Table, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	for li, row := range layers {
		if len(row) != numKeys {
			return nil, &IncompleteLayerError{Layer: li, Got: len(row), Want: numKeys}
		}
		for pos, sym := range row {
			if !sym.IsValid() {
				return nil, &InvalidSymbolError{Layer: li, Pos: pos}
			}
		}
	}

	// Copy so later mutation of the caller's slices cannot reach the table.
	copied := make([][]key.Symbol, len(layers))
	for i, row := range layers {
		copied[i] = append([]key.Symbol(nil), row...)
	}

	return &Table{layers: copied, numKeys: numKeys}, nil
}

// Lookup returns the symbol at (layer, pos). Both indices must be in range;
// the table was validated at construction and the scan pipeline bounds-checks
// positions before they get here.
func (t *Table) Lookup(layer, pos int) key.Symbol {
	return t.layers[layer][pos]
}

// Layers returns the number of layers.
func (t *Table) Layers() int {
	return len(t.layers)
}

// NumKeys returns the number of positions per layer.
func (t *Table) NumKeys() int {
	return t.numKeys
}
