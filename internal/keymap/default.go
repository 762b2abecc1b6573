package keymap

import (
	"github.com/dshills/gridpad/internal/key"
)

// Reference device geometry: a 4x4 matrix, flattened row-major.
const (
	// DefaultNumKeys is the number of physical keys on the reference pad.
	DefaultNumKeys = 16

	// DefaultLayers is the number of layers on the reference pad.
	DefaultLayers = 4

	// LayerPrevPos and LayerNextPos are the reserved positions carrying the
	// layer-cycle controls on every layer.
	LayerPrevPos = 14
	LayerNextPos = 15
)

// DefaultLayout returns the reference 4-layer layout: keypad digits and a
// few letters on layer 0, function keys on layer 1, media controls on
// layer 2, letters on layer 3. Positions 14 and 15 cycle layers backward
// and forward on every layer.
func DefaultLayout() [][]key.Symbol {
	return [][]key.Symbol{
		{
			key.SymKP1, key.SymKP2, key.SymKP3, key.SymKP4,
			key.SymKP5, key.SymKP6, key.SymKP7, key.SymKP8,
			key.SymKP9, key.SymKP0, key.SymA, key.SymB,
			key.SymC, key.SymD, key.SymLayerPrev, key.SymLayerNext,
		},
		{
			key.SymF1, key.SymF2, key.SymF3, key.SymF4,
			key.SymF5, key.SymF6, key.SymF7, key.SymF8,
			key.SymF9, key.SymF10, key.SymNone, key.SymNone,
			key.SymNone, key.SymNone, key.SymLayerPrev, key.SymLayerNext,
		},
		{
			key.SymMute, key.SymVolUp, key.SymVolDown, key.SymNone,
			key.SymPrevTrack, key.SymPlayPause, key.SymNextTrack, key.SymNone,
			key.SymNone, key.SymNone, key.SymNone, key.SymNone,
			key.SymNone, key.SymNone, key.SymLayerPrev, key.SymLayerNext,
		},
		{
			key.SymA, key.SymB, key.SymC, key.SymD,
			key.SymE, key.SymF, key.SymG, key.SymH,
			key.SymI, key.SymJ, key.SymK, key.SymL,
			key.SymM, key.SymN, key.SymLayerPrev, key.SymLayerNext,
		},
	}
}

// Default returns the validated reference table.
func Default() *Table {
	t, err := New(DefaultLayout(), DefaultNumKeys)
	if err != nil {
		// The reference layout is compiled in; failing to validate it is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return t
}
