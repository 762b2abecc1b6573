package keymap

import (
	"errors"
	"fmt"
)

// ErrNoLayers indicates a table was built with no layers at all.
var ErrNoLayers = errors.New("keymap: no layers defined")

// IncompleteLayerError indicates a layer does not define every position.
type IncompleteLayerError struct {
	Layer int
	Got   int
	Want  int
}

func (e *IncompleteLayerError) Error() string {
	return fmt.Sprintf("keymap: layer %d defines %d positions, want %d", e.Layer, e.Got, e.Want)
}

// InvalidSymbolError indicates a layer entry holds an undefined symbol value.
type InvalidSymbolError struct {
	Layer int
	Pos   int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("keymap: layer %d position %d holds an undefined symbol", e.Layer, e.Pos)
}
