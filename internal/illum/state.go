package illum

import (
	"errors"
	"fmt"
)

// Driver transmits a flat per-element color buffer to the physical
// elements. It is assumed to always succeed; no error channel is modeled.
type Driver interface {
	WriteColors([]RGBW)
}

// ErrNoKeys indicates a state was built with no key slots.
var ErrNoKeys = errors.New("illum: key count must be at least 1")

// BaseColorCountError indicates the base-color table does not cover every
// layer. Caught at construction, never during the scan loop.
type BaseColorCountError struct {
	Got  int
	Want int
}

func (e *BaseColorCountError) Error() string {
	return fmt.Sprintf("illum: %d base colors for %d layers", e.Got, e.Want)
}

// State holds one color slot per physical key and the per-layer base color
// table. All mutations emit the full buffer to the driver.
type State struct {
	drv     Driver
	base    []RGBW
	pressed RGBW
	buf     []RGBW
}

// New builds illumination state for numKeys elements across numLayers
// layers. The base-color table must define exactly one color per layer;
// that is validated here, fail-fast, so the scan hot path can assume it.
// A non-zero limit caps the brightness of every color the state emits.
func New(drv Driver, base []RGBW, numKeys, numLayers int, limit uint8) (*State, error) {
	if numKeys < 1 {
		return nil, ErrNoKeys
	}
	if len(base) != numLayers {
		return nil, &BaseColorCountError{Got: len(base), Want: numLayers}
	}

	limited := make([]RGBW, len(base))
	for i, c := range base {
		limited[i] = Limit(c, limit)
	}

	return &State{
		drv:     drv,
		base:    limited,
		pressed: Limit(Pressed, limit),
		buf:     make([]RGBW, numKeys),
	}, nil
}

// ApplyBase sets every slot to the layer's base color and emits the buffer.
// Idempotent: applying the same layer twice emits the same buffer.
func (s *State) ApplyBase(layer int) {
	c := s.base[layer]
	for i := range s.buf {
		s.buf[i] = c
	}
	s.emit()
}

// SetPressed sets one slot to the pressed override and emits the buffer.
// No other slot changes.
func (s *State) SetPressed(pos int) {
	s.buf[pos] = s.pressed
	s.emit()
}

// Release restores one slot to the base color of the given layer and emits
// the buffer. Callers pass the layer active at release time; a layer
// captured at press time would revert to the wrong color when the layer
// changed while the key was held.
func (s *State) Release(pos, layer int) {
	s.buf[pos] = s.base[layer]
	s.emit()
}

// BaseColor returns the (brightness-limited) base color for a layer.
func (s *State) BaseColor(layer int) RGBW {
	return s.base[layer]
}

// PressedColor returns the (brightness-limited) pressed override color.
func (s *State) PressedColor() RGBW {
	return s.pressed
}

// Colors returns a copy of the current buffer.
func (s *State) Colors() []RGBW {
	return append([]RGBW(nil), s.buf...)
}

// NumKeys returns the number of slots.
func (s *State) NumKeys() int {
	return len(s.buf)
}

func (s *State) emit() {
	if s.drv != nil {
		s.drv.WriteColors(s.buf)
	}
}
