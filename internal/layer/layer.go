// Package layer owns the active-layer state of the macropad.
//
// Exactly one layer is active at a time. The state is the single source of
// truth for "which layer"; it never touches illumination or the display —
// synchronizing those is the scan pipeline's job, which keeps this package
// trivially testable in isolation.
package layer

import "fmt"

// Direction selects which way a cycle operation moves through the layers.
type Direction int

const (
	// Backward cycles to the previous layer, wrapping to the last.
	Backward Direction = iota

	// Forward cycles to the next layer, wrapping to the first.
	Forward
)

// String returns "backward" or "forward".
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// State holds the active layer index. Created once at startup with layer 0
// active; lives for the process lifetime.
type State struct {
	active int
	count  int
}

// New creates layer state for count layers with layer 0 active.
func New(count int) (*State, error) {
	if count < 1 {
		return nil, fmt.Errorf("layer count must be at least 1, got %d", count)
	}
	return &State{count: count}, nil
}

// Current returns the active layer index, always in [0, count).
func (s *State) Current() int {
	return s.active
}

// Count returns the number of layers.
func (s *State) Count() int {
	return s.count
}

// Cycle moves the active layer one step in the given direction, wrapping
// modulo the layer count, and returns the new index. The result is always
// non-negative: cycling backward from layer 0 lands on the last layer.
func (s *State) Cycle(d Direction) int {
	delta := -1
	if d == Forward {
		delta = 1
	}
	s.active = ((s.active+delta)%s.count + s.count) % s.count
	return s.active
}
