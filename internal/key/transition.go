package key

import "fmt"

// Transition is a single debounced key state change delivered by the matrix
// scanner: one physical position went down or came up. Exactly one
// transition arrives per physical change; debouncing and deduplication are
// the scanner's responsibility.
type Transition struct {
	// Pos is the physical key position, row-major in [0, NumKeys).
	Pos int

	// Pressed is true for a press, false for a release.
	Pressed bool
}

// Press returns a press transition for a position.
func Press(pos int) Transition {
	return Transition{Pos: pos, Pressed: true}
}

// Release returns a release transition for a position.
func Release(pos int) Transition {
	return Transition{Pos: pos, Pressed: false}
}

// String returns a short form like "press(6)" or "release(14)".
func (t Transition) String() string {
	if t.Pressed {
		return fmt.Sprintf("press(%d)", t.Pos)
	}
	return fmt.Sprintf("release(%d)", t.Pos)
}
