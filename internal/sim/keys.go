package sim

import (
	"strings"
	"unicode"

	"github.com/dshills/gridpad/internal/key"
)

// keyRow maps terminal runes to matrix positions, row-major.
const keyRunes = "1234qwerasdfzxcv"

// position resolves a terminal rune to a matrix position. The second
// return distinguishes a tap (lowercase) from a latch toggle (uppercase);
// the third is false for runes outside the grid.
func position(r rune) (pos int, latch, ok bool) {
	lower := unicode.ToLower(r)
	idx := strings.IndexRune(keyRunes, lower)
	if idx < 0 {
		return 0, false, false
	}
	return idx, r != lower, true
}

// input tracks latched positions and builds the transition sequence for
// each scan cycle. Taps split across two cycles so the press is visible
// for at least one full cycle.
type input struct {
	queue    []key.Transition
	followup []key.Transition
	held     map[int]bool
}

func newInput() *input {
	return &input{held: make(map[int]bool)}
}

// rune records one terminal keystroke.
func (in *input) rune(r rune, numKeys int) {
	pos, latch, ok := position(r)
	if !ok || pos >= numKeys {
		return
	}

	if latch {
		if in.held[pos] {
			delete(in.held, pos)
			in.queue = append(in.queue, key.Release(pos))
		} else {
			in.held[pos] = true
			in.queue = append(in.queue, key.Press(pos))
		}
		return
	}

	// Tapping a latched position releases it instead of double-pressing.
	if in.held[pos] {
		delete(in.held, pos)
		in.queue = append(in.queue, key.Release(pos))
		return
	}
	in.queue = append(in.queue, key.Press(pos))
	in.followup = append(in.followup, key.Release(pos))
}

// drain returns this cycle's transitions and promotes the follow-ups.
func (in *input) drain() []key.Transition {
	out := in.queue
	in.queue = in.followup
	in.followup = nil
	return out
}
