package key

import "fmt"

// Symbol identifies the logical key or action a physical position resolves
// to under the active layer.
type Symbol uint16

const (
	// SymNone is the explicit no-op symbol. Unused positions map to it;
	// every layer defines every position, never a missing entry.
	SymNone Symbol = iota

	// Keypad digits
	SymKP1
	SymKP2
	SymKP3
	SymKP4
	SymKP5
	SymKP6
	SymKP7
	SymKP8
	SymKP9
	SymKP0

	// Letters
	SymA
	SymB
	SymC
	SymD
	SymE
	SymF
	SymG
	SymH
	SymI
	SymJ
	SymK
	SymL
	SymM
	SymN

	// Function keys
	SymF1
	SymF2
	SymF3
	SymF4
	SymF5
	SymF6
	SymF7
	SymF8
	SymF9
	SymF10

	// Media controls
	SymMute
	SymVolUp
	SymVolDown
	SymPrevTrack
	SymPlayPause
	SymNextTrack

	// Layer cycle controls. These mutate layer state instead of being
	// forwarded to the host.
	SymLayerPrev
	SymLayerNext

	symbolCount
)

// symbolNames maps symbols to their canonical display labels.
var symbolNames = map[Symbol]string{
	SymNone:      "None",
	SymKP1:       "KP_1",
	SymKP2:       "KP_2",
	SymKP3:       "KP_3",
	SymKP4:       "KP_4",
	SymKP5:       "KP_5",
	SymKP6:       "KP_6",
	SymKP7:       "KP_7",
	SymKP8:       "KP_8",
	SymKP9:       "KP_9",
	SymKP0:       "KP_0",
	SymA:         "A",
	SymB:         "B",
	SymC:         "C",
	SymD:         "D",
	SymE:         "E",
	SymF:         "F",
	SymG:         "G",
	SymH:         "H",
	SymI:         "I",
	SymJ:         "J",
	SymK:         "K",
	SymL:         "L",
	SymM:         "M",
	SymN:         "N",
	SymF1:        "F1",
	SymF2:        "F2",
	SymF3:        "F3",
	SymF4:        "F4",
	SymF5:        "F5",
	SymF6:        "F6",
	SymF7:        "F7",
	SymF8:        "F8",
	SymF9:        "F9",
	SymF10:       "F10",
	SymMute:      "Mute",
	SymVolUp:     "Vol+",
	SymVolDown:   "Vol-",
	SymPrevTrack: "Prev",
	SymPlayPause: "Play",
	SymNextTrack: "Next",
	SymLayerPrev: "L_PREV",
	SymLayerNext: "L_NEXT",
}

// symbolsByName is the reverse of symbolNames, for configuration parsing.
var symbolsByName = func() map[string]Symbol {
	m := make(map[string]Symbol, len(symbolNames))
	for s, name := range symbolNames {
		m[name] = s
	}
	return m
}()

// String returns the symbol's display label, as shown on the status line.
func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Symbol(%d)", uint16(s))
}

// Parse resolves a display label back to its symbol. Used by the
// configuration loader; unknown names are a validation error there.
func Parse(name string) (Symbol, bool) {
	s, ok := symbolsByName[name]
	return s, ok
}

// IsNone reports whether the symbol is the explicit no-op. A no-op key
// still receives illumination press and release treatment; it just has
// nothing to say to the host.
func (s Symbol) IsNone() bool {
	return s == SymNone
}

// IsLayerControl reports whether the symbol is one of the reserved
// layer-cycle controls.
func (s Symbol) IsLayerControl() bool {
	return s == SymLayerPrev || s == SymLayerNext
}

// IsValid reports whether the symbol is one of the defined values.
func (s Symbol) IsValid() bool {
	return s < symbolCount
}
