package scan

import (
	"errors"
	"testing"

	"github.com/dshills/gridpad/internal/illum"
	"github.com/dshills/gridpad/internal/key"
	"github.com/dshills/gridpad/internal/keymap"
	"github.com/dshills/gridpad/internal/layer"
)

func newPipeline(f *fixture) *Pipeline {
	return NewPipeline(f.layers, f.table, f.lights, f.stat, f.disp)
}

func TestPipelineSync(t *testing.T) {
	f := newFixture(t)
	p := newPipeline(f)

	p.Sync()

	want := f.lights.BaseColor(0)
	for i, c := range f.lights.Colors() {
		if c != want {
			t.Errorf("slot %d = %v, want %v", i, c, want)
		}
	}
	if got := f.disp.last(); got != "4x4 Macropad\nLayer: 0\nKey: None" {
		t.Errorf("display = %q, want initial status", got)
	}
}

func TestPipelineEmptyCycle(t *testing.T) {
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()
	displayed := len(f.disp.texts)

	syms, err := p.Cycle(nil)
	if err != nil {
		t.Fatalf("Cycle(nil) error = %v", err)
	}
	if len(syms) != 0 {
		t.Errorf("Cycle(nil) = %v, want no symbols", syms)
	}
	if len(f.disp.texts) != displayed {
		t.Error("empty cycle refreshed the display")
	}
}

func TestPipelinePressReturnsSymbol(t *testing.T) {
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()

	syms, err := p.Cycle([]key.Transition{key.Press(6)})
	if err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	if len(syms) != 1 || syms[0] != key.SymKP7 {
		t.Errorf("Cycle() = %v, want [SymKP7]", syms)
	}
	if got := f.disp.last(); got != "4x4 Macropad\nLayer: 0\nKey: KP_7" {
		t.Errorf("display = %q, want KP_7 status", got)
	}
}

func TestPipelineReleaseReturnsNothing(t *testing.T) {
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()

	p.Cycle([]key.Transition{key.Press(6)})
	syms, err := p.Cycle([]key.Transition{key.Release(6)})
	if err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	if len(syms) != 0 {
		t.Errorf("release Cycle() = %v, want no symbols", syms)
	}
}

func TestPipelineLayerCycleReconciledSameCycle(t *testing.T) {
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()

	syms, err := p.Cycle([]key.Transition{key.Press(keymap.LayerNextPos)})
	if err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	if len(syms) != 0 {
		t.Errorf("Cycle() = %v, want no symbols; layer controls stay on-device", syms)
	}

	// Reconciliation happens in the same cycle as the triggering press:
	// every slot already shows layer 1's base color, including the control
	// key's own slot that briefly held the override.
	want := f.lights.BaseColor(1)
	for i, c := range f.lights.Colors() {
		if c != want {
			t.Errorf("slot %d = %v, want layer 1 base %v", i, c, want)
		}
	}
	if got := f.disp.last(); got != "4x4 Macropad\nLayer: 1\nKey: None" {
		t.Errorf("display = %q, want layer 1 status with key label unchanged", got)
	}
}

func TestPipelineExternalLayerChangeReconciledNextCycle(t *testing.T) {
	// A layer change from any path outside the dedicated keys is picked up
	// by the next cycle, never later.
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()

	f.layers.Cycle(layer.Forward)

	if _, err := p.Cycle(nil); err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}

	want := f.lights.BaseColor(1)
	for i, c := range f.lights.Colors() {
		if c != want {
			t.Errorf("slot %d = %v, want %v", i, c, want)
		}
	}
}

func TestPipelineStaleLayerOnRelease(t *testing.T) {
	// Regression: press at layer 0, cycle to layer 1 while held, release.
	// The released slot must end on layer 1's base color.
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()

	if _, err := p.Cycle([]key.Transition{key.Press(6)}); err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	if _, err := p.Cycle([]key.Transition{key.Press(keymap.LayerNextPos), key.Release(keymap.LayerNextPos)}); err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	if _, err := p.Cycle([]key.Transition{key.Release(6)}); err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}

	got := f.lights.Colors()[6]
	if want := f.lights.BaseColor(1); got != want {
		t.Errorf("slot 6 = %v, want layer 1 base %v, not layer 0's", got, want)
	}
}

func TestPipelineExampleScenario(t *testing.T) {
	// The end-to-end reference walk: press 6 under layer 0, release, then
	// cycle forward.
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()

	if _, err := p.Cycle([]key.Transition{key.Press(6)}); err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	if got := f.lights.Colors()[6]; got != (illum.RGBW{W: 255}) {
		t.Errorf("slot 6 = %v, want (0,0,0,255)", got)
	}
	if got := f.disp.last(); got != "4x4 Macropad\nLayer: 0\nKey: KP_7" {
		t.Errorf("display = %q, want layer 0 / KP_7", got)
	}

	if _, err := p.Cycle([]key.Transition{key.Release(6)}); err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	if got := f.lights.Colors()[6]; got != (illum.RGBW{B: 64}) {
		t.Errorf("slot 6 = %v, want (0,0,64,0)", got)
	}

	if _, err := p.Cycle([]key.Transition{key.Press(keymap.LayerNextPos)}); err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	for i, c := range f.lights.Colors() {
		if c != (illum.RGBW{G: 64}) {
			t.Errorf("slot %d = %v, want (0,64,0,0)", i, c)
		}
	}
	if got := f.disp.last(); got != "4x4 Macropad\nLayer: 1\nKey: KP_7" {
		t.Errorf("display = %q, want layer 1 with KP_7 label kept", got)
	}
}

func TestPipelinePositionOutOfRangeFatal(t *testing.T) {
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()

	for _, pos := range []int{-1, 16, 99} {
		_, err := p.Cycle([]key.Transition{key.Press(pos)})
		var posErr *PositionError
		if !errors.As(err, &posErr) {
			t.Errorf("Cycle(press %d) error = %v, want PositionError", pos, err)
			continue
		}
		if posErr.Pos != pos {
			t.Errorf("PositionError.Pos = %d, want %d", posErr.Pos, pos)
		}
	}
}

func TestPipelineMultipleTransitionsInOrder(t *testing.T) {
	f := newFixture(t)
	p := newPipeline(f)
	p.Sync()

	syms, err := p.Cycle([]key.Transition{
		key.Press(0), key.Release(0), key.Press(1), key.Press(2),
	})
	if err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	want := []key.Symbol{key.SymKP1, key.SymKP2, key.SymKP3}
	if len(syms) != len(want) {
		t.Fatalf("Cycle() returned %d symbols, want %d", len(syms), len(want))
	}
	for i := range want {
		if syms[i] != want[i] {
			t.Errorf("symbol %d = %v, want %v", i, syms[i], want[i])
		}
	}
}
