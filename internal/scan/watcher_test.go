package scan

import (
	"strings"
	"testing"

	"github.com/dshills/gridpad/internal/layer"
)

func TestWatcherNoChangeNoEffect(t *testing.T) {
	f := newFixture(t)
	w := NewWatcher(f.layers, f.lights, f.stat, f.disp)

	writesBefore := len(f.drv.writes)
	if w.Check() {
		t.Error("Check() = true with no layer change, want false")
	}
	if len(f.drv.writes) != writesBefore {
		t.Error("Check() emitted colors without a layer change")
	}
	if len(f.disp.texts) != 0 {
		t.Error("Check() refreshed the display without a layer change")
	}
}

func TestWatcherReconcilesAfterChange(t *testing.T) {
	f := newFixture(t)
	w := NewWatcher(f.layers, f.lights, f.stat, f.disp)

	// Layer changes through a path the watcher does not see directly.
	f.layers.Cycle(layer.Forward)

	if !w.Check() {
		t.Fatal("Check() = false after layer change, want true")
	}

	want := f.lights.BaseColor(1)
	for i, c := range f.lights.Colors() {
		if c != want {
			t.Errorf("slot %d = %v, want %v", i, c, want)
		}
	}
	if !strings.Contains(f.disp.last(), "Layer: 1") {
		t.Errorf("display = %q, want it to show Layer: 1", f.disp.last())
	}
}

func TestWatcherSynchronizesWithinOneCheck(t *testing.T) {
	// However the layer changed, exactly the next Check reconciles; the one
	// after that sees nothing left to do.
	f := newFixture(t)
	w := NewWatcher(f.layers, f.lights, f.stat, f.disp)

	f.layers.Cycle(layer.Backward)
	f.layers.Cycle(layer.Backward)

	if !w.Check() {
		t.Error("first Check() after change = false, want true")
	}
	if w.Check() {
		t.Error("second Check() = true, want false; already reconciled")
	}
}

func TestWatcherInitializedFromCurrentLayer(t *testing.T) {
	// Construction snapshots the current layer: a watcher built after a
	// change does not treat the existing layer as new.
	f := newFixture(t)
	f.layers.Cycle(layer.Forward)

	w := NewWatcher(f.layers, f.lights, f.stat, f.disp)
	if w.Check() {
		t.Error("Check() = true immediately after construction, want false")
	}
}
