// Package status owns the human-readable status line state.
//
// The renderer holds the two facts a status display needs — the active
// layer index and the label of the most recently pressed key — and formats
// them on demand. The formatted string is never stored; it is recomputed
// each time it is needed.
package status

import "fmt"

// DefaultDeviceName is the first line of the reference device's display.
const DefaultDeviceName = "4x4 Macropad"

// noKeyLabel is shown before any key has been pressed.
const noKeyLabel = "None"

// Display renders a text string; the display collaborator. No error
// channel is modeled.
type Display interface {
	ShowText(string)
}

// Renderer formats the status text from the recorded layer and key label.
type Renderer struct {
	deviceName string
	layer      int
	keyLabel   string
}

// New creates a renderer showing layer 0 and no key yet. An empty device
// name falls back to the default.
func New(deviceName string) *Renderer {
	if deviceName == "" {
		deviceName = DefaultDeviceName
	}
	return &Renderer{
		deviceName: deviceName,
		keyLabel:   noKeyLabel,
	}
}

// NoteKey records the label of the most recently pressed key.
func (r *Renderer) NoteKey(label string) {
	r.keyLabel = label
}

// NoteLayer records the layer index to display.
func (r *Renderer) NoteLayer(idx int) {
	r.layer = idx
}

// Render returns the fixed three-line layout: device name, layer, last key.
// Pure function of the recorded state; safe to call arbitrarily often.
func (r *Renderer) Render() string {
	return fmt.Sprintf("%s\nLayer: %d\nKey: %s", r.deviceName, r.layer, r.keyLabel)
}
