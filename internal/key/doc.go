// Package key provides the symbol and transition types for the macropad core.
//
// This package defines the fundamental input types:
//
//   - Symbol: The logical key or action a physical position resolves to
//     under the active layer (keypad digits, letters, function keys, media
//     controls, layer-cycle controls, or the explicit no-op)
//   - Transition: A single debounced press or release of one physical key,
//     as delivered by the matrix scanner
//
// Symbols carry a display label for the status line and, where one exists,
// a USB HID keyboard usage ID for host dispatch.
package key
