// Package sim is a terminal stand-in for the macropad hardware.
//
// It implements all three collaborator contracts the core depends on: the
// matrix scanner (terminal keys map to the 16 positions), the illumination
// driver (the 4x4 grid is drawn with each slot's color), and the display
// driver (the status text is drawn beside the grid).
//
// Keys 1234 / qwer / asdf / zxcv map row-major to positions 0..15. A
// lowercase key taps its position: press on this scan cycle, release on
// the next. The uppercase key latches the position held until the same
// uppercase key releases it, which makes held-key behavior — including
// cycling layers while a key is down — reachable from a keyboard that has
// no key-up events.
package sim
