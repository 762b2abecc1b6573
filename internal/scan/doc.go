// Package scan implements the per-cycle processing core of the macropad.
//
// One scan cycle runs a fixed, ordered pipeline: each key transition from
// the matrix scanner goes through the Processor, which resolves it against
// the keymap under the active layer and updates illumination and status;
// then the Watcher reconciles both visual subsystems against the layer
// state, catching layer changes from any path; finally the status text is
// handed to the display. The stages are fixed and compile-time wired —
// there is no runtime handler registration.
//
// Everything here runs single-threaded inside the scheduler's poll loop.
// Shared state is mutated only from within a cycle, so no locking is used.
package scan
