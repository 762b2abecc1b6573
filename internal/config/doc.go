// Package config loads and validates the gridpad configuration.
//
// The compiled-in defaults mirror the reference device: a 4x4 matrix, four
// layers with the cycle controls at positions 14 and 15, the reference base
// colors, and a brightness limit of 150. A TOML file can override any of
// it. Validation is fail-fast and happens entirely at load time: an
// incomplete keymap, an unknown symbol name, or a base-color table that
// does not cover every layer rejects the configuration before the scan
// loop ever sees it.
//
// A Watcher built on fsnotify reports file changes so a running process
// can re-load between scan cycles; a replacement config that fails
// validation is rejected and the running one stays in effect.
package config
