// Package keymap provides the immutable layer/position symbol table.
//
// A Table maps every (layer, position) pair to a symbol. Completeness is
// validated once at construction: every layer defines every position, using
// the explicit no-op symbol for unused keys, never a missing entry. The
// lookup on the scan hot path performs no defensive checks.
package keymap
