// Package illum owns the per-key illumination state.
//
// The state is a flat buffer of one RGBW value per physical key, plus two
// coloring rules: the layer base color applied to every key when idle, and
// the pressed override applied to a single key while it is held. Every
// mutation emits the full buffer to the illumination driver.
//
// The release operation takes the layer active at release time, not at
// press time: the layer may change while a key is held, and the slot must
// revert to the color of the layer that is active when the key comes up.
package illum
