package key

// USB HID keyboard usage IDs (usage page 0x07) for the symbols that have
// one. Media controls live on the consumer page and layer controls never
// leave the device, so neither carries a keyboard usage.
var hidUsage = map[Symbol]byte{
	SymA:   0x04,
	SymB:   0x05,
	SymC:   0x06,
	SymD:   0x07,
	SymE:   0x08,
	SymF:   0x09,
	SymG:   0x0A,
	SymH:   0x0B,
	SymI:   0x0C,
	SymJ:   0x0D,
	SymK:   0x0E,
	SymL:   0x0F,
	SymM:   0x10,
	SymN:   0x11,
	SymF1:  0x3A,
	SymF2:  0x3B,
	SymF3:  0x3C,
	SymF4:  0x3D,
	SymF5:  0x3E,
	SymF6:  0x3F,
	SymF7:  0x40,
	SymF8:  0x41,
	SymF9:  0x42,
	SymF10: 0x43,
	SymKP1: 0x59,
	SymKP2: 0x5A,
	SymKP3: 0x5B,
	SymKP4: 0x5C,
	SymKP5: 0x5D,
	SymKP6: 0x5E,
	SymKP7: 0x5F,
	SymKP8: 0x60,
	SymKP9: 0x61,
	SymKP0: 0x62,
}

// HIDCode returns the USB HID keyboard usage ID for the symbol. The second
// return is false for symbols with no keyboard usage (no-op, media, layer
// controls); host dispatch decides what to do with those.
func (s Symbol) HIDCode() (byte, bool) {
	code, ok := hidUsage[s]
	return code, ok
}
