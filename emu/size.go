package emu

// Size is the bit width an instruction operates at. It determines the
// active mask applied to operands and results.
type Size int

// Operation sizes.
const (
	// Byte operates on the low 8 bits.
	Byte Size = iota
	// Word operates on the low 16 bits.
	Word
	// Long operates on the full 32 bits.
	Long
)

// Mask returns the active bit mask for the size.
func (s Size) Mask() uint32 {
	switch s {
	case Byte:
		return 0xFF
	case Word:
		return 0xFFFF
	default:
		return 0xFFFFFFFF
	}
}

// Bits returns the width of the size in bits.
func (s Size) Bits() uint32 {
	switch s {
	case Byte:
		return 8
	case Word:
		return 16
	default:
		return 32
	}
}

// SignBit returns the mask of the size's sign bit.
func (s Size) SignBit() uint32 {
	return 1 << (s.Bits() - 1)
}
