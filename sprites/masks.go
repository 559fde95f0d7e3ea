// Package sprites supplies the pixel masks the transcribed routines
// consume as instruction operands: background dither patterns, the
// junction hash figure, white-piece undersides, glitch patches, and
// the shot sprite masks. All values are the original's bit patterns.
package sprites

// Background returns the two 16-bit gray dither patterns, one per row
// parity.
func Background() (uint16, uint16) {
	return 0xAAAA, 0x5555
}

// HashFigure is the 6-row crosshatch drawn at wall junctions.
var HashFigure = [6]uint16{0x8000, 0x6000, 0x1800, 0x0600, 0x0180, 0x0040}

// Glitch patches for wall types whose endpoints leave visual artifacts.
var (
	NEGlitch   = []uint16{0xEFFF, 0xCFFF, 0x8FFF, 0x0FFF}
	ENEGlitch1 = []uint16{0x07FF, 0x1FFF, 0x7FFF}
	ENEGlitch2 = []uint16{0xFF3F, 0xFC3F, 0xF03F, 0xC03F, 0x003F}
	ESEGlitch  = []uint16{0x3FFF, 0xCFFF, 0xF3FF, 0xFDFF}
)

// White piece patterns: the 6-row "underside" shadows drawn beneath
// wall endpoints. Zero bits are the white pixels; the AND blit clears
// them on screen.
var (
	GenericTop = []uint16{0xFFFF, 0x3FFF, 0x0FFF, 0x03FF, 0x00FF, 0x007F}
	NNEBot     = []uint16{0x800F, 0xC01F, 0xF01F, 0xFC3F, 0xFF3F, 0xFFFF}
	NEBot      = []uint16{0x8001, 0xC003, 0xF007, 0xFC0F, 0xFF1F, 0xFFFF}
	ENELeft    = []uint16{0x8000, 0xC000, 0xF000, 0xFC01, 0xFF07, 0xFFDF}
	ELeft      = []uint16{0xFFFF, 0xFFFF, 0xF000, 0xFC00, 0xFF00, 0xFF80}
	ESERight   = []uint16{0xFFFF, 0x3FFF, 0x8FFF, 0xE3FF, 0xF8FF, 0xFE7F}
	SETop      = []uint16{0xFFFF, 0xFFFF, 0xEFFF, 0xF3FF, 0xF8FF, 0xFC3F}
	SEBot      = []uint16{0x87FF, 0xC3FF, 0xF1FF, 0xFCFF, 0xFF7F, 0xFFFF}
	SSETop     = []uint16{0xFFFF, 0xBFFF, 0xCFFF, 0xC3FF, 0xE0FF, 0xE03F}
	SSEBot     = []uint16{0x80FF, 0xC07F, 0xF07F, 0xFC3F, 0xFF3F, 0xFFFF}
	SBot       = []uint16{0x803F, 0xC03F, 0xF03F, 0xFC3F, 0xFF3F, 0xFFFF}
)

// Junction patch patterns for the different intersection shapes.
var (
	NEPatch  = []uint16{0xE000, 0xC001, 0x8003, 0x0007}
	ENEPatch = []uint16{0xFC00, 0xF003, 0xC00F, 0x003F}
	EPatch   = []uint16{0x0003, 0x0003, 0x0003, 0x0003}
	SEPatch  = []uint16{
		0x07FF, 0x83FF, 0xC1FF, 0xE0FF, 0xF07F, 0xF83F, 0xFC1F,
		0xFE0F, 0xFF07, 0xFF83, 0xFFC1,
	}
	SSEPatch = []uint16{
		0x00FF, 0x00FF, 0x807F, 0x807F, 0xC03F, 0xC03F,
		0xE01F, 0xE01F, 0xF00F, 0xF00F, 0xF807, 0xF807,
		0xFC03, 0xFC03, 0xFE01, 0xFE01, 0xFF00, 0xFF00,
	}
)

// NPatch returns the generic 22-row junction patch.
func NPatch() []uint16 {
	p := make([]uint16, 22)
	for i := range p {
		p[i] = 0x003F
	}
	return p
}

// Shot sprite masks, 3x3, one row per word with the pixels in the high
// bits. The filled variant exists in the data but is never drawn; the
// sprite picker's always-taken branch selects the empty one (kept that
// way on purpose for parity with the original).
var (
	ShotEmpty  = []uint16{0xE000, 0xA000, 0xE000}
	ShotFilled = []uint16{0xE000, 0xE000, 0xE000}
)
