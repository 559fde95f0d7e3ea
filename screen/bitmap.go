// Package screen provides the monochrome framebuffer the transcribed
// drawing routines render into.
package screen

// Original screen geometry. The playfield view sits below a status bar
// on a 512-pixel-wide screen with a 64-byte row stride.
const (
	// ScrWidth is the screen width in pixels.
	ScrWidth = 512

	// ViewHeight is the playfield height in pixels, excluding the
	// status bar.
	ViewHeight = 318

	// StatusBarHeight is the height of the status bar above the view.
	StatusBarHeight = 24

	// RowBytes is the byte stride of one screen row.
	RowBytes = ScrWidth / 8
)

// Bitmap is a 1-bit-per-pixel, row-major framebuffer addressed in
// bytes with a fixed row stride. Bit 7 of each byte is the leftmost
// pixel. Routines that draw into a Bitmap mutate it in place; callers
// that want referential transparency clone first.
type Bitmap struct {
	Width    int
	Height   int
	RowBytes int
	Data     []byte
}

// NewBitmap creates a zeroed bitmap. The row stride is the width
// rounded up to whole bytes.
func NewBitmap(width, height int) *Bitmap {
	rowBytes := (width + 7) / 8
	return &Bitmap{
		Width:    width,
		Height:   height,
		RowBytes: rowBytes,
		Data:     make([]byte, rowBytes*height),
	}
}

// NewScreen creates a bitmap with the original screen geometry:
// status bar rows followed by the playfield view.
func NewScreen() *Bitmap {
	return NewBitmap(ScrWidth, StatusBarHeight+ViewHeight)
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	data := make([]byte, len(b.Data))
	copy(data, b.Data)
	return &Bitmap{
		Width:    b.Width,
		Height:   b.Height,
		RowBytes: b.RowBytes,
		Data:     data,
	}
}

// Addr returns the byte address of pixel (x, y) and whether it lies
// inside the bitmap.
func (b *Bitmap) Addr(x, y int) (int, bool) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0, false
	}
	return y*b.RowBytes + x/8, true
}

// WordAddr returns the word-aligned byte address of pixel (x, y), the
// way the original's FIND_WADDRESS macro computed a screen pointer.
// x may be slightly negative for clipped pieces; the arithmetic shift
// keeps the address on the preceding word like the original's pointer
// math did.
func (b *Bitmap) WordAddr(x, y int) int {
	return y*b.RowBytes + (x>>4)<<1
}

// Pixel reports whether pixel (x, y) is set. Out-of-range coordinates
// read as clear.
func (b *Bitmap) Pixel(x, y int) bool {
	addr, ok := b.Addr(x, y)
	if !ok {
		return false
	}
	return b.Data[addr]&(0x80>>(x&7)) != 0
}

// SetPixel sets pixel (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) SetPixel(x, y int) {
	addr, ok := b.Addr(x, y)
	if !ok {
		return
	}
	b.Data[addr] |= 0x80 >> (x & 7)
}

// ClearPixel clears pixel (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) ClearPixel(x, y int) {
	addr, ok := b.Addr(x, y)
	if !ok {
		return
	}
	b.Data[addr] &^= 0x80 >> (x & 7)
}

// FillBackground paints the playfield rows with the alternating gray
// dither the original uses, one 16-bit pattern per row parity. Rows
// above top are left alone (the status bar draws itself).
func (b *Bitmap) FillBackground(top int, pat1, pat2 uint16) {
	for y := top; y < b.Height; y++ {
		pat := pat1
		if y&1 == 1 {
			pat = pat2
		}
		for x := 0; x+1 < b.RowBytes; x += 2 {
			b.Data[y*b.RowBytes+x] = byte(pat >> 8)
			b.Data[y*b.RowBytes+x+1] = byte(pat)
		}
	}
}
