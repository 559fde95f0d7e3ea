package walls

import (
	"github.com/planetfall/continuum/emu"
	"github.com/planetfall/continuum/screen"
	"github.com/planetfall/continuum/sprites"
)

// Horizontal clip masks for the 32-bit blit window. A piece within 16
// pixels of a screen edge keeps only the visible half of the window.
const (
	leftClip   = 0x0000FFFF
	rightClip  = 0xFFFF0000
	centerClip = 0xFFFFFFFF
)

// WhiteWallPiece draws one white shadow piece at view coordinates
// (x, y): each pattern row is aligned into a 32-bit window, the
// clipped-out half is forced to ones, and the window is ANDed into the
// screen so the pattern's zero bits clear pixels. Mutates bm in place.
func WhiteWallPiece(bm *screen.Bitmap, x, y int, def []uint16, height int) {
	if y < 0 {
		height += y
		if height <= 0 {
			return
		}
		def = def[-y:]
		y = 0
	} else if y+height > screen.ViewHeight {
		if y >= screen.ViewHeight {
			return
		}
		height = screen.ViewHeight - y
	}

	clip := ^uint32(centerClip)
	if x < 0 {
		if x <= -16 {
			return
		}
		clip = ^uint32(leftClip)
	} else if x >= screen.ScrWidth-16 {
		if x >= screen.ScrWidth {
			return
		}
		clip = ^uint32(rightClip)
	}

	y += screen.StatusBarHeight

	ctx := emu.NewContext(emu.WithData(2, uint32(height)))
	o := ctx.Ops

	addr := bm.WordAddr(x, y)
	// and.w #15, x / neg.w x / add.w #16, x
	shift := o.AndiW(uint32(x), 15)
	shift = o.NegW(shift)
	shift = o.AddqW(shift, 8)
	shift = o.AddqW(shift, 8)
	d1 := uint32(bm.RowBytes)

	i := 0
	for o.Dbra(2) {
		d0 := o.MoveL(0, 0xFFFFFFFF) // moveq #-1, D0
		d0 = o.MoveW(d0, uint32(def[i]))
		i++
		d0 = o.RorL(d0, 32-shift) // rol.l x, D0
		d0 |= clip
		o.AndL(bm.Data, addr, d0)
		addr = int(o.AddaW(uint32(addr), d1))
	}
}

// EorWallPiece draws a junction white by XORing the aligned pattern
// into the screen, producing the crosshatch shimmer the original used
// at wall intersections. Mutates bm in place.
func EorWallPiece(bm *screen.Bitmap, x, y int, def []uint16, height int) {
	if y < 0 {
		height += y
		if height <= 0 {
			return
		}
		def = def[-y:]
		y = 0
	} else if y+height > screen.ViewHeight {
		if y >= screen.ViewHeight {
			return
		}
		height = screen.ViewHeight - y
	}

	clip := uint32(centerClip)
	if x < 0 {
		if x <= -16 {
			return
		}
		clip = leftClip
	} else if x >= screen.ScrWidth-16 {
		if x >= screen.ScrWidth {
			return
		}
		clip = rightClip
	}

	y += screen.StatusBarHeight

	ctx := emu.NewContext(emu.WithData(2, uint32(height)))
	o := ctx.Ops

	addr := bm.WordAddr(x, y)
	shift := o.AndiW(uint32(x), 15)
	shift = o.NegW(shift)
	shift = o.AddqW(shift, 8)
	shift = o.AddqW(shift, 8)
	d1 := uint32(bm.RowBytes)

	i := 0
	for o.Dbra(2) {
		d0 := o.MoveL(0, 0) // moveq #0, D0
		d0 = o.MoveW(d0, uint32(def[i]))
		i++
		d0 = o.RorL(d0, 32-shift)
		d0 &= clip
		o.EorL(bm.Data, addr, d0)
		addr = int(o.AddaW(uint32(addr), d1))
	}
}

// DrawHash draws the 6-row junction crosshatch at view coordinates
// (x, y), ORing the figure into the screen with edge clipping.
func DrawHash(bm *screen.Bitmap, x, y int) {
	data := sprites.HashFigure[:]
	height := 6

	if y < 0 {
		height += y
		if height <= 0 {
			return
		}
		data = data[-y:]
		y = 0
	} else if y >= screen.ViewHeight-6 {
		height = screen.ViewHeight - y
	}

	clip := uint32(centerClip)
	if x < 0 {
		clip = leftClip
	} else if x >= screen.ScrWidth-9 {
		clip = rightClip
	}

	y += screen.StatusBarHeight

	height--
	if height < 0 {
		return
	}

	ctx := emu.NewContext(emu.WithData(2, uint32(height)))
	o := ctx.Ops

	addr := bm.WordAddr(x, y)
	shift := o.AndiW(uint32(x), 15)
	shift = o.NegW(shift)
	shift = o.AddqW(shift, 8)
	shift = o.AddqW(shift, 8)

	i := 0
	for {
		d0 := o.MoveW(0, uint32(data[i]))
		i++
		d0 = o.RorL(d0, 32-shift)
		d0 &= clip
		o.OrL(bm.Data, addr, d0)
		addr = int(o.AddaW(uint32(addr), 64))
		if !o.Dbra(2) {
			break
		}
	}
}

// whiteScanPC replays the labels of the original white-drawing scan.
type whiteScanPC int

const (
	wsFast whiteScanPC = iota // 16-record fast-forward
	wsFind                    // linear search for the first visible white
	wsEnterF
	wsLoop
	wsEnter
	wsLeave
)

// FastWhites draws every visible white piece: regular whites through
// WhiteWallPiece, junction whites through EorWallPiece. The scan over
// the sorted, sentinel-terminated white list is replayed label for
// label, including the 16-record fast-forward and the second pass for
// world wrap. Mutates bm in place.
func FastWhites(bm *screen.Bitmap, lv *Level, screenX, screenY, screenB, screenR int) {
	top := screenY
	left := screenX - 15
	bot := screenB
	right := screenR

	for pass := 0; pass < 2; pass++ {
		wh := 0
		pc := wsFast

	dispatch:
		for {
			switch pc {
			case wsFast:
				wh += 16
				if left > lv.Whites[wh].X {
					continue
				}
				wh -= 16
				pc = wsEnterF

			case wsFind:
				wh++
				pc = wsEnterF

			case wsEnterF:
				if left > lv.Whites[wh].X {
					pc = wsFind
					continue
				}
				left += 15
				pc = wsEnter

			case wsLoop:
				wh++
				pc = wsEnter

			case wsEnter:
				d0 := lv.Whites[wh].X
				if right <= d0 {
					pc = wsLeave
					continue
				}
				d1 := lv.Whites[wh].Y
				if bot < d1 {
					pc = wsLoop
					continue
				}
				d1 -= top
				d2 := lv.Whites[wh].Ht
				if d1 <= -d2 {
					pc = wsLoop
					continue
				}
				d0 -= left
				if lv.Whites[wh].HasJ {
					EorWallPiece(bm, d0, d1, lv.Whites[wh].Data, d2)
				} else {
					WhiteWallPiece(bm, d0, d1, lv.Whites[wh].Data, d2)
				}
				pc = wsLoop

			case wsLeave:
				left -= 15
				break dispatch
			}
		}

		left -= lv.WorldWidth
		right -= lv.WorldWidth
	}
}

// FastHashes draws the hash mark at every visible junction. Fully
// visible hashes take the original's unrolled inline path; anything
// near an edge goes through DrawHash for clipping. Mutates bm in place.
func FastHashes(bm *screen.Bitmap, lv *Level, screenX, screenY, screenB, screenR int) {
	top := screenY - 5
	left := screenX - 8
	bot := screenB
	right := screenR

	for pass := 0; pass < 2; pass++ {
		j := 16
		for left > lv.Junctions[j].X {
			j += 16
		}
		j -= 16
		for left > lv.Junctions[j].X {
			j++
		}
		left += 8

		for right > lv.Junctions[j].X {
			d2 := lv.Junctions[j].Y
			if d2 < top || d2 >= bot {
				j++
				continue
			}
			d1 := lv.Junctions[j].X - left
			d2 -= screenY

			if d2 < 0 || d2 >= screen.ViewHeight-5 ||
				d1 < 0 || d1 >= screen.ScrWidth-9 {
				DrawHash(bm, d1, d2)
				j++
				continue
			}

			quickHash(bm, d1, d2)
			j++
		}

		left -= 8
		left -= lv.WorldWidth
		right -= lv.WorldWidth
	}
}

// quickHash is the unrolled hash blit for a fully visible junction:
// the figure is rebuilt row by row from a single seed bit with shift
// and OR steps instead of a pattern table walk.
func quickHash(bm *screen.Bitmap, x, y int) {
	ctx := emu.NewContext()
	o := ctx.Ops

	y += screen.StatusBarHeight
	addr := bm.WordAddr(x, y)
	n := uint32(x & 15)

	d0 := o.MoveL(0, 0x80000000)
	d0 = o.LsrL(d0, n)

	o.OrL(bm.Data, addr, d0)
	d1 := o.MoveL(0, d0)
	d1 = o.LsrL(d1, 1)
	d0 |= d1
	d0 = o.LsrL(d0, 1)
	o.OrL(bm.Data, addr+64*1, d0)
	d0 = o.LsrL(d0, 2)
	o.OrL(bm.Data, addr+64*2, d0)
	d0 = o.LsrL(d0, 2)
	o.OrL(bm.Data, addr+64*3, d0)
	d0 = o.LsrL(d0, 2)
	o.OrL(bm.Data, addr+64*4, d0)
	d1 = o.MoveL(0, d0)
	d1 = o.LsrL(d1, 2)
	d0 = o.LsrL(d0, 1)
	d0 &= d1
	o.OrL(bm.Data, addr+64*5, d0)
}

// BlackWallPiece draws the black top edge of one wall into the view,
// stepping pixel by pixel along the wall's direction between the H1
// and H2 trims the junction pass computed. Mutates bm in place.
func BlackWallPiece(bm *screen.Bitmap, line *Line, screenX, screenY int) {
	n := line.H2 - line.H1
	if n <= 0 {
		return
	}

	ctx := emu.NewContext(emu.WithData(2, uint32(n-1)))
	o := ctx.Ops

	for i := line.H1; ; i++ {
		x, y := stepAlong(line, i)
		x -= screenX
		y = y - screenY + screen.StatusBarHeight
		if x >= 0 && x < bm.Width &&
			y >= screen.StatusBarHeight && y < bm.Height {
			addr := y*bm.RowBytes + x>>3
			o.BsetB(bm.Data, addr, uint32(^x&7))
		}
		if !o.Dbra(2) {
			break
		}
	}
}

// stepAlong returns the world position i steps along the wall from its
// start, following the wall's dominant axis.
func stepAlong(line *Line, i int) (int, int) {
	switch line.NewType {
	case NewS:
		return line.StartX, line.StartY + i
	case NewE:
		return line.StartX + i, line.StartY
	case NewSE:
		return line.StartX + i, line.StartY + i
	case NewNE:
		return line.StartX + i, line.StartY - i
	case NewESE:
		return line.StartX + i, line.StartY + i/2
	case NewENE:
		return line.StartX + i, line.StartY - i/2
	case NewSSE:
		return line.StartX + i/2, line.StartY + i
	case NewNNE:
		return line.StartX + i/2, line.StartY - i
	}
	return line.StartX, line.StartY
}
