package shots

import (
	"github.com/planetfall/continuum/emu"
	"github.com/planetfall/continuum/screen"
	"github.com/planetfall/continuum/sprites"
)

// shotPC replays the labels of the original shot sprite blit.
type shotPC int

const (
	spPick shotPC = iota
	spEmpty
	spFilled
	spBlit
	spLeave
)

// DrawShot blits the shot sprite at view coordinates (x, y), ORing the
// 3x3 mask into the screen. The original's sprite pick branches over
// the filled variant with an always-taken bra, so only the empty
// sprite is ever drawn; that behavior is kept as-is for parity,
// filled-path and all.
func DrawShot(bm *screen.Bitmap, x, y int) {
	ctx := emu.NewContext()
	o := ctx.Ops

	var def []uint16
	pc := spPick

dispatch:
	for {
		switch pc {
		case spPick:
			// bra.s @empty -- always taken, the filled path below is
			// dead in the original too.
			if o.Bra() {
				pc = spEmpty
				continue
			}
			pc = spFilled

		case spEmpty:
			def = sprites.ShotEmpty
			pc = spBlit

		case spFilled:
			def = sprites.ShotFilled
			pc = spBlit

		case spBlit:
			if y < -2 || y >= screen.ViewHeight {
				pc = spLeave
				continue
			}
			yy := y + screen.StatusBarHeight
			addr := bm.WordAddr(x, yy)
			shift := o.AndiW(uint32(x), 15)

			ctx.SetD(2, 2) // three rows
			i := 0
			for {
				d0 := o.MoveW(0, uint32(def[i]))
				i++
				d0 = o.Swap(d0)
				d0 = o.LsrL(d0, shift)
				o.OrL(bm.Data, addr, d0)
				addr = int(o.AddaW(uint32(addr), uint32(bm.RowBytes)))
				if !o.Dbra(2) {
					break
				}
			}
			pc = spLeave

		case spLeave:
			break dispatch
		}
	}
}

// ShipCollision reports whether the shot hits the ship. The original
// never implemented this check; the stub is kept empty for parity and
// always reports no hit.
func ShipCollision(shot *Shot, shipX, shipY int) bool {
	return false
}

// BunkerCollision reports whether the shot hits a bunker. The original
// never implemented this check; the stub is kept empty for parity and
// always reports no hit.
func BunkerCollision(shot *Shot, bunkerX, bunkerY int) bool {
	return false
}
