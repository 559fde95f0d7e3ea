package walls

import (
	"sort"

	"github.com/planetfall/continuum/emu"
	"github.com/planetfall/continuum/sprites"
)

// WhiteRec is a single white shadow piece to draw: a screen position,
// a height, and a pointer to one 16-bit pattern row per line. owned
// marks patterns allocated during merging, which may be edited in
// place; shared table patterns may not.
type WhiteRec struct {
	X, Y  int
	HasJ  bool
	Ht    int
	Data  []uint16
	owned bool
}

// whitePicts maps each direction to its start and end white pieces.
var whitePicts = map[NewType][2][]uint16{
	NewS:   {sprites.GenericTop, sprites.SBot},
	NewSSE: {sprites.SSETop, sprites.SSEBot},
	NewSE:  {sprites.SETop, sprites.SEBot},
	NewESE: {nil, sprites.ESERight},
	NewE:   {sprites.ELeft, sprites.GenericTop},
	NewENE: {sprites.ENELeft, sprites.GenericTop},
	NewNE:  {sprites.NEBot, sprites.GenericTop},
	NewNNE: {sprites.NNEBot, sprites.GenericTop},
}

// Default black-section trims per direction (indexed by NewType).
// h1 is where the black section starts, h2 the end offset.
var (
	simpleH1 = [9]int{0, 6, 6, 6, 12, 16, 0, 1, 0}
	simpleH2 = [9]int{0, 0, 0, 0, -1, 0, -11, -5, -5}
)

func (lv *Level) addWhite(x, y, ht int, data []uint16) {
	lv.Whites = append(lv.Whites, WhiteRec{X: x, Y: y, Ht: ht, Data: data})
	lv.NumWhites++
}

// replaceWhite2 replaces the first white at (targetX, targetY) shorter
// than ht, moving it to (x, y). Nothing happens when no such white
// exists.
func (lv *Level) replaceWhite2(targetX, targetY, x, y, ht int, data []uint16) {
	for i := range lv.Whites[:lv.NumWhites] {
		wh := &lv.Whites[i]
		if wh.Y == targetY && wh.X == targetX && wh.Ht < ht {
			wh.X = x
			wh.Y = y
			wh.Ht = ht
			wh.Data = data
			wh.owned = false
			return
		}
	}
}

func (lv *Level) removeWhite(i int) {
	copy(lv.Whites[i:], lv.Whites[i+1:])
	lv.Whites = lv.Whites[:len(lv.Whites)-1]
	lv.NumWhites--
}

// initWhites builds the white shadow pieces: the standard endpoint
// whites, the junction patches, a (x, y) sort, a merge of coincident
// pieces, and the junction crosshatches.
func (lv *Level) initWhites() {
	lv.Whites = lv.Whites[:0]
	lv.NumWhites = 0

	lv.normWhites()
	lv.closeWhites()

	sort.SliceStable(lv.Whites[:lv.NumWhites], func(a, b int) bool {
		if lv.Whites[a].X != lv.Whites[b].X {
			return lv.Whites[a].X < lv.Whites[b].X
		}
		return lv.Whites[a].Y < lv.Whites[b].Y
	})

	for i := 0; i < 18; i++ {
		lv.Whites = append(lv.Whites, WhiteRec{X: sentinelX})
	}

	// Coincident 6-line whites merge by ANDing their patterns, white
	// being the zero bits.
	for i := 0; lv.Whites[i].X < sentinelX; i++ {
		for lv.Whites[i].X == lv.Whites[i+1].X &&
			lv.Whites[i].Y == lv.Whites[i+1].Y &&
			lv.Whites[i].Ht == 6 && lv.Whites[i+1].Ht == 6 {
			merged := make([]uint16, 6)
			for k := 0; k < 6; k++ {
				merged[k] = lv.Whites[i].Data[k] & lv.Whites[i+1].Data[k]
			}
			lv.Whites[i].Data = merged
			lv.Whites[i].owned = true
			lv.removeWhite(i + 1)
		}
	}

	lv.whiteHashMerge()
}

// normWhites adds the standard endpoint whites from the picture table
// plus the glitch-fix pieces for the problematic directions.
func (lv *Level) normWhites() {
	for _, line := range lv.Lines {
		picts := whitePicts[line.NewType]
		if picts[0] != nil {
			lv.addWhite(line.StartX, line.StartY, 6, picts[0])
		}
		if picts[1] != nil {
			lv.addWhite(line.EndX, line.EndY, 6, picts[1])
		}

		switch line.NewType {
		case NewNE:
			lv.addWhite(line.EndX-4, line.EndY+2, 4, sprites.NEGlitch)
		case NewENE:
			lv.addWhite(line.StartX+16, line.StartY, 3, sprites.ENEGlitch1)
			lv.addWhite(line.EndX-10, line.EndY+1, 5, sprites.ENEGlitch2)
		case NewESE:
			lv.addWhite(line.EndX-7, line.EndY-2, 4, sprites.ESEGlitch)
		}
	}
}

// closeWhites assigns the default black-section trims and processes
// every pair of wall endpoints within a 6x6 box through oneClose.
func (lv *Level) closeWhites() {
	npatch := sprites.NPatch()

	for _, line := range lv.Lines {
		line.H1 = simpleH1[line.NewType]
		line.H2 = line.Length + simpleH2[line.NewType]
	}

	first := 0
	for _, line := range lv.Lines {
		for first < len(lv.Lines) && lv.Lines[first].EndX < line.StartX-3 {
			first++
		}

		for i := 0; i < 2; i++ {
			x1, y1 := line.StartX, line.StartY
			if i == 1 {
				x1, y1 = line.EndX, line.EndY
			}

			for k := first; k < len(lv.Lines) && lv.Lines[k].StartX < x1+3; k++ {
				line2 := lv.Lines[k]
				for j := 0; j < 2; j++ {
					x2, y2 := line2.StartX-3, line2.StartY-3
					if j == 1 {
						x2, y2 = line2.EndX-3, line2.EndY-3
					}
					if x1 > x2 && y1 > y2 && x1 < x2+6 && y1 < y2+6 {
						lv.oneClose(line, line2, i, j, npatch)
					}
				}
			}
		}
	}
}

// oneClose patches the junction of two walls whose endpoints n and m
// (0 = start, 1 = end) are close. Directions are the ninefold types
// unfolded onto a 16-point compass; the patch sizes per combination
// are the original's hand-tuned values.
func (lv *Level) oneClose(line, line2 *Line, n, m int, npatch []uint16) {
	dir1 := 9 - int(line.NewType)
	if n == 1 {
		dir1 = (dir1 + 8) & 15
	}
	dir2 := 9 - int(line2.NewType)
	if m == 1 {
		dir2 = (dir2 + 8) & 15
	}

	// Walls running the same way need no patch.
	if dir1 == dir2 {
		return
	}

	switch dir1 {
	case 0:
		var i int
		switch dir2 {
		case 15, 1:
			i = 21
		case 2:
			i = 10
		case 3, 14:
			i = 6
		default:
			return
		}
		j := line.H2
		if line.Length-i > j {
			return
		}
		if j < line.Length {
			lv.replaceWhite2(line.StartX, line.StartY+j,
				line.EndX, line.EndY-i, i, npatch)
		} else {
			lv.addWhite(line.EndX, line.EndY-i, i, npatch)
		}
		line.H2 = line.Length - i

	case 2:
		var i int
		switch dir2 {
		case 0:
			i = 3
		case 1:
			i = 6
		case 3:
			i = 4
		case 14:
			i = 1
		case 15:
			i = 2
		default:
			return
		}
		for j := 0; j < 4*i; j += 4 {
			if line.H1 < 5+j {
				lv.addWhite(line.StartX+3+j, line.StartY-4-j,
					4, sprites.NEPatch)
			}
		}
		i--
		if j := 5 + 4*i; line.H1 < j {
			line.H1 = j
		}
	}
}

// whiteHashMerge overlays the crosshatch pattern on every isolated
// 6-line white that sits exactly on a junction, marks it, and removes
// the junction from the list.
func (lv *Level) whiteHashMerge() {
	backgr1, backgr2 := sprites.Background()
	ctx := emu.NewContext()

	j := 0
	for i := 0; lv.Whites[i].X < lv.WorldWidth-8; i++ {
		wh := &lv.Whites[i]
		if wh.Ht != 6 || !lv.noCloseWh(i) || wh.X <= 8 {
			continue
		}

		for j > 0 && lv.Junctions[j].X >= wh.X {
			j--
		}
		for lv.Junctions[j].X <= wh.X && lv.Junctions[j].Y != wh.Y {
			j++
		}
		if lv.Junctions[j].X != wh.X || lv.Junctions[j].Y != wh.Y {
			continue
		}

		back := uint32(backgr1)
		if (wh.X+wh.Y)&1 == 1 {
			back = uint32(backgr2)
		}

		data := wh.Data
		if !wh.owned {
			data = make([]uint16, 6)
			copy(data, wh.Data)
		}
		for k := 0; k < 6; k++ {
			hash := sprites.HashFigure[k]
			data[k] = (uint16(back) & (^wh.Data[k] | hash)) ^ hash
			back = ctx.Ops.RolW(back, 1) // rol.w #1, back
		}
		wh.Data = data
		wh.owned = true
		wh.HasJ = true

		lv.removeJunction(j)
	}
}

// noCloseWh reports whether no other white sits within a 3-pixel box
// of white i. The whites list is sorted by x with trailing sentinels.
func (lv *Level) noCloseWh(i int) bool {
	w1 := &lv.Whites[i]
	for k := i - 1; k >= 0 && lv.Whites[k].X > w1.X-3; k-- {
		if lv.Whites[k].Y < w1.Y+3 && lv.Whites[k].Y > w1.Y-3 {
			return false
		}
	}
	for k := i + 1; lv.Whites[k].X < w1.X+3; k++ {
		if lv.Whites[k].Y < w1.Y+3 && lv.Whites[k].Y > w1.Y-3 {
			return false
		}
	}
	return true
}
