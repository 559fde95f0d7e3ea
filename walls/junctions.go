package walls

import "sort"

// sentinelX terminates the sorted junction and white lists; it is
// larger than any world coordinate.
const sentinelX = 20000

// Junction is a spot where two walls come within 3 pixels of each
// other and need special white patches to look correct.
type Junction struct {
	X, Y int
}

// Level is the per-level wall state built by InitWalls: walls chained
// by kind, the NNE white-only list, and the sorted junction and white
// piece tables the per-frame scans walk.
type Level struct {
	Lines      []*Line
	WorldWidth int

	// KindPtrs heads one linked list of walls per kind.
	KindPtrs [numKinds]*Line

	// FirstWhite heads the list of NNE walls needing white-only
	// treatment.
	FirstWhite *Line

	// Junctions is sorted by x and padded with sentinels.
	Junctions    []Junction
	NumJunctions int

	// Whites is sorted by (x, y) and padded with sentinels.
	Whites    []WhiteRec
	NumWhites int
}

// InitWalls prepares all wall data structures for one level: derives
// directions, organizes walls by kind, collects the NNE white list,
// finds and sorts junctions, and initializes the white pieces.
func InitWalls(lines []*Line, worldWidth int) *Level {
	lv := &Level{Lines: lines, WorldWidth: worldWidth}

	for _, line := range lines {
		line.NewType = deriveNewType(line.Type, line.UpDown)
	}

	// The pair scan in closeWhites assumes walls ordered by startx,
	// as the original's level data always was.
	sort.SliceStable(lv.Lines, func(i, j int) bool {
		return lv.Lines[i].StartX < lv.Lines[j].StartX
	})

	// Organize walls by kind into separate linked lists so the
	// renderer can process each kind on its own.
	for kind := KindNormal; kind < numKinds; kind++ {
		last := &lv.KindPtrs[kind]
		for _, line := range lv.Lines {
			if line.Kind == kind {
				*last = line
				last = &line.Next
			}
		}
		*last = nil
	}

	// NNE walls get white-only treatment in a separate list.
	last := &lv.FirstWhite
	for _, line := range lv.Lines {
		if line.NewType == NewNNE {
			*last = line
			last = &line.NextWh
		}
	}
	*last = nil

	lv.findJunctions()
	lv.initWhites()

	return lv
}

// findJunctions collects wall endpoints, deduplicating any two within
// a 3-pixel box, then sorts by x and pads with sentinels.
func (lv *Level) findJunctions() {
	lv.Junctions = lv.Junctions[:0]
	lv.NumJunctions = 0

	for _, line := range lv.Lines {
		for i := 0; i < 2; i++ {
			x, y := line.StartX, line.StartY
			if i == 1 {
				x, y = line.EndX, line.EndY
			}
			near := false
			for _, j := range lv.Junctions[:lv.NumJunctions] {
				if j.X <= x+3 && j.X >= x-3 &&
					j.Y <= y+3 && j.Y >= y-3 {
					near = true
					break
				}
			}
			if !near {
				lv.Junctions = append(lv.Junctions, Junction{X: x, Y: y})
				lv.NumJunctions++
			}
		}
	}

	sort.Slice(lv.Junctions[:lv.NumJunctions], func(a, b int) bool {
		return lv.Junctions[a].X < lv.Junctions[b].X
	})

	// Sentinels cover the scans' 16-record fast-forward overshoot.
	for i := 0; i < 18; i++ {
		lv.Junctions = append(lv.Junctions, Junction{X: sentinelX})
	}
}

// removeJunction slides the tail (sentinels included) over entry i.
func (lv *Level) removeJunction(i int) {
	copy(lv.Junctions[i:], lv.Junctions[i+1:])
	lv.Junctions = lv.Junctions[:len(lv.Junctions)-1]
	lv.NumJunctions--
}
