// Package walls holds the wall descriptors, the per-level junction and
// white-piece preparation, and the transcribed drawing routines that
// replay the original 68000 listings against the framebuffer.
package walls

// LineType is the coarse wall orientation as stored in planet data:
// vertical, one of three diagonal slopes, or horizontal.
type LineType int

// Wall orientations.
const (
	LineN   LineType = iota + 1 // vertical
	LineNNE                     // 2 rows per column
	LineNE                      // 1 row per column
	LineENE                     // 1 row per 2 columns
	LineE                       // horizontal
)

// LineKind controls collision behavior: a normal wall stops a shot, a
// bounce wall reflects it, a ghost wall is ignored entirely.
type LineKind int

// Wall kinds.
const (
	KindNormal LineKind = iota
	KindBounce
	KindGhost

	numKinds
)

// Up/down orientation of a non-horizontal wall. Down means y grows
// from start to end.
const (
	UpDownDown = 1
	UpDownUp   = -1
)

// NewType is the ninefold compass direction derived from LineType and
// the up/down flag; it indexes the white-piece and trim tables.
type NewType int

// Ninefold directions. The zero value marks an unused slot.
const (
	NewS NewType = iota + 1
	NewSSE
	NewSE
	NewESE
	NewE
	NewENE
	NewNE
	NewNNE
)

// Line is one wall descriptor. Geometry and kind come from planet
// data; NewType, H1 and H2 are derived during level preparation. The
// core never mutates a Line after InitWalls.
type Line struct {
	StartX, StartY int
	EndX, EndY     int
	Length         int
	Type           LineType
	Kind           LineKind
	UpDown         int
	ID             string

	// Derived direction and black-section trims.
	NewType NewType
	H1, H2  int

	// Kind-list and white-only-list links, rebuilt by InitWalls.
	Next   *Line
	NextWh *Line
}

// deriveNewType maps (Type, UpDown) to the ninefold direction.
func deriveNewType(t LineType, upDown int) NewType {
	if upDown == UpDownUp {
		switch t {
		case LineN:
			return NewS // a vertical wall reads the same both ways
		case LineNNE:
			return NewNNE
		case LineNE:
			return NewNE
		case LineENE:
			return NewENE
		case LineE:
			return NewE
		}
		return 0
	}
	switch t {
	case LineN:
		return NewS
	case LineNNE:
		return NewSSE
	case LineNE:
		return NewSE
	case LineENE:
		return NewESE
	case LineE:
		return NewE
	}
	return 0
}

// Slope returns the wall's dy/dx as a rational (num/den) in screen
// coordinates, y growing downward. Vertical walls report ok=false.
func (l *Line) Slope() (num, den int, ok bool) {
	switch l.NewType {
	case NewS:
		return 0, 0, false
	case NewE:
		return 0, 1, true
	case NewSE:
		return 1, 1, true
	case NewNE:
		return -1, 1, true
	case NewSSE:
		return 2, 1, true
	case NewNNE:
		return -2, 1, true
	case NewESE:
		return 1, 2, true
	case NewENE:
		return -1, 2, true
	}
	return 0, 0, false
}
