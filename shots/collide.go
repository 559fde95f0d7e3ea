package shots

import (
	"math"

	"github.com/planetfall/continuum/walls"
)

// FramesToImpact ray-casts the shot's straight path against every wall
// and reports the nearest crossing within the shot's remaining life.
// Ghost walls are ignored outright. Degenerate geometry on a wall (a
// path parallel to it, including zero horizontal velocity against a
// vertical wall) means no intersection on that branch; the scan simply
// moves on to the next wall.
func FramesToImpact(shot *Shot, totallife int, lines []*walls.Line) Impact {
	best := Impact{
		Frames:    shot.Lifecount,
		Strafedir: -1,
	}
	bestT := math.Inf(1)

	x8 := float64(shot.X8)
	y8 := float64(shot.Y8)
	h := float64(shot.H)
	v := float64(shot.V)

	for _, line := range lines {
		if line.Kind == walls.KindGhost {
			continue
		}

		var t float64
		if num, den, ok := line.Slope(); ok {
			// y - wy = m(x - wx), m = num/den, all scaled by 8.
			m := float64(num) / float64(den)
			d := v - m*h
			if d == 0 {
				continue
			}
			t = (m*(x8-8*float64(line.StartX)) - (y8 - 8*float64(line.StartY))) / d
		} else {
			// Vertical wall: a purely vertical shot never crosses it.
			if h == 0 {
				continue
			}
			t = (8*float64(line.StartX) - x8) / h
		}

		if t <= 0 || t > float64(shot.Lifecount) || t >= bestT {
			continue
		}

		// The crossing must land on the wall segment itself.
		xc := (x8 + h*t) / 8
		yc := (y8 + v*t) / 8
		if !onSegment(line, xc, yc) {
			continue
		}

		frames := int(math.Ceil(t - 1e-9))
		best = Impact{
			Frames:    frames,
			Strafedir: strafeDir(line, shot.H, shot.V),
			HitlineID: line.ID,
		}
		if line.Kind == walls.KindBounce {
			best.Btime = totallife - frames
		}
		bestT = t
	}

	return best
}

// onSegment reports whether world point (x, y) lies on the wall's
// bounding span, with a small tolerance for the fixed-point rounding.
func onSegment(line *walls.Line, x, y float64) bool {
	const eps = 1e-6
	minX, maxX := float64(line.StartX), float64(line.EndX)
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := float64(line.StartY), float64(line.EndY)
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return x >= minX-eps && x <= maxX+eps &&
		y >= minY-eps && y <= maxY+eps
}

// strafeDir picks the spark direction for an impact: the wall's
// outward normal on the side the shot came from, on the 16-point
// compass (0 = north, clockwise).
func strafeDir(line *walls.Line, h, v int) int {
	// Normals for each direction, paired with a unit-ish vector used
	// to pick the side facing against the shot.
	type normal struct {
		dir    int
		nx, ny int
	}
	var n1, n2 normal
	switch line.NewType {
	case walls.NewS:
		n1, n2 = normal{4, 1, 0}, normal{12, -1, 0}
	case walls.NewE:
		n1, n2 = normal{0, 0, -1}, normal{8, 0, 1}
	case walls.NewSE:
		n1, n2 = normal{2, 1, -1}, normal{10, -1, 1}
	case walls.NewNE:
		n1, n2 = normal{6, 1, 1}, normal{14, -1, -1}
	case walls.NewSSE:
		n1, n2 = normal{3, 2, -1}, normal{11, -2, 1}
	case walls.NewNNE:
		n1, n2 = normal{5, 2, 1}, normal{13, -2, -1}
	case walls.NewESE:
		n1, n2 = normal{1, 1, -2}, normal{9, -1, 2}
	case walls.NewENE:
		n1, n2 = normal{7, 1, 2}, normal{15, -1, -2}
	default:
		return -1
	}

	// The spark faces back toward the shot: pick the normal whose dot
	// product with the velocity is negative.
	if h*n1.nx+v*n1.ny < 0 {
		return n1.dir
	}
	return n2.dir
}
