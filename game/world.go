// Package game ties the pieces together: a world binds a planet's
// walls, the live shots, and the screen origin, and renders one frame
// at a time.
package game

import (
	"github.com/planetfall/continuum/screen"
	"github.com/planetfall/continuum/shots"
	"github.com/planetfall/continuum/sprites"
	"github.com/planetfall/continuum/walls"
)

// DefaultShotLife is the total shot lifetime in frames.
const DefaultShotLife = 35

// World is one planet being played: the prepared wall data, the live
// shots, and the screen origin within the world.
type World struct {
	level *walls.Level
	base  *screen.Bitmap
	shots []*shots.Shot

	originX, originY int
	shotLife         int
}

// Option configures a World.
type Option func(*World)

// WithOrigin sets the world position of the view's top-left corner.
func WithOrigin(x, y int) Option {
	return func(w *World) {
		w.originX = x
		w.originY = y
	}
}

// WithShot adds a live shot to the world.
func WithShot(s *shots.Shot) Option {
	return func(w *World) {
		w.shots = append(w.shots, s)
	}
}

// WithShotLife overrides the total shot lifetime.
func WithShotLife(frames int) Option {
	return func(w *World) {
		w.shotLife = frames
	}
}

// NewWorld creates a world over a prepared level. The base bitmap is
// filled once with the gray dither; Frame clones it every call.
func NewWorld(lv *walls.Level, opts ...Option) *World {
	w := &World{
		level:    lv,
		base:     screen.NewScreen(),
		shotLife: DefaultShotLife,
	}
	b1, b2 := sprites.Background()
	w.base.FillBackground(screen.StatusBarHeight, b1, b2)
	for _, opt := range opts {
		w.Apply(opt)
	}
	return w
}

// Apply applies an option to a live world.
func (w *World) Apply(opt Option) {
	opt(w)
}

// Shots returns the live shots.
func (w *World) Shots() []*shots.Shot {
	return w.shots
}

// Frame renders one frame: it clones the base bitmap, draws the walls
// and junction hashes, advances every live shot and resolves its wall
// impact, and returns the clone. The base bitmap is never touched.
func (w *World) Frame() *screen.Bitmap {
	bm := w.base.Clone()

	bot := w.originY + screen.ViewHeight
	right := w.originX + screen.ScrWidth

	walls.FastWhites(bm, w.level, w.originX, w.originY, bot, right)
	walls.FastHashes(bm, w.level, w.originX, w.originY, bot, right)

	for kind := walls.KindNormal; kind <= walls.KindGhost; kind++ {
		for line := w.level.KindPtrs[kind]; line != nil; line = line.Next {
			walls.BlackWallPiece(bm, line, w.originX, w.originY)
		}
	}

	for _, s := range w.shots {
		if s.Lifecount <= 0 {
			continue
		}
		imp := shots.FramesToImpact(s, w.shotLife, w.level.Lines)
		s.Strafedir = imp.Strafedir
		s.Btime = imp.Btime
		s.HitlineID = imp.HitlineID

		if imp.HitlineID != "" && imp.Frames <= 1 {
			// The shot reaches the wall this frame.
			s.X8 += s.H
			s.Y8 += s.V
			s.Lifecount = 0
			continue
		}

		s.X8 += s.H
		s.Y8 += s.V
		s.Lifecount--
		if w.level.WorldWidth > 0 {
			wrap := 8 * w.level.WorldWidth
			s.X8 = ((s.X8 % wrap) + wrap) % wrap
		}

		shots.DrawShot(bm, s.X8/8-w.originX, s.Y8/8-w.originY)
	}

	return bm
}
