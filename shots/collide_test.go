package shots_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/planetfall/continuum/shots"
	"github.com/planetfall/continuum/walls"
)

func vertWall(id string, x, y1, y2 int, kind walls.LineKind) *walls.Line {
	return &walls.Line{
		StartX: x, StartY: y1,
		EndX: x, EndY: y2,
		Length:  y2 - y1,
		Type:    walls.LineN,
		Kind:    kind,
		UpDown:  walls.UpDownDown,
		ID:      id,
		NewType: walls.NewS,
	}
}

func horizWall(id string, x1, x2, y int, kind walls.LineKind) *walls.Line {
	return &walls.Line{
		StartX: x1, StartY: y,
		EndX: x2, EndY: y,
		Length:  x2 - x1,
		Type:    walls.LineE,
		Kind:    kind,
		UpDown:  walls.UpDownDown,
		ID:      id,
		NewType: walls.NewE,
	}
}

var _ = Describe("FramesToImpact", func() {
	var shot *shots.Shot

	BeforeEach(func() {
		shot = &shots.Shot{
			X8: 800, Y8: 800, // world (100, 100)
			H: 16, V: 0,
			Lifecount: 40,
		}
	})

	It("finds a vertical wall straight ahead", func() {
		wall := vertWall("w1", 150, 50, 150, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.Frames).To(Equal(25))
		Expect(imp.HitlineID).To(Equal("w1"))
		Expect(imp.Btime).To(Equal(0))
	})

	It("reports the shot life when nothing is in the path", func() {
		wall := vertWall("w1", 150, 200, 300, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.Frames).To(Equal(shot.Lifecount))
		Expect(imp.Strafedir).To(Equal(-1))
		Expect(imp.HitlineID).To(BeEmpty())
	})

	It("ignores walls beyond the shot's remaining life", func() {
		shot.Lifecount = 10
		wall := vertWall("w1", 150, 50, 150, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.Frames).To(Equal(10))
		Expect(imp.HitlineID).To(BeEmpty())
	})

	It("ignores walls behind the shot", func() {
		wall := vertWall("w1", 50, 50, 150, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.HitlineID).To(BeEmpty())
	})

	It("skips ghost walls and reports the wall behind them", func() {
		ghost := vertWall("ghost", 120, 50, 150, walls.KindGhost)
		solid := vertWall("solid", 150, 50, 150, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{ghost, solid})

		Expect(imp.HitlineID).To(Equal("solid"))
		Expect(imp.Frames).To(Equal(25))
	})

	It("sets btime on a bounce wall", func() {
		wall := vertWall("b1", 150, 50, 150, walls.KindBounce)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.Frames).To(Equal(25))
		Expect(imp.Btime).To(Equal(45 - 25))
	})

	It("leaves btime zero on a normal wall", func() {
		wall := vertWall("w1", 150, 50, 150, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.Btime).To(Equal(0))
	})

	It("picks the nearest of several walls", func() {
		far := vertWall("far", 180, 50, 150, walls.KindNormal)
		near := vertWall("near", 140, 50, 150, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{far, near})

		Expect(imp.HitlineID).To(Equal("near"))
	})

	It("skips a vertical wall for a purely vertical shot", func() {
		shot.H = 0
		shot.V = 16
		wall := vertWall("w1", 150, 50, 150, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.HitlineID).To(BeEmpty())
	})

	It("hits a horizontal wall from above", func() {
		shot.H = 0
		shot.V = 16
		wall := horizWall("h1", 50, 150, 150, walls.KindNormal)

		// t = (8*150 - 800) / 16 = 25
		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.Frames).To(Equal(25))
		Expect(imp.HitlineID).To(Equal("h1"))
	})

	It("skips a horizontal wall for a parallel shot", func() {
		wall := horizWall("h1", 50, 300, 100, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.HitlineID).To(BeEmpty())
	})

	It("rejects a crossing outside the wall segment", func() {
		wall := vertWall("w1", 150, 110, 200, walls.KindNormal)

		imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

		Expect(imp.HitlineID).To(BeEmpty())
	})

	Describe("strafe direction", func() {
		It("faces west on a vertical wall hit from the west", func() {
			wall := vertWall("w1", 150, 50, 150, walls.KindNormal)

			imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

			Expect(imp.Strafedir).To(Equal(12))
		})

		It("faces east on a vertical wall hit from the east", func() {
			shot.X8 = 8 * 200
			shot.H = -16
			wall := vertWall("w1", 150, 50, 150, walls.KindNormal)

			imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

			Expect(imp.Strafedir).To(Equal(4))
		})

		It("faces north on a horizontal wall hit from above", func() {
			shot.H = 0
			shot.V = 16
			wall := horizWall("h1", 50, 150, 150, walls.KindNormal)

			imp := shots.FramesToImpact(shot, 45, []*walls.Line{wall})

			Expect(imp.Strafedir).To(Equal(0))
		})
	})
})

var _ = Describe("collision stubs", func() {
	It("never reports a ship hit", func() {
		shot := &shots.Shot{X8: 800, Y8: 800}
		Expect(shots.ShipCollision(shot, 100, 100)).To(BeFalse())
	})

	It("never reports a bunker hit", func() {
		shot := &shots.Shot{X8: 800, Y8: 800}
		Expect(shots.BunkerCollision(shot, 100, 100)).To(BeFalse())
	})
})
