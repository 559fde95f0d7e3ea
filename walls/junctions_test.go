package walls_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/planetfall/continuum/walls"
)

func newLine(id string, x1, y1, x2, y2 int, t walls.LineType,
	kind walls.LineKind, upDown int) *walls.Line {
	length := x2 - x1
	if t == walls.LineN {
		length = y2 - y1
		if length < 0 {
			length = -length
		}
	}
	return &walls.Line{
		StartX: x1, StartY: y1,
		EndX: x2, EndY: y2,
		Length: length,
		Type:   t, Kind: kind, UpDown: upDown,
		ID: id,
	}
}

var _ = Describe("InitWalls", func() {
	It("derives the ninefold direction from type and up/down", func() {
		cases := []struct {
			t      walls.LineType
			upDown int
			want   walls.NewType
		}{
			{walls.LineN, walls.UpDownDown, walls.NewS},
			{walls.LineN, walls.UpDownUp, walls.NewS},
			{walls.LineNNE, walls.UpDownDown, walls.NewSSE},
			{walls.LineNNE, walls.UpDownUp, walls.NewNNE},
			{walls.LineNE, walls.UpDownDown, walls.NewSE},
			{walls.LineNE, walls.UpDownUp, walls.NewNE},
			{walls.LineENE, walls.UpDownDown, walls.NewESE},
			{walls.LineENE, walls.UpDownUp, walls.NewENE},
			{walls.LineE, walls.UpDownDown, walls.NewE},
		}
		for _, c := range cases {
			line := newLine("l", 100, 100, 120, 120, c.t, walls.KindNormal, c.upDown)
			walls.InitWalls([]*walls.Line{line}, 1000)
			Expect(line.NewType).To(Equal(c.want))
		}
	})

	It("chains walls by kind", func() {
		normal := newLine("n", 100, 100, 140, 100, walls.LineE, walls.KindNormal, walls.UpDownDown)
		bounce := newLine("b", 200, 100, 240, 100, walls.LineE, walls.KindBounce, walls.UpDownDown)
		ghost := newLine("g", 300, 100, 340, 100, walls.LineE, walls.KindGhost, walls.UpDownDown)

		lv := walls.InitWalls([]*walls.Line{normal, bounce, ghost}, 1000)

		Expect(lv.KindPtrs[walls.KindNormal]).To(Equal(normal))
		Expect(normal.Next).To(BeNil())
		Expect(lv.KindPtrs[walls.KindBounce]).To(Equal(bounce))
		Expect(lv.KindPtrs[walls.KindGhost]).To(Equal(ghost))
	})

	It("collects NNE walls into the white-only list", func() {
		nne := newLine("w", 100, 200, 110, 180, walls.LineNNE, walls.KindNormal, walls.UpDownUp)
		flat := newLine("f", 200, 100, 240, 100, walls.LineE, walls.KindNormal, walls.UpDownDown)

		lv := walls.InitWalls([]*walls.Line{nne, flat}, 1000)

		Expect(lv.FirstWhite).To(Equal(nne))
		Expect(nne.NextWh).To(BeNil())
	})

	It("sorts walls by start x", func() {
		a := newLine("a", 300, 100, 340, 100, walls.LineE, walls.KindNormal, walls.UpDownDown)
		b := newLine("b", 100, 100, 140, 100, walls.LineE, walls.KindNormal, walls.UpDownDown)

		lv := walls.InitWalls([]*walls.Line{a, b}, 1000)

		Expect(lv.Lines[0]).To(Equal(b))
		Expect(lv.Lines[1]).To(Equal(a))
	})
})

var _ = Describe("junction detection", func() {
	// A small world width keeps the hash merge out of these tests so
	// the raw junction list is observable.
	It("makes one junction per isolated endpoint", func() {
		line := newLine("l", 100, 100, 200, 100, walls.LineE, walls.KindNormal, walls.UpDownDown)

		lv := walls.InitWalls([]*walls.Line{line}, 100)

		Expect(lv.NumJunctions).To(Equal(2))
		Expect(lv.Junctions[0].X).To(Equal(100))
		Expect(lv.Junctions[1].X).To(Equal(200))
	})

	It("merges endpoints within a 3-pixel box", func() {
		a := newLine("a", 100, 100, 200, 100, walls.LineE, walls.KindNormal, walls.UpDownDown)
		b := newLine("b", 202, 101, 300, 101, walls.LineE, walls.KindNormal, walls.UpDownDown)

		lv := walls.InitWalls([]*walls.Line{a, b}, 100)

		// a's end and b's start collapse into one junction.
		Expect(lv.NumJunctions).To(Equal(3))
	})

	It("sorts junctions by x and pads with sentinels", func() {
		a := newLine("a", 300, 100, 400, 100, walls.LineE, walls.KindNormal, walls.UpDownDown)
		b := newLine("b", 100, 200, 200, 200, walls.LineE, walls.KindNormal, walls.UpDownDown)

		lv := walls.InitWalls([]*walls.Line{a, b}, 100)

		for i := 1; i < lv.NumJunctions; i++ {
			Expect(lv.Junctions[i].X).To(BeNumerically(">=", lv.Junctions[i-1].X))
		}
		Expect(len(lv.Junctions)).To(Equal(lv.NumJunctions + 18))
		Expect(lv.Junctions[len(lv.Junctions)-1].X).To(Equal(20000))
	})
})
