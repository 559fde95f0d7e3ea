package shots_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/planetfall/continuum/screen"
	"github.com/planetfall/continuum/shots"
)

var _ = Describe("DrawShot", func() {
	var bm *screen.Bitmap

	BeforeEach(func() {
		bm = screen.NewScreen()
	})

	It("draws the 3x3 empty shot sprite", func() {
		shots.DrawShot(bm, 100, 50)

		row := 50 + screen.StatusBarHeight

		// Top and bottom rows are solid.
		for _, dy := range []int{0, 2} {
			Expect(bm.Pixel(100, row+dy)).To(BeTrue())
			Expect(bm.Pixel(101, row+dy)).To(BeTrue())
			Expect(bm.Pixel(102, row+dy)).To(BeTrue())
		}

		// Middle row is hollow: the sprite picker always takes the
		// empty variant.
		Expect(bm.Pixel(100, row+1)).To(BeTrue())
		Expect(bm.Pixel(101, row+1)).To(BeFalse())
		Expect(bm.Pixel(102, row+1)).To(BeTrue())
	})

	It("never draws the filled variant", func() {
		for x := 0; x < 48; x += 3 {
			shots.DrawShot(bm, x, 50)
		}
		row := 50 + screen.StatusBarHeight
		for x := 1; x < 48; x += 3 {
			Expect(bm.Pixel(x, row+1)).To(BeFalse())
		}
	})

	It("ORs over existing pixels", func() {
		row := 50 + screen.StatusBarHeight
		bm.SetPixel(99, row)
		bm.SetPixel(101, row+1)

		shots.DrawShot(bm, 100, 50)

		Expect(bm.Pixel(99, row)).To(BeTrue())
		Expect(bm.Pixel(101, row+1)).To(BeTrue())
	})

	It("crosses a word boundary cleanly", func() {
		shots.DrawShot(bm, 15, 50)

		row := 50 + screen.StatusBarHeight
		Expect(bm.Pixel(15, row)).To(BeTrue())
		Expect(bm.Pixel(16, row)).To(BeTrue())
		Expect(bm.Pixel(17, row)).To(BeTrue())
		Expect(bm.Pixel(16, row+1)).To(BeFalse())
	})

	It("skips a shot above the view", func() {
		shots.DrawShot(bm, 100, -3)

		for _, b := range bm.Data {
			Expect(b).To(BeZero())
		}
	})

	It("skips a shot below the view", func() {
		shots.DrawShot(bm, 100, screen.ViewHeight)

		for _, b := range bm.Data {
			Expect(b).To(BeZero())
		}
	})
})
