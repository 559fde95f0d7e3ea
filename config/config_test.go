package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/planetfall/continuum/config"
)

var _ = Describe("GameConfig", func() {
	It("defaults to the original geometry and timing", func() {
		c := config.DefaultGameConfig()
		Expect(c.ScreenWidth).To(Equal(512))
		Expect(c.ViewHeight).To(Equal(318))
		Expect(c.StatusBarHeight).To(Equal(24))
		Expect(c.RowBytes).To(Equal(64))
		Expect(c.FrameRate).To(Equal(20))
		Expect(c.ShotLife).To(Equal(35))
		Expect(c.WorldWrap).To(BeTrue())
	})

	It("validates its defaults", func() {
		Expect(config.DefaultGameConfig().Validate()).To(Succeed())
	})

	DescribeTable("rejects bad values",
		func(mutate func(*config.GameConfig), fragment string) {
			c := config.DefaultGameConfig()
			mutate(c)
			Expect(c.Validate()).To(MatchError(ContainSubstring(fragment)))
		},
		Entry("zero screen width",
			func(c *config.GameConfig) { c.ScreenWidth = 0 }, "screen_width"),
		Entry("unaligned screen width",
			func(c *config.GameConfig) { c.ScreenWidth = 500 }, "screen_width"),
		Entry("zero view height",
			func(c *config.GameConfig) { c.ViewHeight = 0 }, "view_height"),
		Entry("negative status bar",
			func(c *config.GameConfig) { c.StatusBarHeight = -1 }, "status_bar_height"),
		Entry("short row stride",
			func(c *config.GameConfig) { c.RowBytes = 32 }, "row_bytes"),
		Entry("zero frame rate",
			func(c *config.GameConfig) { c.FrameRate = 0 }, "frame_rate"),
		Entry("zero shot life",
			func(c *config.GameConfig) { c.ShotLife = 0 }, "shot_life"),
	)

	It("clones without sharing", func() {
		c := config.DefaultGameConfig()
		clone := c.Clone()
		clone.FrameRate = 60
		Expect(c.FrameRate).To(Equal(20))
		Expect(clone.FrameRate).To(Equal(60))
	})

	Describe("round trip", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "game-config-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("saves and reloads a config", func() {
			path := filepath.Join(tempDir, "config.json")
			c := config.DefaultGameConfig()
			c.FrameRate = 30
			Expect(c.SaveConfig(path)).To(Succeed())

			loaded, err := config.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(c))
		})

		It("keeps defaults for missing fields", func() {
			path := filepath.Join(tempDir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"frame_rate": 30}`), 0644)).To(Succeed())

			loaded, err := config.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.FrameRate).To(Equal(30))
			Expect(loaded.ScreenWidth).To(Equal(512))
			Expect(loaded.WorldWrap).To(BeTrue())
		})

		It("fails on a missing file", func() {
			_, err := config.LoadConfig(filepath.Join(tempDir, "nope.json"))
			Expect(err).To(HaveOccurred())
		})

		It("fails on malformed JSON", func() {
			path := filepath.Join(tempDir, "bad.json")
			Expect(os.WriteFile(path, []byte("{"), 0644)).To(Succeed())
			_, err := config.LoadConfig(path)
			Expect(err).To(MatchError(ContainSubstring("parse")))
		})
	})
})
