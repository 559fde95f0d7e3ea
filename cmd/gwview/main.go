// Package main provides the windowed front end: an ebiten viewer that
// runs the world at the original 20 fps tick and shows the monochrome
// framebuffer scaled up.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/planetfall/continuum/config"
	"github.com/planetfall/continuum/game"
	"github.com/planetfall/continuum/loader"
	"github.com/planetfall/continuum/screen"
	"github.com/planetfall/continuum/shots"
	"github.com/planetfall/continuum/walls"
)

var (
	configPath = flag.String("config", "", "Path to game configuration JSON file")
	scale      = flag.Int("scale", 2, "Window scale factor")
	originX    = flag.Int("x", 0, "World x of the view's top-left corner")
	originY    = flag.Int("y", 0, "World y of the view's top-left corner")
)

// viewer adapts a game.World to ebiten's game loop. Ebiten ticks at
// 60 Hz; the world advances on every third tick to keep the original's
// 20 fps feel at the default frame rate.
type viewer struct {
	world *game.World
	frame *screen.Bitmap

	window *ebiten.Image
	pixels []byte

	tick        int
	ticksPerAdv int
}

func (v *viewer) Update() error {
	v.tick++
	if v.tick >= v.ticksPerAdv {
		v.tick = 0
		v.frame = v.world.Frame()
	}
	return nil
}

func (v *viewer) Draw(dst *ebiten.Image) {
	if v.frame == nil {
		return
	}
	if v.window == nil {
		v.window = ebiten.NewImage(v.frame.Width, v.frame.Height)
		v.pixels = make([]byte, v.frame.Width*v.frame.Height*4)
	}

	// Expand the 1-bit framebuffer to RGBA: set pixels black on white.
	i := 0
	for y := 0; y < v.frame.Height; y++ {
		for x := 0; x < v.frame.Width; x++ {
			c := byte(0xFF)
			if v.frame.Pixel(x, y) {
				c = 0
			}
			v.pixels[i] = c
			v.pixels[i+1] = c
			v.pixels[i+2] = c
			v.pixels[i+3] = 0xFF
			i += 4
		}
	}

	v.window.WritePixels(v.pixels)
	dst.DrawImage(v.window, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return screen.ScrWidth, screen.StatusBarHeight + screen.ViewHeight
}

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: gwview [options] <planet.json>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	planet, err := loader.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading planet: %v\n", err)
		os.Exit(1)
	}

	lv := walls.InitWalls(planet.Walls, planet.WorldWidth)
	world := game.NewWorld(lv,
		game.WithOrigin(*originX, *originY),
		game.WithShotLife(cfg.ShotLife),
		game.WithShot(&shots.Shot{
			X8:        8 * (*originX + 40),
			Y8:        8 * (*originY + cfg.ViewHeight/2),
			H:         16,
			Lifecount: cfg.ShotLife,
		}))

	ticksPerAdv := 60 / cfg.FrameRate
	if ticksPerAdv < 1 {
		ticksPerAdv = 1
	}

	v := &viewer{
		world:       world,
		frame:       world.Frame(),
		ticksPerAdv: ticksPerAdv,
	}

	w := screen.ScrWidth
	h := screen.StatusBarHeight + screen.ViewHeight
	ebiten.SetWindowSize(w*(*scale), h*(*scale))
	ebiten.SetWindowTitle(planet.Name)

	if err := ebiten.RunGame(v); err != nil {
		fmt.Fprintf(os.Stderr, "Viewer error: %v\n", err)
		os.Exit(1)
	}
}
