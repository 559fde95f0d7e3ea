// Package main provides the headless front end: it loads a planet,
// runs the world for a number of frames, and dumps each frame as a PGM
// image.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/planetfall/continuum/config"
	"github.com/planetfall/continuum/game"
	"github.com/planetfall/continuum/loader"
	"github.com/planetfall/continuum/screen"
	"github.com/planetfall/continuum/shots"
	"github.com/planetfall/continuum/walls"
)

var (
	frames     = flag.Int("frames", 1, "Number of frames to render")
	configPath = flag.String("config", "", "Path to game configuration JSON file")
	outDir     = flag.String("out", ".", "Directory for the rendered PGM frames")
	originX    = flag.Int("x", 0, "World x of the view's top-left corner")
	originY    = flag.Int("y", 0, "World y of the view's top-left corner")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: continuum [options] <planet.json>\n")
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

	planetPath := flag.Arg(0)
	planet, err := loader.Load(planetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading planet: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s\n", planetPath)
		fmt.Printf("Planet: %s (%dx%d)\n", planet.Name, planet.WorldWidth, planet.WorldHeight)
		fmt.Printf("Walls: %d\n", len(planet.Walls))
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

	for i := 0; i < *frames; i++ {
		frame := world.Frame()
		path := filepath.Join(*outDir, fmt.Sprintf("frame%04d.pgm", i))
		if err := writePGM(path, frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing frame %d: %v\n", i, err)
			os.Exit(1)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", path)
		}
	}
}

// writePGM dumps a bitmap as a binary PGM: set pixels black, clear
// pixels white.
func writePGM(path string, bm *screen.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "P5\n%d %d\n255\n", bm.Width, bm.Height); err != nil {
		return err
	}

	row := make([]byte, bm.Width)
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if bm.Pixel(x, y) {
				row[x] = 0
			} else {
				row[x] = 255
			}
		}
		if _, err := f.Write(row); err != nil {
			return err
		}
	}
	return nil
}
