// Package loader reads planet files: the JSON description of a level's
// walls and world geometry.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/planetfall/continuum/walls"
)

// Planet is one loaded level, ready for walls.InitWalls.
type Planet struct {
	Name        string
	WorldWidth  int
	WorldHeight int
	Walls       []*walls.Line
}

// planetFile is the on-disk JSON shape.
type planetFile struct {
	Name        string     `json:"name"`
	WorldWidth  int        `json:"world_width"`
	WorldHeight int        `json:"world_height"`
	Walls       []wallFile `json:"walls"`
}

type wallFile struct {
	ID     string `json:"id"`
	StartX int    `json:"start_x"`
	StartY int    `json:"start_y"`
	EndX   int    `json:"end_x"`
	EndY   int    `json:"end_y"`
	Type   string `json:"type"`
	Kind   string `json:"kind"`
}

var wallTypes = map[string]walls.LineType{
	"n":   walls.LineN,
	"nne": walls.LineNNE,
	"ne":  walls.LineNE,
	"ene": walls.LineENE,
	"e":   walls.LineE,
}

var wallKinds = map[string]walls.LineKind{
	"normal": walls.KindNormal,
	"bounce": walls.KindBounce,
	"ghost":  walls.KindGhost,
}

// Load parses a planet file and returns a Planet ready for level
// preparation.
func Load(path string) (*Planet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read planet file: %w", err)
	}

	var file planetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse planet file: %w", err)
	}

	if file.WorldWidth <= 0 {
		return nil, fmt.Errorf("planet %q: world_width must be > 0", file.Name)
	}
	if file.WorldHeight <= 0 {
		return nil, fmt.Errorf("planet %q: world_height must be > 0", file.Name)
	}

	planet := &Planet{
		Name:        file.Name,
		WorldWidth:  file.WorldWidth,
		WorldHeight: file.WorldHeight,
	}

	for i, w := range file.Walls {
		line, err := buildWall(i, w)
		if err != nil {
			return nil, fmt.Errorf("planet %q: %w", file.Name, err)
		}
		planet.Walls = append(planet.Walls, line)
	}

	return planet, nil
}

// buildWall validates one wall record and derives the fields the level
// prep expects: the dominant-axis length and the up/down flag.
func buildWall(i int, w wallFile) (*walls.Line, error) {
	t, ok := wallTypes[w.Type]
	if !ok {
		return nil, fmt.Errorf("wall %d: unknown type %q", i, w.Type)
	}
	kind, ok := wallKinds[w.Kind]
	if !ok {
		return nil, fmt.Errorf("wall %d: unknown kind %q", i, w.Kind)
	}

	if w.EndX < w.StartX {
		return nil, fmt.Errorf("wall %d: must run left to right", i)
	}

	// Walls are stored with length along the dominant axis, the way
	// the original's level data did.
	length := w.EndX - w.StartX
	if t == walls.LineN || t == walls.LineNNE {
		length = w.EndY - w.StartY
		if length < 0 {
			length = -length
		}
	}
	if length <= 0 {
		return nil, fmt.Errorf("wall %d: zero length", i)
	}

	upDown := walls.UpDownDown
	if w.EndY < w.StartY {
		upDown = walls.UpDownUp
	}

	id := w.ID
	if id == "" {
		id = fmt.Sprintf("wall-%d", i)
	}

	return &walls.Line{
		StartX: w.StartX, StartY: w.StartY,
		EndX: w.EndX, EndY: w.EndY,
		Length: length,
		Type:   t,
		Kind:   kind,
		UpDown: upDown,
		ID:     id,
	}, nil
}
