package geo

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Grid is a rectangular collision map. Tiles outside the grid collide.
//
// File format (JSON):
//
//	{"width": 172, "height": 314, "collisions": [0, 1, 173, ...]}
//
// where every collision is the 0-based tile index y*width + x.
type Grid struct {
	width     int32
	height    int32
	colliding []bool
}

type gridFile struct {
	Width      int32   `json:"width"`
	Height     int32   `json:"height"`
	Collisions []int32 `json:"collisions"`
}

// NewGrid creates a grid with the given collision tile indices.
func NewGrid(width, height int32, collisions []int32) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	g := &Grid{
		width:     width,
		height:    height,
		colliding: make([]bool, int(width)*int(height)),
	}
	for _, idx := range collisions {
		if idx < 0 || int(idx) >= len(g.colliding) {
			return nil, fmt.Errorf("collision index %d out of range [0, %d)", idx, len(g.colliding))
		}
		g.colliding[idx] = true
	}
	return g, nil
}

// ParseGrid decodes a grid from its JSON form.
func ParseGrid(data []byte) (*Grid, error) {
	var f gridFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding grid: %w", err)
	}
	return NewGrid(f.Width, f.Height, f.Collisions)
}

// LoadGrid reads a grid from a JSON map file.
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", path, err)
	}
	g, err := ParseGrid(data)
	if err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	slog.Info("collision map loaded", "file", path, "width", g.width, "height", g.height)
	return g, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int32 {
	return g.width
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int32 {
	return g.height
}

// IsColliding reports whether (x, y) is blocked or outside the grid.
func (g *Grid) IsColliding(x, y int32) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return true
	}
	return g.colliding[int(y)*int(g.width)+int(x)]
}
