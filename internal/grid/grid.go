package grid

import "math"

// TileType is the closed vocabulary of cell states. The numeric values are
// part of the wire format and must not be reordered.
type TileType int

const (
	TileEmpty TileType = iota
	TilePath
	TileRegion
	TileRegionOuter
)

func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TilePath:
		return "path"
	case TileRegion:
		return "region"
	case TileRegionOuter:
		return "regionOuter"
	}
	return "unknown"
}

// Rune returns the glyph used by the ASCII renderers.
func (t TileType) Rune() rune {
	switch t {
	case TilePath:
		return '#'
	case TileRegion:
		return 'O'
	case TileRegionOuter:
		return '+'
	}
	return '.'
}

// Filled reports whether the tile participates in the walkable structure.
func (t TileType) Filled() bool {
	return t == TilePath || t == TileRegion || t == TileRegionOuter
}

type Point struct {
	X int
	Y int
}

func (p Point) DistSq(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(float64(p.DistSq(q)))
}

func (p Point) ManhattanTo(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is a fixed-size row-major tile array. Dimensions never change after
// creation; tiles are mutated by the generation pipeline and frozen by
// convention once the pipeline hands the grid to a caller.
type Grid struct {
	Width  int
	Height int
	Tiles  []TileType
}

func New(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]TileType, width*height),
	}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

func (g *Grid) At(x, y int) TileType {
	return g.Tiles[y*g.Width+x]
}

func (g *Grid) Set(x, y int, t TileType) {
	g.Tiles[y*g.Width+x] = t
}

// FilledAt treats out-of-bounds coordinates as empty.
func (g *Grid) FilledAt(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y).Filled()
}

// Clone returns an independent copy, used as the finished snapshot handed
// to callers.
func (g *Grid) Clone() *Grid {
	tiles := make([]TileType, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{Width: g.Width, Height: g.Height, Tiles: tiles}
}

func (g *Grid) Count(t TileType) int {
	n := 0
	for _, v := range g.Tiles {
		if v == t {
			n++
		}
	}
	return n
}

var orthogonal = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Orthogonal is the 4-neighborhood used by every traversal in the pipeline.
func Orthogonal() [4]Point {
	return orthogonal
}

// OrthogonalFilled counts filled cells among the four orthogonal neighbors.
func (g *Grid) OrthogonalFilled(x, y int) int {
	n := 0
	for _, d := range orthogonal {
		if g.FilledAt(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}
