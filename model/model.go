package model

type Direction int

const (
	UP Direction = iota
	DOWN
	LEFT
	RIGHT
	NONE
)

// Directions in the fixed enumeration order shared by pathfinding and
// the strategies. NONE is a sentinel, never part of the enumeration.
var Directions = [4]Direction{UP, DOWN, LEFT, RIGHT}

func (d Direction) Name() string {
	switch d {
	case UP:
		return "up"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	case RIGHT:
		return "right"
	default:
		return "none"
	}
}

func (d Direction) Delta() (dr, dc int) {
	switch d {
	case UP:
		return -1, 0
	case DOWN:
		return 1, 0
	case LEFT:
		return 0, -1
	case RIGHT:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	case RIGHT:
		return LEFT
	}
	return NONE
}

type Position struct {
	Row, Col int
}

func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Dist is the Manhattan distance.
func (p Position) Dist(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Tile is one grid cell. OriginalWall is fixed at construction and the
// four border flags are computed from it once; only Pellet (and the
// glyph of a consumed pellet tile) mutates during play.
type Tile struct {
	Pellet       bool
	OriginalWall bool

	WallNorth bool
	WallSouth bool
	WallEast  bool
	WallWest  bool

	Glyph rune
}

type Map struct {
	Rows, Cols int
	Tiles      [][]*Tile
}
