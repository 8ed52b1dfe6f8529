package model

import "fmt"

const (
	SYM_WALL   = '='
	SYM_PELLET = '.'
	SYM_EMPTY  = ' '

	GLYPH_WALL_V = '|'
	GLYPH_WALL_H = '-'
	GLYPH_WALL_X = '+'
	GLYPH_PELLET = '.'
	GLYPH_EMPTY  = ' '
	GLYPH_PLAYER = '😋'
	GLYPH_GHOST  = '👻'
)

// NewMap builds the ground-truth map from raw layout rows. Allowed
// symbols: '=' wall, '.' pellet floor, ' ' empty floor. Rows must be
// non-empty and of equal length. Border flags and wall glyphs are
// computed here once and never change afterwards.
func NewMap(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map: no rows")
	}
	tiles := make([][]*Tile, 0, len(rows))
	cols := -1
	for r, line := range rows {
		runes := []rune(line)
		if cols == -1 {
			cols = len(runes)
			if cols == 0 {
				return nil, fmt.Errorf("map: row 0 is empty")
			}
		} else if len(runes) != cols {
			return nil, fmt.Errorf("map: row %d has %d cells, want %d", r, len(runes), cols)
		}
		row := make([]*Tile, 0, cols)
		for c, sym := range runes {
			switch sym {
			case SYM_WALL, SYM_PELLET, SYM_EMPTY:
			default:
				return nil, fmt.Errorf("map: unknown symbol %q at %d,%d", sym, r, c)
			}
			row = append(row, &Tile{
				Pellet:       sym == SYM_PELLET,
				OriginalWall: sym == SYM_WALL,
			})
		}
		tiles = append(tiles, row)
	}
	m := &Map{Rows: len(tiles), Cols: cols, Tiles: tiles}
	m.initBorders()
	m.initGlyphs()
	return m, nil
}

// initBorders sets a border flag between two adjacent tiles iff exactly
// one of the pair is an original wall. Both sides are written together,
// so the flags are symmetric by construction.
func (m *Map) initBorders() {
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			tile := m.Tiles[r][c]
			if r < m.Rows-1 {
				south := m.Tiles[r+1][c]
				if tile.OriginalWall != south.OriginalWall {
					tile.WallSouth = true
					south.WallNorth = true
				}
			}
			if c < m.Cols-1 {
				east := m.Tiles[r][c+1]
				if tile.OriginalWall != east.OriginalWall {
					tile.WallEast = true
					east.WallWest = true
				}
			}
		}
	}
}

// initGlyphs derives the render symbol per tile. Wall tiles get an
// orientation glyph from their wall neighbours: vertical-only run,
// horizontal-only run, or junction.
func (m *Map) initGlyphs() {
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			tile := m.Tiles[r][c]
			switch {
			case tile.OriginalWall:
				up := r > 0 && m.Tiles[r-1][c].OriginalWall
				down := r < m.Rows-1 && m.Tiles[r+1][c].OriginalWall
				left := c > 0 && m.Tiles[r][c-1].OriginalWall
				right := c < m.Cols-1 && m.Tiles[r][c+1].OriginalWall

				vertical := up || down
				horizontal := left || right
				switch {
				case vertical && !horizontal:
					tile.Glyph = GLYPH_WALL_V
				case horizontal && !vertical:
					tile.Glyph = GLYPH_WALL_H
				default:
					tile.Glyph = GLYPH_WALL_X
				}
			case tile.Pellet:
				tile.Glyph = GLYPH_PELLET
			default:
				tile.Glyph = GLYPH_EMPTY
			}
		}
	}
}

func (m *Map) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.Rows && p.Col >= 0 && p.Col < m.Cols
}

// MovementBlocked reports whether the step from→to is illegal: out of
// bounds, not one of the four cardinal unit steps, or crossing a set
// border flag. Passability is a function of the border, never of what
// currently occupies either tile.
func (m *Map) MovementBlocked(from, to Position) bool {
	if !m.InBounds(from) || !m.InBounds(to) {
		return true
	}
	tile := m.Tiles[from.Row][from.Col]
	switch {
	case to.Row == from.Row-1 && to.Col == from.Col:
		return tile.WallNorth
	case to.Row == from.Row+1 && to.Col == from.Col:
		return tile.WallSouth
	case to.Row == from.Row && to.Col == from.Col-1:
		return tile.WallWest
	case to.Row == from.Row && to.Col == from.Col+1:
		return tile.WallEast
	}
	// non-adjacent steps are blocked by policy
	return true
}

// RemovePellet clears the pellet at p and reports whether one was
// actually there. Safe to call repeatedly; only the first call on a
// pellet tile returns true.
func (m *Map) RemovePellet(p Position) bool {
	if !m.InBounds(p) {
		return false
	}
	tile := m.Tiles[p.Row][p.Col]
	if !tile.Pellet {
		return false
	}
	tile.Pellet = false
	if !tile.OriginalWall {
		tile.Glyph = GLYPH_EMPTY
	}
	return true
}

func (m *Map) GlyphAt(p Position) rune {
	return m.Tiles[p.Row][p.Col].Glyph
}

func (m *Map) PelletCount() int {
	n := 0
	for _, row := range m.Tiles {
		for _, tile := range row {
			if tile.Pellet {
				n++
			}
		}
	}
	return n
}

// Render copies the glyph grid and overlays the player and the ghosts.
func (m *Map) Render(player Position, ghosts []Position) [][]rune {
	out := make([][]rune, m.Rows)
	for r := 0; r < m.Rows; r++ {
		out[r] = make([]rune, m.Cols)
		for c := 0; c < m.Cols; c++ {
			out[r][c] = m.Tiles[r][c].Glyph
		}
	}
	if m.InBounds(player) {
		out[player.Row][player.Col] = GLYPH_PLAYER
	}
	for _, g := range ghosts {
		if m.InBounds(g) {
			out[g.Row][g.Col] = GLYPH_GHOST
		}
	}
	return out
}
