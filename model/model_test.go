package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corridor = []string{
	"=====",
	"=...=",
	"=====",
}

func TestNewMapRejectsBadInput(t *testing.T) {
	_, err := NewMap(nil)
	require.Error(t, err)

	_, err = NewMap([]string{""})
	require.Error(t, err)

	_, err = NewMap([]string{"===", "=="})
	require.Error(t, err, "ragged rows")

	_, err = NewMap([]string{"==", "=x"})
	require.Error(t, err, "unknown symbol")
}

func TestBorderSymmetry(t *testing.T) {
	m, err := NewMap([]string{
		"======",
		"=.=..=",
		"=...==",
		"=.=..=",
		"======",
	})
	require.NoError(t, err)

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			tile := m.Tiles[r][c]
			if r < m.Rows-1 {
				south := m.Tiles[r+1][c]
				assert.Equal(t, tile.WallSouth, south.WallNorth, "south/north at %d,%d", r, c)
				assert.Equal(t, tile.OriginalWall != south.OriginalWall, tile.WallSouth,
					"flag iff exactly one wall at %d,%d", r, c)
			}
			if c < m.Cols-1 {
				east := m.Tiles[r][c+1]
				assert.Equal(t, tile.WallEast, east.WallWest, "east/west at %d,%d", r, c)
				assert.Equal(t, tile.OriginalWall != east.OriginalWall, tile.WallEast,
					"flag iff exactly one wall at %d,%d", r, c)
			}
		}
	}
}

func TestMovementBlocked(t *testing.T) {
	m, err := NewMap(corridor)
	require.NoError(t, err)

	from := Position{Row: 1, Col: 2}
	assert.False(t, m.MovementBlocked(from, Position{Row: 1, Col: 1}))
	assert.False(t, m.MovementBlocked(from, Position{Row: 1, Col: 3}))
	assert.True(t, m.MovementBlocked(from, Position{Row: 0, Col: 2}), "wall border")
	assert.True(t, m.MovementBlocked(from, Position{Row: 2, Col: 2}), "wall border")
	assert.True(t, m.MovementBlocked(from, Position{Row: 1, Col: 4}), "non-adjacent")
	assert.True(t, m.MovementBlocked(from, Position{Row: 2, Col: 3}), "diagonal")
	assert.True(t, m.MovementBlocked(Position{Row: 1, Col: 1}, Position{Row: 1, Col: -1}), "out of bounds")
}

func TestBordersNeverRecomputed(t *testing.T) {
	m, err := NewMap(corridor)
	require.NoError(t, err)

	// consuming pellets must not change passability
	require.True(t, m.RemovePellet(Position{Row: 1, Col: 2}))
	assert.False(t, m.MovementBlocked(Position{Row: 1, Col: 1}, Position{Row: 1, Col: 2}))
	assert.True(t, m.MovementBlocked(Position{Row: 1, Col: 2}, Position{Row: 0, Col: 2}))
}

func TestRemovePelletIdempotent(t *testing.T) {
	m, err := NewMap(corridor)
	require.NoError(t, err)

	p := Position{Row: 1, Col: 1}
	assert.Equal(t, 3, m.PelletCount())
	assert.True(t, m.RemovePellet(p))
	assert.False(t, m.RemovePellet(p))
	assert.Equal(t, 2, m.PelletCount())
	assert.False(t, m.RemovePellet(Position{Row: 0, Col: 0}), "wall tile")
	assert.False(t, m.RemovePellet(Position{Row: -1, Col: 0}), "out of bounds")
}

func TestWallGlyphOrientation(t *testing.T) {
	m, err := NewMap([]string{
		"=====",
		"=. .=",
		"== ==",
		"=. .=",
		"=====",
	})
	require.NoError(t, err)

	assert.Equal(t, rune(GLYPH_WALL_X), m.GlyphAt(Position{Row: 0, Col: 0}), "corner junction")
	assert.Equal(t, rune(GLYPH_WALL_H), m.GlyphAt(Position{Row: 0, Col: 2}), "horizontal run")
	assert.Equal(t, rune(GLYPH_WALL_V), m.GlyphAt(Position{Row: 1, Col: 0}), "vertical run")
	assert.Equal(t, rune(GLYPH_PELLET), m.GlyphAt(Position{Row: 1, Col: 1}))
	assert.Equal(t, rune(GLYPH_EMPTY), m.GlyphAt(Position{Row: 1, Col: 2}))
}

func TestRenderOverlays(t *testing.T) {
	m, err := NewMap(corridor)
	require.NoError(t, err)

	grid := m.Render(Position{Row: 1, Col: 1}, []Position{{Row: 1, Col: 3}})
	assert.Equal(t, rune(GLYPH_PLAYER), grid[1][1])
	assert.Equal(t, rune(GLYPH_GHOST), grid[1][3])
	assert.Equal(t, rune(GLYPH_PELLET), grid[1][2])

	// overlays never touch the map itself
	assert.Equal(t, rune(GLYPH_PELLET), m.GlyphAt(Position{Row: 1, Col: 1}))
}

func TestDirectionHelpers(t *testing.T) {
	p := Position{Row: 3, Col: 3}
	assert.Equal(t, Position{Row: 2, Col: 3}, p.Step(UP))
	assert.Equal(t, Position{Row: 4, Col: 3}, p.Step(DOWN))
	assert.Equal(t, Position{Row: 3, Col: 2}, p.Step(LEFT))
	assert.Equal(t, Position{Row: 3, Col: 4}, p.Step(RIGHT))
	assert.Equal(t, 4, p.Dist(Position{Row: 1, Col: 5}))
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, "none", d.Name())
	}
}
