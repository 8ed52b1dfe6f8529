package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvasek/mazehunt/model"
)

func TestGenerateRejectsSmallDimensions(t *testing.T) {
	_, err := Generate(Config{Width: 6, Height: 9})
	require.Error(t, err, "width below minimum must fail before any grid exists")

	_, err = Generate(Config{Width: 9, Height: 6})
	require.Error(t, err)

	_, err = Generate(Config{Width: 0, Height: 0})
	require.Error(t, err)
}

func TestGenerateCoercesEvenDimensions(t *testing.T) {
	layout, err := Generate(Config{Width: 8, Height: 10, Seed: 1})
	require.NoError(t, err)
	assert.Len(t, layout.Rows, 11)
	assert.Len(t, []rune(layout.Rows[0]), 9)
}

func TestGenerateDeterministicBySeed(t *testing.T) {
	a, err := Generate(Config{Width: 15, Height: 11, Seed: 42})
	require.NoError(t, err)
	b, err := Generate(Config{Width: 15, Height: 11, Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, a.Rows, b.Rows)
	assert.Equal(t, a.PlayerStart, b.PlayerStart)
	assert.Equal(t, a.GhostStarts, b.GhostStarts)
}

// The carving must produce a spanning tree over the open cells: every
// open cell reachable from every other, with exactly openCells-1
// adjacent open pairs (no loops).
func TestGenerateSpanningTree(t *testing.T) {
	for _, seed := range []int64{1, 7, 1234, 99991} {
		layout, err := Generate(Config{Width: 21, Height: 17, Seed: seed})
		require.NoError(t, err)

		grid := make([][]rune, len(layout.Rows))
		for r, row := range layout.Rows {
			grid[r] = []rune(row)
		}
		rows, cols := len(grid), len(grid[0])

		open := make([]model.Position, 0)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				require.Contains(t, []rune{model.SYM_WALL, model.SYM_PELLET}, grid[r][c],
					"every opened cell is pelletized")
				if grid[r][c] == model.SYM_PELLET {
					open = append(open, model.Position{Row: r, Col: c})
				}
			}
		}
		require.NotEmpty(t, open, "seed %d", seed)

		edges := 0
		for _, p := range open {
			if p.Row+1 < rows && grid[p.Row+1][p.Col] == model.SYM_PELLET {
				edges++
			}
			if p.Col+1 < cols && grid[p.Row][p.Col+1] == model.SYM_PELLET {
				edges++
			}
		}
		assert.Equal(t, len(open)-1, edges, "seed %d: loopless tree", seed)

		// flood fill from the first open cell reaches all of them
		seen := map[model.Position]bool{open[0]: true}
		stack := []model.Position{open[0]}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, d := range model.Directions {
				next := cur.Step(d)
				if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
					continue
				}
				if grid[next.Row][next.Col] == model.SYM_PELLET && !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
		assert.Equal(t, len(open), len(seen), "seed %d: connectivity", seed)
	}
}

func TestStartPositions(t *testing.T) {
	layout, err := Generate(Config{Width: 21, Height: 17, Ghosts: 3, Seed: 5})
	require.NoError(t, err)

	grid := make([][]rune, len(layout.Rows))
	for r, row := range layout.Rows {
		grid[r] = []rune(row)
	}

	p := layout.PlayerStart
	assert.Equal(t, model.SYM_PELLET, grid[p.Row][p.Col], "player starts on an open cell")

	require.Len(t, layout.GhostStarts, 3)
	for _, g := range layout.GhostStarts {
		assert.Equal(t, model.SYM_PELLET, grid[g.Row][g.Col], "ghost starts on an open cell")
		assert.NotEqual(t, p, g)
		assert.Greater(t, g.Dist(p), 0)
	}
}

func TestStartPositionsPreferSafeDistance(t *testing.T) {
	// a 21x17 maze has far more than 3 cells beyond the threshold, so
	// no fallback: every ghost must spawn outside it
	threshold := (21 + 17) / 4
	for _, seed := range []int64{3, 11, 77} {
		layout, err := Generate(Config{Width: 21, Height: 17, Ghosts: 3, Seed: seed})
		require.NoError(t, err)
		for _, g := range layout.GhostStarts {
			assert.Greater(t, g.Dist(layout.PlayerStart), threshold, "seed %d", seed)
		}
	}
}
