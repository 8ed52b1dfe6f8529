package maze

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/zvasek/mazehunt/model"
)

const (
	// MIN_DIM is the smallest usable maze side. Below that the odd
	// lattice degenerates to a single cell.
	MIN_DIM = 7
	// MAX_GHOSTS caps how many pursuer starts a layout hands out.
	MAX_GHOSTS = 3
)

type Config struct {
	Width, Height int

	// Ghosts is the requested pursuer count, clamped to [1,MAX_GHOSTS].
	// Zero means MAX_GHOSTS.
	Ghosts int

	// Seed 0 derives one from the wall clock.
	Seed int64
}

type Layout struct {
	Rows        []string
	PlayerStart model.Position
	GhostStarts []model.Position
}

// Generate carves a fully connected maze with randomized frontier
// expansion on the odd-coordinate lattice: open a random odd seed cell,
// then repeatedly pick a random frontier cell two steps from an open
// one, open it, and open a single connector toward a random already
// open two-step neighbour. The result is loopless (exactly one path
// between any two open cells) and every open cell becomes a pellet.
func Generate(cfg Config) (*Layout, error) {
	if cfg.Width < MIN_DIM || cfg.Height < MIN_DIM {
		return nil, fmt.Errorf("maze: dimensions %dx%d below minimum %dx%d", cfg.Width, cfg.Height, MIN_DIM, MIN_DIM)
	}
	width := ensureOdd(cfg.Width)
	height := ensureOdd(cfg.Height)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = model.SYM_WALL
		}
	}

	type cell struct{ row, col int }
	steps := [4]cell{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	inLattice := func(r, c int) bool {
		return r > 0 && r < height-1 && c > 0 && c < width-1
	}

	seedRow := 1 + 2*rng.Intn((height-1)/2)
	seedCol := 1 + 2*rng.Intn((width-1)/2)
	grid[seedRow][seedCol] = model.SYM_EMPTY

	frontier := make([]cell, 0)
	queued := make(map[cell]bool)
	push := func(r, c int) {
		for _, s := range steps {
			nr, nc := r+s.row, c+s.col
			next := cell{nr, nc}
			if inLattice(nr, nc) && grid[nr][nc] == model.SYM_WALL && !queued[next] {
				frontier = append(frontier, next)
				queued[next] = true
			}
		}
	}
	push(seedRow, seedCol)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		cur := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		grid[cur.row][cur.col] = model.SYM_EMPTY

		open := make([]cell, 0, 4)
		for _, s := range steps {
			nr, nc := cur.row+s.row, cur.col+s.col
			if inLattice(nr, nc) && grid[nr][nc] == model.SYM_EMPTY {
				open = append(open, cell{nr, nc})
			}
		}
		if len(open) > 0 {
			n := open[rng.Intn(len(open))]
			grid[(cur.row+n.row)/2][(cur.col+n.col)/2] = model.SYM_EMPTY
		}

		push(cur.row, cur.col)
	}

	// pelletize every opened cell
	openCells := make([]model.Position, 0)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if grid[r][c] == model.SYM_EMPTY {
				grid[r][c] = model.SYM_PELLET
				openCells = append(openCells, model.Position{Row: r, Col: c})
			}
		}
	}

	player, ghosts := startPositions(rng, cfg.Ghosts, width, height, openCells)

	rows := make([]string, height)
	for r := range grid {
		rows[r] = string(grid[r])
	}
	return &Layout{Rows: rows, PlayerStart: player, GhostStarts: ghosts}, nil
}

// startPositions picks a random open cell for the player, then ghost
// starts among cells whose Manhattan distance from the player exceeds
// the safety threshold (w+h)/4. When too few qualify it falls back to
// the farthest open cells overall.
func startPositions(rng *rand.Rand, ghosts, width, height int, open []model.Position) (model.Position, []model.Position) {
	if ghosts <= 0 || ghosts > MAX_GHOSTS {
		ghosts = MAX_GHOSTS
	}
	if len(open) == 0 {
		return model.Position{Row: height / 2, Col: width / 2}, []model.Position{{Row: 1, Col: 1}}
	}

	pi := rng.Intn(len(open))
	player := open[pi]
	rest := make([]model.Position, 0, len(open)-1)
	rest = append(rest, open[:pi]...)
	rest = append(rest, open[pi+1:]...)

	minDist := (width + height) / 4
	safe := make([]model.Position, 0)
	for _, p := range rest {
		if p.Dist(player) > minDist {
			safe = append(safe, p)
		}
	}
	if len(safe) < ghosts {
		// not enough safe cells: fall back to the farthest ones overall
		sort.Slice(rest, func(i, j int) bool {
			return rest[i].Dist(player) > rest[j].Dist(player)
		})
		safe = rest
		if len(safe) > ghosts {
			safe = safe[:ghosts]
		}
	}

	if ghosts > len(safe) {
		ghosts = len(safe)
	}
	picked := make([]model.Position, 0, ghosts)
	for _, i := range rng.Perm(len(safe))[:ghosts] {
		picked = append(picked, safe[i])
	}
	return player, picked
}

func ensureOdd(v int) int {
	if v%2 == 0 {
		return v + 1
	}
	return v
}
