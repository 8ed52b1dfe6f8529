package game

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/zvasek/mazehunt/model"
)

type MemCell int

const (
	M_UNKNOWN MemCell = iota
	M_FLOOR
	M_WALL
)

// VISION_RANGE bounds every vision ray, in cells.
const VISION_RANGE = 4

// Ghost is one pursuer: a position, a private append-only memory of the
// map, and a behavioral strategy. Memory starts all-unknown and is only
// ever written from the ghost's own observations. It is never a copy
// of ground truth and entries may stay wrong until re-observed.
type Ghost struct {
	Id       int
	Pos      model.Position
	Memory   [][]MemCell
	Strategy Strategy

	rng *rand.Rand
}

func NewGhost(id int, pos model.Position, rows, cols int, strategy Strategy, seed int64) *Ghost {
	memory := make([][]MemCell, rows)
	for r := range memory {
		memory[r] = make([]MemCell, cols)
	}
	return &Ghost{
		Id:       id,
		Pos:      pos,
		Memory:   memory,
		Strategy: strategy,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (g *Ghost) memInBounds(p model.Position) bool {
	return p.Row >= 0 && p.Row < len(g.Memory) && p.Col >= 0 && p.Col < len(g.Memory[0])
}

// UpdateMemory records the ghost's own cell as floor and inspects the
// four orthogonal neighbours against ground truth. Out-of-bounds
// neighbours are skipped, not written.
func (g *Ghost) UpdateMemory(m *model.Map) {
	g.Memory[g.Pos.Row][g.Pos.Col] = M_FLOOR
	for _, d := range model.Directions {
		next := g.Pos.Step(d)
		if !m.InBounds(next) {
			continue
		}
		if m.Tiles[next.Row][next.Col].OriginalWall {
			g.Memory[next.Row][next.Col] = M_WALL
		} else {
			g.Memory[next.Row][next.Col] = M_FLOOR
		}
	}
}

// CheckVision walks a ray in each direction, up to VISION_RANGE cells,
// stopping early at the map edge or a memorized wall, and returns the
// direction whose ray hits target first. Vision is filtered through the
// ghost's own memory, never through ground truth: an unlearned wall
// does not block, a memorized one always does.
func (g *Ghost) CheckVision(target model.Position) model.Direction {
	for _, d := range model.Directions {
		p := g.Pos
		for i := 0; i < VISION_RANGE; i++ {
			p = p.Step(d)
			if !g.memInBounds(p) {
				break
			}
			if g.Memory[p.Row][p.Col] == M_WALL {
				break
			}
			if p == target {
				return d
			}
		}
	}
	return model.NONE
}

// MovePossibilities enumerates the currently legal steps: in bounds,
// not memorized as wall, and not occupied by a peer ghost. Unknown
// cells are fair game, the ghost may try and learn.
func (g *Ghost) MovePossibilities(peers []model.Position) []model.Direction {
	possible := make([]model.Direction, 0, 4)
	for _, d := range model.Directions {
		next := g.Pos.Step(d)
		if !g.memInBounds(next) {
			continue
		}
		if g.Memory[next.Row][next.Col] == M_WALL {
			continue
		}
		occupied := false
		for _, p := range peers {
			if p == next {
				occupied = true
				break
			}
		}
		if !occupied {
			possible = append(possible, d)
		}
	}
	return possible
}

// Move runs one full ghost turn: refresh memory, ask the strategy for a
// direction, then attempt the step against ground truth. A move into a
// true wall the ghost had not memorized yet writes the correction into
// memory and degrades to a no-op. Landing on the player's cell is a
// capture.
func (g *Ghost) Move(gs *GameSession) bool {
	g.UpdateMemory(gs.Map)

	dir := g.Strategy.Decide(g, gs)
	if dir == model.NONE {
		return false
	}
	next := g.Pos.Step(dir)
	if !gs.Map.InBounds(next) {
		return false
	}
	if gs.Map.MovementBlocked(g.Pos, next) {
		g.Memory[next.Row][next.Col] = M_WALL
		log.WithFields(log.Fields{
			"session": gs.Id,
			"ghost":   g.Id,
			"row":     next.Row,
			"col":     next.Col,
		}).Debug("ghost learned wall the hard way")
		return false
	}
	g.Pos = next
	return g.Pos == gs.Player.Pos
}
