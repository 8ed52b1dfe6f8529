package game

import "github.com/zvasek/mazehunt/model"

// FindPath is a breadth-first search over the ghost's memory, expanding
// only cells already known to be floor. It returns the shortest move
// sequence to target, or nil when target is out of bounds, not
// memorized as floor, or unreachable through currently known floor.
// Ties break by frontier discovery order, so identical memory always
// yields the same path.
func (g *Ghost) FindPath(target model.Position) []model.Direction {
	if !g.memInBounds(target) || g.Memory[target.Row][target.Col] != M_FLOOR {
		return nil
	}
	if target == g.Pos {
		return []model.Direction{}
	}

	type node struct {
		pos  model.Position
		prev int
		dir  model.Direction
	}
	nodes := []node{{pos: g.Pos, prev: -1, dir: model.NONE}}
	visited := make(map[model.Position]bool)
	visited[g.Pos] = true

	for head := 0; head < len(nodes); head++ {
		cur := nodes[head]
		for _, d := range model.Directions {
			next := cur.pos.Step(d)
			if !g.memInBounds(next) || visited[next] {
				continue
			}
			if g.Memory[next.Row][next.Col] != M_FLOOR {
				continue
			}
			if next == target {
				path := []model.Direction{d}
				for i := head; nodes[i].prev != -1; i = nodes[i].prev {
					path = append(path, nodes[i].dir)
				}
				for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
					path[l], path[r] = path[r], path[l]
				}
				return path
			}
			visited[next] = true
			nodes = append(nodes, node{pos: next, prev: head, dir: d})
		}
	}
	return nil
}
