package game

import "github.com/zvasek/mazehunt/model"

// Strategy decides one step for a ghost each turn. All variants share
// the ghost's memory, vision and pathfinding; they differ only in how
// they pick a target.
type Strategy interface {
	Name() string
	Decide(g *Ghost, gs *GameSession) model.Direction
}

// LEAD_DISTANCE is how many cells an interceptor aims past the player
// along the sightline. HUNT_RADIUS is the known-path length at or below
// which a patroller drops the patrol and hunts.
const (
	LEAD_DISTANCE = 2
	HUNT_RADIUS   = 6
)

// sighting tracks the last place a ghost actually saw the player.
// Shared by the strategies that extrapolate from stale observations.
type sighting struct {
	seen bool
	last model.Position
}

// observe refreshes the sighting from the ghost's vision and returns
// the sightline direction, NONE when the player is not visible.
func (s *sighting) observe(g *Ghost, gs *GameSession) model.Direction {
	dir := g.CheckVision(gs.Player.Pos)
	if dir != model.NONE {
		s.seen = true
		s.last = gs.Player.Pos
	}
	return dir
}

// predict extrapolates the player's next cell from the last sighting
// and the player's last committed move. A player that has not moved
// yet, or a prediction landing on memorized wall or off the map, falls
// back to the last seen cell itself.
func (s *sighting) predict(g *Ghost, gs *GameSession) (predicted, lastKnown model.Position, ok bool) {
	if !s.seen {
		return model.Position{}, model.Position{}, false
	}
	predicted = s.last
	if gs.Player.LastMove != model.NONE {
		next := s.last.Step(gs.Player.LastMove)
		if g.memInBounds(next) && g.Memory[next.Row][next.Col] != M_WALL {
			predicted = next
		}
	}
	return predicted, s.last, true
}

// firstStep takes the path's first move when it is currently legal
// (peers may be standing on it), NONE otherwise.
func firstStep(path, legal []model.Direction) model.Direction {
	if len(path) == 0 {
		return model.NONE
	}
	for _, d := range legal {
		if d == path[0] {
			return d
		}
	}
	return model.NONE
}

func randomMove(g *Ghost, legal []model.Direction) model.Direction {
	if len(legal) == 0 {
		return model.NONE
	}
	return legal[g.rng.Intn(len(legal))]
}

// ChaseStrategy walks straight at the player when seen, otherwise
// prefers stepping into still-unknown cells, otherwise wanders.
type ChaseStrategy struct{}

func (ChaseStrategy) Name() string { return "chase" }

func (ChaseStrategy) Decide(g *Ghost, gs *GameSession) model.Direction {
	legal := g.MovePossibilities(gs.GhostPositions(g))
	if len(legal) == 0 {
		return model.NONE
	}

	if dir := g.CheckVision(gs.Player.Pos); dir != model.NONE {
		for _, d := range legal {
			if d == dir {
				return d
			}
		}
	}

	unexplored := make([]model.Direction, 0, len(legal))
	for _, d := range legal {
		next := g.Pos.Step(d)
		if g.Memory[next.Row][next.Col] == M_UNKNOWN {
			unexplored = append(unexplored, d)
		}
	}
	if len(unexplored) > 0 {
		return randomMove(g, unexplored)
	}
	return randomMove(g, legal)
}

// InterceptStrategy leads the player when visible: it aims a fixed
// distance past the player along the sightline and closes greedily.
// Out of sight it paths toward the predicted next cell of the last
// sighting, falling back to the last seen cell.
type InterceptStrategy struct {
	sighting
}

func (*InterceptStrategy) Name() string { return "intercept" }

func (st *InterceptStrategy) Decide(g *Ghost, gs *GameSession) model.Direction {
	legal := g.MovePossibilities(gs.GhostPositions(g))
	if len(legal) == 0 {
		return model.NONE
	}

	if dir := st.observe(g, gs); dir != model.NONE {
		dr, dc := dir.Delta()
		target := model.Position{
			Row: clamp(gs.Player.Pos.Row+dr*LEAD_DISTANCE, 0, gs.Map.Rows-1),
			Col: clamp(gs.Player.Pos.Col+dc*LEAD_DISTANCE, 0, gs.Map.Cols-1),
		}
		best := legal[0]
		for _, d := range legal[1:] {
			if g.Pos.Step(d).Dist(target) < g.Pos.Step(best).Dist(target) {
				best = d
			}
		}
		return best
	}

	if predicted, lastKnown, ok := st.predict(g, gs); ok {
		if d := firstStep(g.FindPath(predicted), legal); d != model.NONE {
			return d
		}
		if d := firstStep(g.FindPath(lastKnown), legal); d != model.NONE {
			return d
		}
	}
	return randomMove(g, legal)
}

type PatrolMode int

const (
	MODE_PATROL PatrolMode = iota
	MODE_HUNT
)

func (m PatrolMode) Name() string {
	if m == MODE_HUNT {
		return "hunt"
	}
	return "patrol"
}

// PatrolStrategy circles a fixed anchor until a memorized path to the
// player (or to its predicted cell) comes within the hunt radius, then
// chases down that path. The mode is recomputed every turn, with no
// hysteresis: straddling the radius flips it tick to tick.
type PatrolStrategy struct {
	sighting
	Anchor model.Position
	Mode   PatrolMode
}

func (*PatrolStrategy) Name() string { return "patrol" }

func (st *PatrolStrategy) Decide(g *Ghost, gs *GameSession) model.Direction {
	st.observe(g, gs)

	legal := g.MovePossibilities(gs.GhostPositions(g))
	if len(legal) == 0 {
		return model.NONE
	}

	path := g.FindPath(gs.Player.Pos)
	if len(path) == 0 {
		if predicted, _, ok := st.predict(g, gs); ok {
			path = g.FindPath(predicted)
		}
	}
	if len(path) > 0 && len(path) <= HUNT_RADIUS {
		st.Mode = MODE_HUNT
		if d := firstStep(path, legal); d != model.NONE {
			return d
		}
		return randomMove(g, legal)
	}

	st.Mode = MODE_PATROL
	if d := firstStep(g.FindPath(st.Anchor), legal); d != model.NONE {
		return d
	}
	return randomMove(g, legal)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
