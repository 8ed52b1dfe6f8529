package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/zvasek/mazehunt/model"
)

// Renderer is the narrow surface the session needs from a display: one
// glyph grid with overlays, the score, and whose turn it is.
type Renderer interface {
	Render(grid [][]rune, score int, turn TurnState)
}

// GameSession drives the whole game: the two-phase turn loop, the
// single-slot input handoff from the key producer, and the shared move
// legality rules. All game state is mutated only by the Loop goroutine;
// the producer touches nothing but TrySend.
type GameSession struct {
	Id       uuid.UUID
	Map      *model.Map
	Player   *Player
	Ghosts   []*Ghost
	Renderer Renderer

	// Timeout bounds the wait for a player move. Expiry is a no-op
	// re-loop, not a forfeited turn.
	Timeout time.Duration

	moves chan model.Direction

	mu    sync.RWMutex
	turn  TurnState
	legal []model.Direction
}

func NewGameSession(m *model.Map, playerStart model.Position, ghosts []*Ghost, renderer Renderer, timeout time.Duration) *GameSession {
	gs := &GameSession{
		Id:       uuid.New(),
		Map:      m,
		Player:   NewPlayer(playerStart),
		Ghosts:   ghosts,
		Renderer: renderer,
		Timeout:  timeout,
		moves:    make(chan model.Direction, 1),
		turn:     TURN_GHOSTS,
	}
	log.WithFields(log.Fields{
		"session": gs.Id,
		"rows":    m.Rows,
		"cols":    m.Cols,
		"ghosts":  len(ghosts),
		"pellets": m.PelletCount(),
	}).Info("session created")
	return gs
}

func (gs *GameSession) Turn() TurnState {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.turn
}

// PossibleMoves is the legal-move snapshot published for the input
// producer. Recomputed every time the session enters TURN_PLAYER.
func (gs *GameSession) PossibleMoves() []model.Direction {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	out := make([]model.Direction, len(gs.legal))
	copy(out, gs.legal)
	return out
}

// TrySend hands a move to the session without blocking. The move is
// silently dropped when it is not the player's turn, the direction is
// not currently legal, or the slot is already full.
func (gs *GameSession) TrySend(d model.Direction) bool {
	gs.mu.RLock()
	ok := gs.turn == TURN_PLAYER
	if ok {
		ok = false
		for _, l := range gs.legal {
			if l == d {
				ok = true
				break
			}
		}
	}
	gs.mu.RUnlock()
	if !ok {
		return false
	}
	select {
	case gs.moves <- d:
		return true
	default:
		return false
	}
}

func (gs *GameSession) setTurn(t TurnState) {
	gs.mu.Lock()
	gs.turn = t
	if t == TURN_PLAYER {
		gs.legal = gs.playerMoves()
	} else {
		gs.legal = nil
	}
	gs.mu.Unlock()
}

// playerMoves enumerates the player's legal directions under the shared
// map rule. Caller holds the lock.
func (gs *GameSession) playerMoves() []model.Direction {
	moves := make([]model.Direction, 0, 4)
	for _, d := range model.Directions {
		if !gs.Map.MovementBlocked(gs.Player.Pos, gs.Player.Pos.Step(d)) {
			moves = append(moves, d)
		}
	}
	return moves
}

// GhostPositions lists where every ghost except the given one stands.
// Strategies use it to keep ghosts from stacking on one cell.
func (gs *GameSession) GhostPositions(except *Ghost) []model.Position {
	out := make([]model.Position, 0, len(gs.Ghosts))
	for _, g := range gs.Ghosts {
		if g != except {
			out = append(out, g.Pos)
		}
	}
	return out
}

// GhostTurn moves every ghost in fixed order. The first capture ends
// the phase immediately; the remaining ghosts do not act that tick.
func (gs *GameSession) GhostTurn() bool {
	for _, g := range gs.Ghosts {
		if g.Move(gs) {
			log.WithFields(log.Fields{
				"session":  gs.Id,
				"ghost":    g.Id,
				"strategy": g.Strategy.Name(),
			}).Info("player caught")
			return true
		}
	}
	return false
}

// PlayerTurn applies one player move under the shared legality rule.
// Illegal moves are absorbed as no-ops. Returns true when the move
// lands on a ghost.
func (gs *GameSession) PlayerTurn(d model.Direction) bool {
	next := gs.Player.Pos.Step(d)
	if gs.Map.MovementBlocked(gs.Player.Pos, next) {
		return false
	}
	gs.Player.Pos = next
	gs.Player.LastMove = d
	for _, g := range gs.Ghosts {
		if g.Pos == next {
			log.WithFields(log.Fields{"session": gs.Id, "ghost": g.Id}).Info("player walked into ghost")
			return true
		}
	}
	if gs.Map.RemovePellet(next) {
		gs.Player.Score++
	}
	return false
}

func (gs *GameSession) render() {
	if gs.Renderer == nil {
		return
	}
	grid := gs.Map.Render(gs.Player.Pos, gs.ghostOverlay())
	gs.Renderer.Render(grid, gs.Player.Score, gs.Turn())
}

func (gs *GameSession) ghostOverlay() []model.Position {
	out := make([]model.Position, len(gs.Ghosts))
	for i, g := range gs.Ghosts {
		out[i] = g.Pos
	}
	return out
}

// Loop runs the session to its outcome. Victory is checked once per
// full cycle: the session is won the moment no pellet is left anywhere.
// Closing quit aborts with OUTCOME_NONE; the caller is responsible for
// stopping the input producer afterwards.
func (gs *GameSession) Loop(quit <-chan struct{}) Outcome {
	log.WithField("session", gs.Id).Info("loop starting")
	for {
		if gs.Map.PelletCount() == 0 {
			gs.render()
			log.WithFields(log.Fields{"session": gs.Id, "score": gs.Player.Score}).Info("all pellets eaten")
			return OUTCOME_WIN
		}

		if gs.Turn() == TURN_GHOSTS {
			if gs.GhostTurn() {
				gs.render()
				return OUTCOME_LOSS
			}
			gs.setTurn(TURN_PLAYER)
		}
		gs.render()

		select {
		case d := <-gs.moves:
			log.WithFields(log.Fields{"session": gs.Id, "move": d.Name()}).Debug("player move")
			if gs.PlayerTurn(d) {
				gs.render()
				return OUTCOME_LOSS
			}
			gs.setTurn(TURN_GHOSTS)
		case <-time.After(gs.Timeout):
			// no move in time: re-check victory, re-render, wait again
		case <-quit:
			log.WithField("session", gs.Id).Info("loop aborted")
			return OUTCOME_NONE
		}
	}
}
