package game

import "github.com/zvasek/mazehunt/model"

// Player holds the player agent's state. LastMove is the last committed
// move and is what the ghosts read to extrapolate; it stays NONE until
// the first successful step. Score never decreases.
type Player struct {
	Pos      model.Position
	LastMove model.Direction
	Score    int
}

func NewPlayer(pos model.Position) *Player {
	return &Player{Pos: pos, LastMove: model.NONE}
}
