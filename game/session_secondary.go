package game

import "fmt"

type TurnState int

const (
	TURN_GHOSTS TurnState = iota
	TURN_PLAYER
)

func (t TurnState) Name() string {
	switch t {
	case TURN_GHOSTS:
		return "ghosts"
	case TURN_PLAYER:
		return "player"
	default:
		return fmt.Sprintf("n/a:%d", int(t))
	}
}

type Outcome int

const (
	OUTCOME_NONE Outcome = iota
	OUTCOME_WIN
	OUTCOME_LOSS
)

func (o Outcome) Name() string {
	switch o {
	case OUTCOME_WIN:
		return "win"
	case OUTCOME_LOSS:
		return "loss"
	default:
		return "none"
	}
}
