package term

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"
	log "github.com/sirupsen/logrus"

	"github.com/zvasek/mazehunt/game"
	"github.com/zvasek/mazehunt/model"
)

// CELL_WIDTH is the terminal columns per map cell. The player and
// ghost glyphs are double-width runes, so every cell gets two columns
// and narrow glyphs are padded.
const CELL_WIDTH = 2

// Screen renders the glyph grid on a tcell terminal and produces the
// player's directional input.
type Screen struct {
	tc tcell.Screen
}

func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.HideCursor()
	tc.Clear()
	return &Screen{tc: tc}, nil
}

// Close restores the terminal. It also unblocks PollEvent, which is how
// InputLoop gets stopped after the session loop exits.
func (sc *Screen) Close() {
	sc.tc.Fini()
}

// Render overwrites the previous frame in place instead of clearing,
// so cells must be padded: a narrow glyph replacing a double-width one
// has to blank the second column itself.
func (sc *Screen) Render(grid [][]rune, score int, turn game.TurnState) {
	for r, row := range grid {
		x := 0
		for _, glyph := range row {
			sc.tc.SetContent(x, r, glyph, nil, styleFor(glyph))
			if runewidth.RuneWidth(glyph) < CELL_WIDTH {
				sc.tc.SetContent(x+1, r, ' ', nil, tcell.StyleDefault)
			}
			x += CELL_WIDTH
		}
	}
	sc.drawText(0, len(grid)+1, "Score: "+strconv.Itoa(score)+"   ")
	sc.drawText(0, len(grid)+2, "Turn: "+turn.Name()+"  ")
	sc.tc.Show()
}

func (sc *Screen) drawText(x, y int, s string) {
	for _, r := range s {
		sc.tc.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
}

func styleFor(glyph rune) tcell.Style {
	switch glyph {
	case model.GLYPH_WALL_V, model.GLYPH_WALL_H, model.GLYPH_WALL_X:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case model.GLYPH_PELLET:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault
	}
}

// InputLoop is the producer side of the input handoff: it polls key
// events, translates arrows and WASD into the four-direction
// vocabulary, and forwards them through TrySend, which drops anything
// out of turn, illegal, or arriving while the slot is full. q, Esc and
// Ctrl-C close quit. Returns when the screen is finalized.
func (sc *Screen) InputLoop(gs *game.GameSession, quit chan<- struct{}) {
	defer log.Debug("input loop ended")
	for {
		ev := sc.tc.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			sc.tc.Sync()
		case *tcell.EventKey:
			d := model.NONE
			switch ev.Key() {
			case tcell.KeyUp:
				d = model.UP
			case tcell.KeyDown:
				d = model.DOWN
			case tcell.KeyLeft:
				d = model.LEFT
			case tcell.KeyRight:
				d = model.RIGHT
			case tcell.KeyEscape, tcell.KeyCtrlC:
				close(quit)
				return
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'w', 'W':
					d = model.UP
				case 's', 'S':
					d = model.DOWN
				case 'a', 'A':
					d = model.LEFT
				case 'd', 'D':
					d = model.RIGHT
				case 'q', 'Q':
					close(quit)
					return
				}
			}
			if d != model.NONE {
				gs.TrySend(d)
			}
		}
	}
}
