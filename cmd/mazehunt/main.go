package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zvasek/mazehunt/game"
	"github.com/zvasek/mazehunt/maze"
	"github.com/zvasek/mazehunt/model"
	"github.com/zvasek/mazehunt/term"
)

func main() {
	width := flag.Int("width", 21, "maze width (min 7, evens rounded up)")
	height := flag.Int("height", 15, "maze height (min 7, evens rounded up)")
	ghosts := flag.Int("ghosts", 3, "ghost count (max 3)")
	seed := flag.Int64("seed", 0, "maze seed, 0 for random")
	timeout := flag.Duration("timeout", 60*time.Second, "how long to wait for a move before re-rendering")
	logFile := flag.String("log", "", "debug log file (logging is off without it, tcell owns the terminal)")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mazehunt:", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetOutput(io.Discard)
	}

	layout, err := maze.Generate(maze.Config{Width: *width, Height: *height, Ghosts: *ghosts, Seed: *seed})
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazehunt:", err)
		os.Exit(1)
	}
	m, err := model.NewMap(layout.Rows)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazehunt:", err)
		os.Exit(1)
	}

	agents := make([]*game.Ghost, 0, len(layout.GhostStarts))
	for i, start := range layout.GhostStarts {
		var strategy game.Strategy
		switch i % 3 {
		case 0:
			strategy = game.ChaseStrategy{}
		case 1:
			strategy = &game.InterceptStrategy{}
		default:
			strategy = &game.PatrolStrategy{Anchor: start}
		}
		agents = append(agents, game.NewGhost(i, start, m.Rows, m.Cols, strategy, time.Now().UnixNano()+int64(i)))
	}

	screen, err := term.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazehunt:", err)
		os.Exit(1)
	}

	gs := game.NewGameSession(m, layout.PlayerStart, agents, screen, *timeout)
	quit := make(chan struct{})
	go screen.InputLoop(gs, quit)

	outcome := gs.Loop(quit)

	// Fini unblocks PollEvent so the input goroutine cannot leak.
	screen.Close()

	switch outcome {
	case game.OUTCOME_WIN:
		fmt.Printf("CONGRATULATIONS, YOU WON! Final score: %d\n", gs.Player.Score)
	case game.OUTCOME_LOSS:
		fmt.Printf("YOU LOST. Final score: %d\n", gs.Player.Score)
	}
}
