package demos

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"demohost/internal/ui"
	"demohost/pkg/harness"
)

func init() {
	Register("tictactoe", func(w io.Writer, s Settings) (harness.Scenario, error) {
		t := s.TicTacToe
		if _, err := NewBoard(t.Rows, t.Cols, t.Win); err != nil {
			return nil, err
		}
		return &TicTacToeScenario{Out: w, Settings: t}, nil
	})
}

// TicTacToeScenario animates a game between two computer players on a
// configurable board.
type TicTacToeScenario struct {
	Out      io.Writer
	Settings TicTacToeSettings
}

func (s *TicTacToeScenario) Name() string {
	return "tictactoe"
}

func (s *TicTacToeScenario) Run(ctx context.Context) error {
	cfg := s.Settings
	board, err := NewBoard(cfg.Rows, cfg.Cols, cfg.Win)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	fmt.Fprintf(s.Out, "%dx%d board, %d in a row wins\n", cfg.Rows, cfg.Cols, cfg.Win)
	fmt.Fprint(s.Out, ui.RenderBoard(board.Rows()))

	for player := X; ; player = player.Other() {
		if err := pause(ctx, cfg.Delay); err != nil {
			return err
		}

		move := chooseMove(board, player, rng)
		if err := board.Place(move, player); err != nil {
			return fmt.Errorf("move %c: %w", player, err)
		}
		fmt.Fprintf(s.Out, "\n%c plays row %d, column %d\n", player, move.Row+1, move.Col+1)
		fmt.Fprint(s.Out, ui.RenderBoard(board.Rows()))

		switch {
		case board.WinsAt(move):
			fmt.Fprintf(s.Out, "%c wins!\n", player)
			return nil
		case board.Full():
			fmt.Fprintln(s.Out, "Draw.")
			return nil
		}
	}
}

// chooseMove wins if it can, blocks the opponent if it must, and otherwise
// picks a random free cell. The board must not be full.
func chooseMove(b *Board, me Mark, rng *rand.Rand) Cell {
	free := b.Free()
	for _, c := range free {
		if b.wouldWin(c, me) {
			return c
		}
	}
	for _, c := range free {
		if b.wouldWin(c, me.Other()) {
			return c
		}
	}
	return free[rng.IntN(len(free))]
}
