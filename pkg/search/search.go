// Package search implements the shared search capability set (§9 design
// notes): a transposition table, an alpha-beta negamax core, and a
// parallel root-split variant, all operating on *board.GameState. The
// iterative-deepening driver lives in the sibling searchctl package; the
// UCT tree search lives in the sibling mcts package. Both consume the
// same Search interface defined here.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
)

// ErrHalted indicates a search was stopped before completion, either by
// context cancellation or by Handle.Halt.
var ErrHalted = errors.New("search halted")

// Context carries the dynamic, per-call parameters of one fixed-depth
// search: the alpha-beta window and the transposition table to consult.
// Separate from Options (searchctl), which governs the iterative-deepening
// driver across many such calls.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
}

// Search runs one fixed-depth search from the given state and returns the
// node count, the score from the mover's point of view, and the
// principal variation found. It returns ErrHalted if ctx was cancelled
// before the search completed.
type Search interface {
	Search(ctx context.Context, sctx *Context, s *board.GameState, depth int) (uint64, eval.Score, []board.Move, error)
}

// PV is the result of one iterative-deepening iteration.
type PV struct {
	Depth int
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
	Hash  float64 // transposition table utilization, [0;1]
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v", p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), p.Moves)
}

func firstOrZero(pv []board.Move) board.Move {
	if len(pv) == 0 {
		return 0
	}
	return pv[0]
}
