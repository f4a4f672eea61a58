package search

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
)

// Negamax implements alpha-beta pruned negamax search (§4.8). Pseudo-code:
//
// function negamax(node, depth, α, β, color) is
//
//	if depth = 0 or node is terminal then
//	    return color * evaluate(node)
//	value := −∞
//	for each child of node do
//	    value := max(value, −negamax(child, depth − 1, −β, −α, −color))
//	    α := max(α, value)
//	    if α ≥ β then
//	        break (* β cutoff *)
//	return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type Negamax struct {
	Eval eval.Evaluator
}

func (p Negamax) Search(ctx context.Context, sctx *Context, s *board.GameState, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runNegamax{eval: p.Eval, tt: sctx.TT}
	score, moves := run.search(ctx, s, depth, sctx.Alpha, sctx.Beta)
	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, score, moves, nil
}

type runNegamax struct {
	eval  eval.Evaluator
	tt    TranspositionTable
	nodes uint64
}

// search returns the score and principal variation from s.Current's point
// of view.
func (m *runNegamax) search(ctx context.Context, s *board.GameState, depth int, alpha, beta eval.Score) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}

	var best board.Move
	var haveBest bool
	if bound, d, score, move, ok := m.tt.Read(s.Hash); ok {
		best, haveBest = move, true
		if depth <= d && bound == ExactBound {
			return score, nil
		}
	}

	if depth == 0 {
		m.nodes++
		return m.eval.Evaluate(ctx, s), nil
	}

	acc := board.NewMoveAccumulator()
	s.GenerateMoves(acc)

	if len(acc.Moves) == 0 {
		m.nodes++
		return terminalScore(s), nil
	}

	if haveBest {
		board.SortByPriority(acc.Moves, board.First(best, func(board.Move) board.MovePriority { return 0 }))
	}

	m.nodes++

	bound := ExactBound
	var pv []board.Move

	for _, mv := range acc.Moves {
		next := s.Apply(mv)

		score, rem := m.search(ctx, &next, depth-1, beta.Negate(), alpha.Negate())
		score = eval.IncrementMateDistance(score).Negate()

		if alpha.Less(score) {
			alpha = score
			pv = append([]board.Move{mv}, rem...)
		}
		if !alpha.Less(beta) {
			bound = LowerBound
			break // β cutoff
		}
	}

	if bound == ExactBound {
		m.tt.Write(s.Hash, bound, depth, alpha, firstOrZero(pv))
	}
	return alpha, pv
}

// terminalScore scores a position with no legal moves for the side to
// move: a decisive result under §4.7's doubled-stone-count-plus-komi
// scoring, from s.Current's point of view.
func terminalScore(s *board.GameState) eval.Score {
	winner, ok := s.Winner()
	if !ok {
		return eval.ZeroScore
	}
	if winner == s.Current {
		return eval.WinScore
	}
	return eval.LossScore
}
