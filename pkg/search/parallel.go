package search

import (
	"context"
	"runtime"
	"sync"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
)

// Parallel implements the root-split variant of §4.8/§5: the root move
// set is partitioned across a pool of workers, each running a full
// alpha-beta negamax below its own subset of root children, sharing one
// transposition table. Workers do not share an alpha-beta window with
// each other -- only the serial driver's re-use of the TT across
// iterative-deepening calls captures the benefit a single-threaded
// search would get from tightening alpha as better root moves are
// found -- which keeps the result deterministic regardless of
// scheduling: every worker independently evaluates its assigned root
// children against the same initial window and nodes are summed at the
// end.
//
// Ties are broken by Zobrist hash of the resulting position, lowest
// first, so that two runs presented with the same position produce the
// same choice regardless of which worker happened to finish which
// child first (§5).
type Parallel struct {
	Eval    eval.Evaluator
	Workers int // 0 selects runtime.GOMAXPROCS(0)
}

func (p Parallel) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (p Parallel) Search(ctx context.Context, sctx *Context, s *board.GameState, depth int) (uint64, eval.Score, []board.Move, error) {
	acc := board.NewMoveAccumulator()
	s.GenerateMoves(acc)

	if len(acc.Moves) == 0 {
		return 0, terminalScore(s), nil, nil
	}
	if depth == 0 {
		// No depth budget to split across workers; fall back to a plain
		// static evaluation of the root, as the serial search would.
		score := p.Eval.Evaluate(ctx, s)
		return 1, score, nil, nil
	}

	type result struct {
		move  board.Move
		hash  board.ZobristHash
		score eval.Score
		pv    []board.Move
		nodes uint64
	}

	jobs := make(chan board.Move, len(acc.Moves))
	for _, mv := range acc.Moves {
		jobs <- mv
	}
	close(jobs)

	results := make(chan result, len(acc.Moves))

	n := p.workers()
	if n > len(acc.Moves) {
		n = len(acc.Moves)
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()

			run := &runNegamax{eval: p.Eval, tt: sctx.TT}
			for mv := range jobs {
				before := run.nodes
				next := s.Apply(mv)

				score, rem := run.search(ctx, &next, depth-1, sctx.Beta.Negate(), sctx.Alpha.Negate())
				score = eval.IncrementMateDistance(score).Negate()

				results <- result{move: mv, hash: next.Hash, score: score, pv: append([]board.Move{mv}, rem...), nodes: run.nodes - before}
			}
		}()
	}
	wg.Wait()
	close(results)

	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}

	var (
		nodes    uint64
		best     result
		haveBest bool
	)
	for r := range results {
		nodes += r.nodes
		switch {
		case !haveBest:
			best, haveBest = r, true
		case best.score.Less(r.score):
			best = r
		case r.score == best.score && r.hash < best.hash:
			best = r
		}
	}

	if sctx.TT != nil {
		sctx.TT.Write(s.Hash, ExactBound, depth, best.score, best.move)
	}
	return nodes, best.score, best.pv, nil
}
