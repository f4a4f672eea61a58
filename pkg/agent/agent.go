// Package agent implements the tagged Agent choice of §6: a move
// chooser that is either a timed search (three different backends), a
// uniform random pick, or an external human, dispatched uniformly via
// Step.
package agent

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
	"github.com/herohde/morlock/pkg/mcts"
	"github.com/herohde/morlock/pkg/search"
	"github.com/herohde/morlock/pkg/search/searchctl"
)

// Kind names one of the five Agent variants.
type Kind uint8

const (
	// ParallelKind runs the root-split parallel negamax search.
	ParallelKind Kind = iota
	// IterativeKind runs the serial iterative-deepening negamax search.
	IterativeKind
	// MctsKind runs UCT/AMAF tree search.
	MctsKind
	// RandomKind picks uniformly over legal moves.
	RandomKind
	// HumanKind signals that the caller must supply the move externally.
	HumanKind
)

func (k Kind) String() string {
	switch k {
	case ParallelKind:
		return "Parallel"
	case IterativeKind:
		return "Iterative"
	case MctsKind:
		return "Mcts"
	case RandomKind:
		return "Random"
	case HumanKind:
		return "Human"
	default:
		return "?"
	}
}

// Agent is the tagged choice of §6. The zero value is ParallelKind with
// no timeout, which is almost never what a caller wants; use one of the
// constructors below.
type Agent struct {
	Kind    Kind
	Timeout time.Duration // meaningful for ParallelKind, IterativeKind, MctsKind

	Eval eval.Evaluator // evaluator for the negamax-based kinds; defaults to eval.Material{}
	TT   search.TranspositionTable
	MCTS mcts.Options

	Seed int64 // RandomKind's uniform-pick source
}

func Parallel(timeout time.Duration) Agent  { return Agent{Kind: ParallelKind, Timeout: timeout} }
func Iterative(timeout time.Duration) Agent { return Agent{Kind: IterativeKind, Timeout: timeout} }
func Mcts(timeout time.Duration) Agent      { return Agent{Kind: MctsKind, Timeout: timeout} }
func Random(seed int64) Agent               { return Agent{Kind: RandomKind, Seed: seed} }
func Human() Agent                          { return Agent{Kind: HumanKind} }

func (a Agent) String() string {
	switch a.Kind {
	case ParallelKind, IterativeKind, MctsKind:
		return fmt.Sprintf("%v(%v)", a.Kind, a.Timeout)
	default:
		return a.Kind.String()
	}
}

func (a Agent) evaluator() eval.Evaluator {
	if a.Eval != nil {
		return a.Eval
	}
	return eval.Material{}
}

func (a Agent) tt() search.TranspositionTable {
	if a.TT != nil {
		return a.TT
	}
	return search.NoTranspositionTable{}
}

// Step chooses a move for the side to move in s, or returns false if the
// position is terminal (or, for HumanKind, always false: the caller is
// expected to supply the move through some other channel).
func Step(ctx context.Context, a Agent, s *board.GameState) (board.Move, bool, error) {
	switch a.Kind {
	case ParallelKind:
		return stepSearch(ctx, search.Parallel{Eval: a.evaluator()}, a, s)
	case IterativeKind:
		return stepSearch(ctx, search.Negamax{Eval: a.evaluator()}, a, s)
	case MctsKind:
		return stepMcts(ctx, a, s)
	case RandomKind:
		return stepRandom(a, s)
	case HumanKind:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("unknown agent kind %v", a.Kind)
	}
}

func stepSearch(ctx context.Context, root search.Search, a Agent, s *board.GameState) (board.Move, bool, error) {
	if s.Terminal() {
		return 0, false, nil
	}

	wctx := ctx
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	launcher := &searchctl.Iterative{Root: root}
	opt := searchctl.Options{}
	if a.Timeout > 0 {
		opt.TimeControl = lang.Some(searchctl.TimeControl{Timeout: a.Timeout})
	}

	handle, out := launcher.Launch(wctx, s, a.tt(), opt)

	var pv search.PV
	for p := range out {
		pv = p
	}
	handle.Halt()

	logw.Debugf(ctx, "Agent %v chose %v", a, pv)

	if len(pv.Moves) == 0 {
		return 0, false, nil
	}
	return pv.Moves[0], true, nil
}

func stepMcts(ctx context.Context, a Agent, s *board.GameState) (board.Move, bool, error) {
	budget := a.Timeout
	if budget <= 0 {
		budget = time.Second
	}
	mv, ok := mcts.Search(ctx, s, budget, a.MCTS)
	return mv, ok, nil
}

func stepRandom(a Agent, s *board.GameState) (board.Move, bool, error) {
	moves := s.Moves()
	if len(moves) == 0 {
		return 0, false, nil
	}
	rng := rand.New(rand.NewSource(a.Seed))
	return moves[rng.Intn(len(moves))], true, nil
}
