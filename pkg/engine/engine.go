// Package engine is a thin facade binding board, search and agent
// together behind a mutex-guarded, logged, versioned API (§5, §6),
// without the FEN/UCI/console/opening-book machinery of this author's
// other engines in the module, which have no home in this game.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/herohde/morlock/pkg/agent"
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// Hash is the transposition table size in MB, shared across searches
	// run through this engine. If zero, the engine uses no table.
	Hash uint
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%v}", o.Hash)
}

// Engine encapsulates one game's state plus the transposition table shared
// by the agents that choose moves for it through Step.
type Engine struct {
	name, author string

	factory search.TranspositionTableFactory
	opts    Options

	s  board.GameState
	tt search.TranspositionTable
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithTable configures the engine to use the given transposition table factory.
func WithTable(factory search.TranspositionTableFactory) Option {
	return func(e *Engine) {
		e.factory = factory
	}
}

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New returns a freshly-reset engine.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:    name,
		author:  author,
		factory: search.NewTranspositionTable,
	}
	for _, fn := range opts {
		fn(e)
	}
	e.Reset(ctx)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// State returns a copy of the current game state.
func (e *Engine) State() board.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s
}

// Reset resets the engine to a fresh starting state.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset, hash=%vMB", e.opts.Hash)

	e.s = board.NewGameState()

	e.tt = search.NoTranspositionTable{}
	if e.opts.Hash > 0 {
		e.tt = e.factory(ctx, uint64(e.opts.Hash)<<20)
	}

	logw.Infof(ctx, "New state: %v", e.s)
}

// Move applies the given move for the side to move.
func (e *Engine) Move(ctx context.Context, move board.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	acc := board.NewMoveAccumulator()
	e.s.GenerateMoves(acc)

	for _, m := range acc.Moves {
		if m != move {
			continue
		}

		e.s = e.s.Apply(m)
		logw.Infof(ctx, "Move %v: %v", m, e.s)
		return nil
	}
	return fmt.Errorf("illegal move: %v", move)
}

// Step asks the given Agent to choose and apply a move for the side to
// move. Returns false if the position is terminal or the Agent is
// HumanKind (in which case the caller must supply the move via Move).
func (e *Engine) Step(ctx context.Context, a agent.Agent) (board.Move, bool, error) {
	e.mu.Lock()
	s := e.s
	tt := e.tt
	e.mu.Unlock()

	a.TT = tt
	mv, ok, err := agent.Step(ctx, a, &s)
	if err != nil || !ok {
		return 0, false, err
	}

	if err := e.Move(ctx, mv); err != nil {
		return 0, false, err
	}
	return mv, true, nil
}

// Terminal reports whether the side to move has no legal placement.
func (e *Engine) Terminal() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s.Terminal()
}

// Result classifies the terminal outcome. Only meaningful once Terminal
// returns true.
func (e *Engine) Result() board.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s.Result()
}
