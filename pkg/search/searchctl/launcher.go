// Package searchctl contains the iterative-deepening search driver and
// its dynamic options, shared by every Agent that runs a fixed-depth
// search.Search implementation to completion or timeout.
package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/search"
)

// Options hold dynamic search options. The caller may change these on a
// particular search.
type Options struct {
	// DepthLimit, if set, limits the search to the given ply depth. Zero means no limit.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, limits the search to the given timeout.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.DepthLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		ret = append(ret, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Launcher manages iterative-deepening searches over a game state. The
// evaluator's noise, if any, is baked into the search.Search's
// eval.Evaluator rather than threaded through Launch separately -- the
// decorator-based eval.Random wraps whichever evaluator is in play, so
// there is nothing left for Launch itself to vary per call.
type Launcher interface {
	// Launch starts a new search from the given state. It expects an
	// exclusive (forked) state and returns a PV channel for
	// iteratively deeper searches. If the search is exhausted, the
	// channel is closed. The search can be stopped at any time.
	Launch(ctx context.Context, s *board.GameState, tt search.TranspositionTable, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the caller manage a running search. The caller is expected
// to spin off searches with forked states and close/abandon them when no
// longer needed. This design keeps stopping conditions and
// re-synchronization trivial.
type Handle interface {
	// Halt halts the search, if running. Idempotent.
	Halt() search.PV
}
