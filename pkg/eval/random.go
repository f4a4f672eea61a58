package eval

import (
	"context"
	"math/rand"

	"github.com/herohde/morlock/pkg/board"
)

// Random is a small noise generator layered on top of another evaluator,
// so that otherwise-tied positions don't always resolve the same way.
// The limit specifies the range [-limit/2; limit-1-limit/2] of score units
// added.
// The zero value always returns zero.
type Random struct {
	eval  Evaluator
	rand  *rand.Rand
	limit int
}

// NewRandom wraps eval with noise in the range [-limit/2; limit-1-limit/2].
func NewRandom(eval Evaluator, limit int, seed int64) Random {
	return Random{
		eval:  eval,
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, s *board.GameState) Score {
	base := Score(0)
	if n.eval != nil {
		base = n.eval.Evaluate(ctx, s)
	}
	if n.limit <= 0 {
		return base
	}
	return base + Score(n.rand.Intn(n.limit)-n.limit/2)
}
