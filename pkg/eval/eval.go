// Package eval contains state evaluation logic used by the search packages.
package eval

import (
	"context"

	"github.com/herohde/morlock/pkg/board"
)

// Evaluator is a static state evaluator, scored from the point of view of
// the side to move.
type Evaluator interface {
	Evaluate(ctx context.Context, s *board.GameState) Score
}

// Material is the corrected evaluator of §4.8: the doubled stone-count
// differential, black minus white, with White's komi folded in, negated
// onto the mover's point of view. One source variant of this evaluator
// reads black's popcount twice -- once mislabeled w -- producing an
// always-zero differential; this is that bug, fixed.
type Material struct{}

func (Material) Evaluate(ctx context.Context, s *board.GameState) Score {
	black := s.Score(board.Black)
	white := s.Score(board.White)

	diff := Score(black - white)
	if s.Current == board.White {
		diff = diff.Negate()
	}
	return diff
}
