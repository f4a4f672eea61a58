// Package eval contains position evaluation logic for the search packages.
package eval

import "fmt"

// Score is a signed evaluation from the point of view of the side to
// move: positive favors the mover. It is bounded by the maximum possible
// doubled-stone-count differential (128) plus komi, with a wide margin
// reserved above that for forced win/loss sentinels so that a decisive
// result can be recognized and distinguished from a merely good
// position, the same way a mate score is distinguished from a material
// lead in a chess evaluator.
type Score int16

const (
	// ZeroScore is a neutral, undecided evaluation.
	ZeroScore Score = 0

	// WinScore and LossScore are terminal sentinels: one side has no
	// legal moves and the game has been scored. The distance to the result
	// is folded in by IncrementMateDistance so that a closer forced result
	// sorts ahead of a more distant one.
	WinScore  Score = 30000
	LossScore Score = -WinScore

	// NegInfScore and InfScore bound the alpha-beta search window.
	NegInfScore Score = -30001
	InfScore    Score = 30001

	// InvalidScore marks a cancelled or otherwise unusable search result.
	InvalidScore Score = -32768
)

func (s Score) String() string {
	return fmt.Sprintf("%v", int(s))
}

// Negate flips the score to the opponent's point of view.
func (s Score) Negate() Score {
	return -s
}

// Less reports whether s is a strictly worse outcome than o, from the
// same point of view.
func (s Score) Less(o Score) bool {
	return s < o
}

// IsInvalid reports whether s came from a cancelled search.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// IsDecisive reports whether s represents a forced win or loss rather
// than a material/territory evaluation.
func (s Score) IsDecisive() bool {
	return s >= WinScore-1024 || s <= LossScore+1024
}

// MateDistance returns the number of plies to the forced result encoded
// in a decisive score, if any.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s >= WinScore-1024:
		return int(WinScore - s), true
	case s <= LossScore+1024:
		return int(s - LossScore), true
	default:
		return 0, false
	}
}

// IncrementMateDistance adds one ply of distance to a decisive score as
// it is propagated up the tree, so that a faster forced win is preferred
// over a slower one and a slower forced loss is preferred over a faster
// one.
func IncrementMateDistance(s Score) Score {
	switch {
	case s >= WinScore-1024:
		return s - 1
	case s <= LossScore+1024:
		return s + 1
	default:
		return s
	}
}
