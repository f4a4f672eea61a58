package board

import "fmt"

// GameState is the full game state: whose turn it is, the board, the
// running Zobrist hash, and whether the move that produced this state
// captured opponent pieces. It is the unit the search packages operate on.
type GameState struct {
	Current     Color
	Board       Board
	Hash        ZobristHash
	CaptureFlag bool
}

// NewGameState returns the fresh starting state: an empty board, Black to
// move, hash zero.
func NewGameState() GameState {
	return GameState{Current: Black, Board: NewBoard()}
}

// Apply returns the state after placing m for the side to move. The
// receiver is left untouched: the board is forked, move lists included,
// before it is mutated.
func (s GameState) Apply(m Move) GameState {
	next := s
	next.Board = s.Board.Fork()

	color := s.Current
	captured := next.Board.Place(color, m)
	next.CaptureFlag = captured

	if captured {
		next.Hash = RehashGameState(&next.Board)
	} else {
		next.Hash = s.Hash ^ ZobristTab.Key(m.LUTEntry(), color)
	}
	next.Current = color.Opponent()
	return next
}

// GenerateMoves appends every legal move for the side to move to the
// visitor. Convenience wrapper around Board.GenerateMoves using the
// current side to move.
func (s *GameState) GenerateMoves(v MoveVisitor) {
	s.Board.GenerateMoves(s.Current, v)
}

// Moves returns every legal move for the side to move, in generator
// order. Truncates nothing; callers that repeatedly reuse a buffer should
// call MoveAccumulator directly instead.
func (s *GameState) Moves() []Move {
	acc := NewMoveAccumulator()
	s.GenerateMoves(acc)
	return acc.Moves
}

// Terminal reports whether the side to move has no legal placement.
func (s *GameState) Terminal() bool {
	var v HasMoves
	s.GenerateMoves(&v)
	return !v.Found
}

// Score returns a side's doubled stone count, with White's komi bonus
// folded in (§4.7).
func (s *GameState) Score(c Color) int {
	score := s.Board.player(c).Occupied.PopCount() * 2
	if c == White {
		score += Komi
	}
	return score
}

// Winner returns the color with the higher score, or false if the two
// scores are tied (a draw, under the minimax convention the caller may
// instead report the side to move as the winner).
func (s *GameState) Winner() (Color, bool) {
	black, white := s.Score(Black), s.Score(White)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return 0, false
	}
}

// Result classifies the terminal outcome. Only meaningful when Terminal()
// is true.
func (s *GameState) Result() Result {
	if c, ok := s.Winner(); ok {
		if c == Black {
			return BlackWins
		}
		return WhiteWins
	}
	return Draw
}

func (s GameState) String() string {
	return fmt.Sprintf("%v to move, hash=%016x, capture=%v\n%v", s.Current, uint64(s.Hash), s.CaptureFlag, s.Board.Dump())
}
