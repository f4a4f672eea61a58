package board

// PlayerState is one side's hand, placed pieces and owned territory.
type PlayerState struct {
	Hand     PieceList
	MoveList []Move
	Occupied Bitboard
	Owned    Bitboard
}

// NewPlayerState returns a fresh player state with a full hand and nothing
// placed.
func NewPlayerState() PlayerState {
	return PlayerState{Hand: FullPieceList}
}

// Fork returns a deep copy, safe to mutate independently of p. Needed
// because MoveList is a slice: a plain struct copy would alias the
// backing array and a subsequent append on either copy could corrupt
// the other.
func (p PlayerState) Fork() PlayerState {
	p.MoveList = append([]Move(nil), p.MoveList...)
	return p
}

// removeMove deletes the first move matching pred from the move list and
// clears its mask from Occupied and Owned, returning the piece to hand.
// Reports whether a move was found.
func (p *PlayerState) removeMove(pred func(Move) bool) (Move, bool) {
	for i, m := range p.MoveList {
		if pred(m) {
			p.MoveList = append(p.MoveList[:i], p.MoveList[i+1:]...)
			p.Occupied &^= m.Mask()
			p.Owned &^= m.Mask()
			p.Hand = p.Hand.Add(m.Piece())
			return m, true
		}
	}
	return 0, false
}
