package board

import (
	"math/bits"
	"strings"
)

// PieceList is a 12-bit set of physical pieces still held (bit i set means
// PieceID(i) is in hand).
type PieceList uint16

// FullPieceList holds all 12 physical pieces.
const FullPieceList PieceList = (1 << NumPieces) - 1

func (l PieceList) Holding(p PieceID) bool {
	return l&(1<<p) != 0
}

func (l PieceList) Add(p PieceID) PieceList {
	return l | (1 << p)
}

func (l PieceList) Remove(p PieceID) PieceList {
	return l &^ (1 << p)
}

func (l PieceList) IsEmpty() bool {
	return l == 0
}

// Available returns the pieces that may legally be considered for
// placement this turn: just the Boss while it is still held (the Boss
// must be placed first), otherwise every held piece.
func (l PieceList) Available() PieceList {
	if l.Holding(PieceBoss) {
		return PieceList(1 << PieceBoss)
	}
	return l
}

// Pieces returns the held pieces in increasing index order.
func (l PieceList) Pieces() []PieceID {
	out := make([]PieceID, 0, bits.OnesCount16(uint16(l)))
	for x := l; x != 0; x &= x - 1 {
		out = append(out, PieceID(bits.TrailingZeros16(uint16(x))))
	}
	return out
}

func (l PieceList) String() string {
	var sb strings.Builder
	for _, p := range l.Pieces() {
		if sb.Len() > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(p.TypeID().String())
	}
	return sb.String()
}

// pieceSeenHash is a 10-bit set of piece TYPES already enumerated during
// move generation this call, used to dedupe the two physical pieces that
// share a type (Koubaku3, Kunoji1).
type pieceSeenHash uint16

func (h pieceSeenHash) seen(t PieceTypeID) bool {
	return h&(1<<t) != 0
}

func (h pieceSeenHash) mark(t PieceTypeID) pieceSeenHash {
	return h | (1 << t)
}
