// Package board implements the cat-placement board game: bitboard
// representation, the piece-placement table, ray tracking, territory
// capture, and Zobrist hashing.
package board

import (
	"strings"
)

// Board composes both sides' player states, the set of placed Bosses, and
// the live aggregate sight-line state.
type Board struct {
	Black, White PlayerState
	Boss         Bitboard
	Rays         Rays
}

// NewBoard returns an empty starting board.
func NewBoard() Board {
	return Board{Black: NewPlayerState(), White: NewPlayerState()}
}

// Fork returns a deep copy, safe to mutate independently of b.
func (b Board) Fork() Board {
	b.Black = b.Black.Fork()
	b.White = b.White.Fork()
	return b
}

func (b *Board) player(c Color) *PlayerState {
	if c == Black {
		return &b.Black
	}
	return &b.White
}

// Occupied returns the union of both sides' occupied squares.
func (b *Board) Occupied() Bitboard {
	return b.Black.Occupied | b.White.Occupied
}

// Place applies m for color c. Returns true iff the placement captured one
// or more opponent pieces.
func (b *Board) Place(c Color, m Move) bool {
	self := b.player(c)
	other := b.player(c.Opponent())

	self.Hand = self.Hand.Remove(m.Piece())
	self.MoveList = append(self.MoveList, m)
	self.Occupied |= m.Mask()

	if m.Type() == Boss {
		b.Boss |= m.Mask()
	}

	captured := applyTerritory(self, other, m)

	if captured {
		// A capture removes opponent moves from the board, so any ray they
		// cast may no longer be live. Cheaper to redraw from scratch than
		// to track per-square reference counts.
		b.redrawRays()
	} else if m.Type() == Boss {
		b.drawBossRays(m)
	} else {
		b.Rays.Draw(m.GazeMask().ToSquare(), m.Orientation())
	}
	return captured
}

// redrawRays rebuilds Rays from scratch by re-emitting every placed
// piece's ray(s), in both players' move lists.
func (b *Board) redrawRays() {
	b.Rays.Clear()
	for c := ZeroColor; c < NumColors; c++ {
		for _, m := range b.player(c).MoveList {
			if m.Type() == Boss {
				b.drawBossRays(m)
			} else {
				b.Rays.Draw(m.GazeMask().ToSquare(), m.Orientation())
			}
		}
	}
}

// applyTerritory implements the capture rule: after m has already been
// registered on self, flood-fill self's group, find any newly sealed
// territory, and evict any opponent (non-Boss) moves that fall inside it.
//
// Territory is computed against self.Occupied alone, not the board's full
// occupancy -- an opponent piece reads as "empty" from self's side, so a
// region self has surrounded can engulf and evict it.
func applyTerritory(self, other *PlayerState, m Move) bool {
	group := self.Occupied.Floodfill4(m.ToSquare(), self.Occupied)
	territory := findTerritory(self.Occupied, group)

	captured := false
	if !territory.IsEmpty() {
		newOwned := (group | territory) &^ (self.Owned | other.Owned)

		for {
			_, ok := other.removeMove(func(om Move) bool {
				return om.Type() != Boss && om.Mask().Intersects(newOwned)
			})
			if !ok {
				break
			}
			captured = true
		}

		self.Owned |= newOwned
		for _, sm := range self.MoveList {
			if sm.Mask().Intersects(newOwned) {
				self.Owned |= sm.Mask()
			}
		}
	} else if self.Owned.Intersects(m.Mask().AdjacentMask()) {
		self.Owned |= m.Mask()
	}
	return captured
}

// findTerritory returns every region empty under occupied (which may
// include opponent pieces) that is sealed -- adjacent to group and not
// spanning two opposite board edges.
func findTerritory(occupied Bitboard, group Bitboard) Bitboard {
	empty := ^occupied
	var territory, seen Bitboard
	for _, sq := range AllSquares {
		if seen.Test(sq) || !empty.Test(sq) {
			continue
		}
		region := empty.Floodfill8(sq, empty)
		if isCaptured(region, group) {
			territory |= region
		}
		seen |= region
	}
	return territory
}

func isCaptured(area, group Bitboard) bool {
	spansOpposite := (area.Intersects(southRow) && area.Intersects(northRow)) ||
		(area.Intersects(westCol) && area.Intersects(eastCol))
	return !spansOpposite && area.AdjacentMask().Intersects(group)
}

// drawBossRays casts the Boss's eight half-lines, two from each of its
// four outer corners along the edges it sits on.
func (b *Board) drawBossRays(m Move) {
	nw, sw, se, ne := bossCorners(m.Mask())
	b.Rays.Draw(nw, North)
	b.Rays.Draw(nw, West)
	b.Rays.Draw(sw, South)
	b.Rays.Draw(sw, West)
	b.Rays.Draw(se, South)
	b.Rays.Draw(se, East)
	b.Rays.Draw(ne, North)
	b.Rays.Draw(ne, East)
}

func bossCorners(mask Bitboard) (nw, sw, se, ne Square) {
	minX, minY, maxX, maxY := 8, 8, -1, -1
	for _, sq := range mask.Squares() {
		x, y := sq.X(), sq.Y()
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	nw = MakeSquare(minX, maxY)
	sw = MakeSquare(minX, minY)
	se = MakeSquare(maxX, minY)
	ne = MakeSquare(maxX, maxY)
	return
}

// GenerateMoves enumerates every legal placement for c in LUT order,
// deduping indistinguishable duplicate pieces by type.
func (b *Board) GenerateMoves(c Color, visitor MoveVisitor) {
	self := b.player(c)
	other := b.player(c.Opponent())

	occupied := b.Occupied()
	available := self.Hand.Available()

	var seen pieceSeenHash
	for _, p := range available.Pieces() {
		t := p.TypeID()
		if seen.seen(t) {
			continue
		}
		seen = seen.mark(t)

		pt := &PieceTypes[t]
		for i := pt.LUTOffset; i < pt.LUTOffset+pt.Moves; i++ {
			m := NewMove(p, i)
			if b.valid(m, occupied, self.Occupied, other.Owned) {
				visitor.Visit(m)
				if visitor.Bailout() {
					return
				}
			}
		}
	}
}

// valid applies the legality rules of §4.5: no overlap with any occupied
// square or the opponent's owned territory; no eye contact; no Nobi paw
// next to a Boss of either color; no opposite-edge connection. The overlap
// and Nobi-paw checks are board-wide, but the opposite-edge check is scoped
// to the mover's own occupied squares only -- an opponent's stones are
// never part of the mover's own connected group.
func (b *Board) valid(m Move, occupied, selfOccupied, otherOwned Bitboard) bool {
	mask := m.Mask()
	if mask.Intersects(occupied) || mask.Intersects(otherOwned) {
		return false
	}
	if m.Type() != Boss {
		if m.HasGaze() && m.GazeMask().Intersects(b.Rays.Get(m.Orientation().Opposite())) {
			return false
		}
		if nobiPawOverlaps(m, occupied, b.Boss) {
			return false
		}
		combined := selfOccupied | mask
		if combined.HasOppositeConnection(m.ToSquare(), combined) {
			return false
		}
	}
	return true
}

func nobiPawOverlaps(m Move, occupied, boss Bitboard) bool {
	if m.Type() != Nobi {
		return false
	}
	gaze := m.GazeMask()
	var paw Bitboard
	switch m.Orientation() {
	case South:
		paw = gaze.Rshift()
	case West:
		paw = gaze.Dshift()
	case North:
		paw = gaze.Lshift()
	case East:
		paw = gaze.Ushift()
	}
	return paw.Intersects((boss & occupied).AdjacentMask())
}

// Dump renders an ASCII board for debugging: B/W for occupied squares, the
// lower-case b/w for empty squares owned by a side, '.' otherwise.
func (b *Board) Dump() string {
	var sb strings.Builder
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			sq := MakeSquare(x, y)
			switch {
			case b.Black.Occupied.Test(sq):
				sb.WriteRune('B')
			case b.White.Occupied.Test(sq):
				sb.WriteRune('W')
			case b.Black.Owned.Test(sq):
				sb.WriteRune('b')
			case b.White.Owned.Test(sq):
				sb.WriteRune('w')
			default:
				sb.WriteRune('.')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
