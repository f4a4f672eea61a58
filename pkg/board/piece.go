package board

import "fmt"

// PieceTypeID identifies one of the 10 distinct piece shapes.
type PieceTypeID uint8

const (
	Boss PieceTypeID = iota
	Mame
	Nobi
	Koubaku1
	Koubaku2
	Koubaku3
	Kunoji1
	Kunoji2
	Kunoji3
	Kunoji4
)

const NumPieceTypes = 10

// PieceID identifies one of the 12 physical pieces a side holds. Koubaku3
// and Kunoji1 each have two indistinguishable physical pieces.
type PieceID uint8

const (
	PieceBoss PieceID = iota
	PieceMame
	PieceNobi
	PieceKoubaku1
	PieceKoubaku2
	PieceKoubaku3a
	PieceKoubaku3b
	PieceKunoji1a
	PieceKunoji1b
	PieceKunoji2
	PieceKunoji3
	PieceKunoji4
)

const NumPieces = 12

// TypeID returns the piece type of a physical piece.
func (p PieceID) TypeID() PieceTypeID {
	switch p {
	case PieceBoss:
		return Boss
	case PieceMame:
		return Mame
	case PieceNobi:
		return Nobi
	case PieceKoubaku1:
		return Koubaku1
	case PieceKoubaku2:
		return Koubaku2
	case PieceKoubaku3a, PieceKoubaku3b:
		return Koubaku3
	case PieceKunoji1a, PieceKunoji1b:
		return Kunoji1
	case PieceKunoji2:
		return Kunoji2
	case PieceKunoji3:
		return Kunoji3
	default:
		return Kunoji4
	}
}

var pieceTags = [NumPieceTypes]string{
	Boss: "BOS", Mame: "MAM", Nobi: "NOB",
	Koubaku1: "KB1", Koubaku2: "KB2", Koubaku3: "KB3",
	Kunoji1: "KJ1", Kunoji2: "KJ2", Kunoji3: "KJ3", Kunoji4: "KJ4",
}

func (t PieceTypeID) String() string {
	return pieceTags[t]
}

// ParsePieceType parses a 3-letter piece tag, such as "BOS" or "KJ1".
func ParsePieceType(v string) (PieceTypeID, error) {
	for t, tag := range pieceTags {
		if tag == v {
			return PieceTypeID(t), nil
		}
	}
	return 0, fmt.Errorf("invalid piece tag %q", v)
}

// canonicalPieceID returns the "a" variant physical piece for a type, used
// when resolving move notation (which names a type, not a physical piece)
// back to a concrete PieceID.
func canonicalPieceID(t PieceTypeID) PieceID {
	switch t {
	case Boss:
		return PieceBoss
	case Mame:
		return PieceMame
	case Nobi:
		return PieceNobi
	case Koubaku1:
		return PieceKoubaku1
	case Koubaku2:
		return PieceKoubaku2
	case Koubaku3:
		return PieceKoubaku3a
	case Kunoji1:
		return PieceKunoji1a
	case Kunoji2:
		return PieceKunoji2
	case Kunoji3:
		return PieceKunoji3
	default:
		return PieceKunoji4
	}
}

// PieceType is the immutable, shared description of one of the 10 shapes:
// bounding size, quantity held per side, legal placement count, the
// placement table's starting offset for this type, and the per-orientation
// shape/gaze masks as drawn with the piece anchored at the origin in the
// canonical South orientation, then rotated. In these masks row 0 is the
// piece's northernmost row; the placement table mirrors the rows when it
// moves a shape onto the board.
type PieceType struct {
	ID        PieceTypeID
	NameEN    string
	NameJA    string
	Width     int
	Height    int
	Qty       int // per side
	Moves     int // legal placement count
	LUTOffset int
	Mask      [NumOrientations]Bitboard
	Gaze      [NumOrientations]Square // unused for Boss; a Mame's gaze is its own square
}

// SizeFor returns the (width,height) footprint of the piece in the given
// orientation -- W/E swap the canonical S/N dimensions.
func (t *PieceType) SizeFor(o Orientation) (int, int) {
	if o == West || o == East {
		return t.Height, t.Width
	}
	return t.Width, t.Height
}

// PieceTypes is the static catalog of all 10 piece shapes, with exact
// mask/gaze/quantity/move-count/offset values matching the reference
// implementation's piece table.
var PieceTypes = [NumPieceTypes]PieceType{
	Boss: {
		ID: Boss, NameEN: "Boss", NameJA: "oyabun",
		Width: 2, Height: 2, Qty: 1, Moves: 48, LUTOffset: 0,
		Mask: [4]Bitboard{0x303, 0x303, 0x303, 0x303},
		Gaze: [4]Square{0, 0, 0, 0},
	},
	Mame: {
		ID: Mame, NameEN: "Mame", NameJA: "mame",
		Width: 1, Height: 1, Qty: 1, Moves: 224, LUTOffset: 48,
		Mask: [4]Bitboard{1, 1, 1, 1},
		Gaze: [4]Square{0, 0, 0, 0},
	},
	Nobi: {
		ID: Nobi, NameEN: "Nobi", NameJA: "nobi",
		Width: 4, Height: 1, Qty: 1, Moves: 140, LUTOffset: 272,
		Mask: [4]Bitboard{0xf, 0x1010101, 0xf, 0x1010101},
		Gaze: [4]Square{2, 16, 1, 8},
	},
	Koubaku1: {
		ID: Koubaku1, NameEN: "Koubaku1", NameJA: "koubaku",
		Width: 2, Height: 1, Qty: 1, Moves: 196, LUTOffset: 412,
		Mask: [4]Bitboard{0x3, 0x101, 0x3, 0x101},
		Gaze: [4]Square{0, 0, 1, 8},
	},
	Koubaku2: {
		ID: Koubaku2, NameEN: "Koubaku2", NameJA: "koubaku",
		Width: 2, Height: 1, Qty: 1, Moves: 196, LUTOffset: 608,
		Mask: [4]Bitboard{0x3, 0x101, 0x3, 0x101},
		Gaze: [4]Square{1, 8, 0, 0},
	},
	Koubaku3: {
		ID: Koubaku3, NameEN: "Koubaku3", NameJA: "koubaku",
		Width: 1, Height: 2, Qty: 2, Moves: 192, LUTOffset: 804,
		Mask: [4]Bitboard{0x101, 0x3, 0x101, 0x3},
		Gaze: [4]Square{8, 0, 0, 1},
	},
	Kunoji1: {
		ID: Kunoji1, NameEN: "Kunoji1", NameJA: "kunoji",
		Width: 2, Height: 2, Qty: 2, Moves: 168, LUTOffset: 996,
		Mask: [4]Bitboard{0x203, 0x302, 0x301, 0x103},
		Gaze: [4]Square{9, 8, 0, 1},
	},
	Kunoji2: {
		ID: Kunoji2, NameEN: "Kunoji2", NameJA: "kunoji",
		Width: 2, Height: 2, Qty: 1, Moves: 168, LUTOffset: 1164,
		Mask: [4]Bitboard{0x103, 0x203, 0x302, 0x301},
		Gaze: [4]Square{8, 0, 1, 9},
	},
	Kunoji3: {
		ID: Kunoji3, NameEN: "Kunoji3", NameJA: "kunoji",
		Width: 2, Height: 2, Qty: 1, Moves: 196, LUTOffset: 1332,
		Mask: [4]Bitboard{0x203, 0x302, 0x301, 0x103},
		Gaze: [4]Square{0, 1, 9, 8},
	},
	Kunoji4: {
		ID: Kunoji4, NameEN: "Kunoji4", NameJA: "kunoji",
		Width: 2, Height: 2, Qty: 1, Moves: 196, LUTOffset: 1528,
		Mask: [4]Bitboard{0x103, 0x203, 0x302, 0x301},
		Gaze: [4]Square{1, 9, 8, 0},
	},
}

// NumPlacements is the total size of the placement table.
const NumPlacements = 1528 + 196

// hasGaze reports whether a piece type casts a sight ray and participates
// in the edge-facing and eye-contact rules. The Boss is the only
// exception: it has a fixed orientation and no facing-dependent behavior.
// Mame's gaze is its own single square, so it still casts a zero-length
// ray in its facing direction and is still excluded from being placed
// facing off the board edge.
func (t PieceTypeID) hasGaze() bool {
	return t != Boss
}
