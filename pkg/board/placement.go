package board

// Placement is one entry of the precomputed placement table: a concrete
// (piece type, anchor square, orientation) triple together with its
// resulting shape mask and (if any) gaze square.
type Placement struct {
	Type     PieceTypeID
	Position Square
	Orient   Orientation
	Mask     Bitboard
	HasGaze  bool
	GazeMask Bitboard
	GazeSq   Square
}

// placementTable is the process-wide table of all legal placements,
// built once at package init by the same kind of lookup-table generator
// this package's ray table uses.
var placementTable [NumPlacements]Placement

func init() {
	buildPlacementTable()
}

func buildPlacementTable() {
	idx := 0
	for t := PieceTypeID(0); t < NumPieceTypes; t++ {
		pt := &PieceTypes[t]
		orients := []Orientation{South, West, North, East}
		if t == Boss {
			orients = []Orientation{South}
		}
		count := 0
		for _, o := range orients {
			w, h := pt.SizeFor(o)
			for y := 0; y <= 8-h; y++ {
				for x := 0; x <= 8-w; x++ {
					if t == Boss && x == 3 && y == 3 {
						continue
					}
					mask := flipRows(pt.Mask[o], h).Rshiftn(x).Ushiftn(y)

					p := Placement{
						Type:     t,
						Position: MakeSquare(x, y),
						Orient:   o,
						Mask:     mask,
					}
					if t.hasGaze() {
						gazeMask := flipRows(BitMask(pt.Gaze[o]), h).Rshiftn(x).Ushiftn(y)
						gazeSq := gazeMask.ToSquare()
						if o.AtLimit(gazeSq) {
							continue // facing the board edge is illegal
						}
						p.HasGaze = true
						p.GazeMask = gazeMask
						p.GazeSq = gazeSq
					}
					placementTable[pt.LUTOffset+count] = p
					count++
					idx++
				}
			}
		}
	}
	if idx != NumPlacements {
		panic("placement table generator produced an unexpected entry count")
	}
}

// flipRows mirrors the h bottom rows of a catalog shape, whose row 0 is
// the piece's northernmost row, so that row 0 becomes its southernmost.
func flipRows(b Bitboard, h int) Bitboard {
	var out Bitboard
	for r := 0; r < h; r++ {
		out |= ((b >> (8 * r)) & 0xff) << (8 * (h - 1 - r))
	}
	return out
}

// LookupPlacement finds the LUT index of the placement matching the given
// type, anchor square and orientation. Used only by move-notation parsing;
// normal move generation iterates a type's LUT slice directly.
func LookupPlacement(t PieceTypeID, pos Square, o Orientation) (int, bool) {
	pt := &PieceTypes[t]
	for i := pt.LUTOffset; i < pt.LUTOffset+pt.Moves; i++ {
		p := &placementTable[i]
		if p.Position == pos && p.Orient == o {
			return i, true
		}
	}
	return 0, false
}
