package board

// rayLUT[o][s] is the half-line bitboard cast from square s (inclusive) in
// direction o out to the board edge. Built once at package init, the same
// way the rest of this package's lookup tables are.
var rayLUT [NumOrientations][NumSquares]Bitboard

func init() {
	buildRayLUT()
}

func buildRayLUT() {
	for o := Orientation(0); o < NumOrientations; o++ {
		for _, s := range AllSquares {
			rayLUT[o][s] = drawRay(s, o)
		}
	}
}

func drawRay(from Square, o Orientation) Bitboard {
	var b Bitboard
	sq, ok := from, true
	for ok {
		b |= BitMask(sq)
		switch o {
		case South:
			sq, ok = sq.Down()
		case West:
			sq, ok = sq.Left()
		case North:
			sq, ok = sq.Up()
		case East:
			sq, ok = sq.Right()
		}
	}
	return b
}

// Rays is the live aggregate sight-line state: the union, per orientation,
// of every half-line cast by a gaze currently on the board.
type Rays struct {
	S, W, N, E Bitboard
}

// Get returns the aggregated ray bitboard for the given orientation.
func (r *Rays) Get(o Orientation) Bitboard {
	switch o {
	case South:
		return r.S
	case West:
		return r.W
	case North:
		return r.N
	default:
		return r.E
	}
}

// Draw unions the precomputed ray from sq in orientation o into the live
// state.
func (r *Rays) Draw(sq Square, o Orientation) {
	switch o {
	case South:
		r.S |= rayLUT[South][sq]
	case West:
		r.W |= rayLUT[West][sq]
	case North:
		r.N |= rayLUT[North][sq]
	case East:
		r.E |= rayLUT[East][sq]
	}
}

// Clear zeroes all four rays, in preparation for a full redraw.
func (r *Rays) Clear() {
	*r = Rays{}
}
