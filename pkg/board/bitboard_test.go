package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/herohde/morlock/pkg/board"
)

func TestBitboard(t *testing.T) {

	t.Run("popcount", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected int
		}{
			{board.EmptyBitboard, 0},
			{board.BitMask(board.MakeSquare(6, 3)), 1},
			{board.BitMask(board.MakeSquare(6, 2)) | board.BitMask(board.MakeSquare(6, 3)), 2},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.PopCount())
		}
	})

	t.Run("string", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected string
		}{
			{board.EmptyBitboard, "--------/--------/--------/--------/--------/--------/--------/--------"},
			{board.BitMask(board.MakeSquare(7, 0)), "--------/--------/--------/--------/--------/--------/--------/-------X"},
			{board.BitMask(board.MakeSquare(6, 1)) | board.BitMask(board.MakeSquare(6, 2)), "--------/--------/--------/--------/--------/------X-/------X-/--------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.String())
		}
	})

	t.Run("toSquare", func(t *testing.T) {
		sq := board.MakeSquare(4, 5)
		assert.Equal(t, sq, board.BitMask(sq).ToSquare())
	})

	t.Run("subsetAndIntersect", func(t *testing.T) {
		a := board.BitMask(board.MakeSquare(0, 0)) | board.BitMask(board.MakeSquare(1, 0))
		b := a | board.BitMask(board.MakeSquare(2, 0))

		assert.True(t, a.IsSubsetOf(b))
		assert.False(t, b.IsSubsetOf(a))
		assert.True(t, a.Intersects(b))
		assert.False(t, a.Intersects(board.BitMask(board.MakeSquare(7, 7))))
	})

	t.Run("shifts stay on board", func(t *testing.T) {
		east := board.BitMask(board.MakeSquare(7, 0))
		assert.Equal(t, board.EmptyBitboard, east.Rshift()) // wraps off the east edge, not onto the next rank

		west := board.BitMask(board.MakeSquare(0, 0))
		assert.Equal(t, board.EmptyBitboard, west.Lshift())

		north := board.BitMask(board.MakeSquare(0, 7))
		assert.Equal(t, board.EmptyBitboard, north.Ushift()) // rank 8 shifts off the top of the word

		assert.Equal(t, board.BitMask(board.MakeSquare(1, 0)), board.BitMask(board.MakeSquare(0, 0)).Rshift())
		assert.Equal(t, board.BitMask(board.MakeSquare(0, 0)), board.BitMask(board.MakeSquare(1, 0)).Lshift())
		assert.Equal(t, board.BitMask(board.MakeSquare(0, 1)), board.BitMask(board.MakeSquare(0, 0)).Ushift())
		assert.Equal(t, board.BitMask(board.MakeSquare(0, 0)), board.BitMask(board.MakeSquare(0, 1)).Dshift())
	})

	t.Run("floodfill4 stays within path and does not cross diagonally", func(t *testing.T) {
		path := board.BitMask(board.MakeSquare(0, 0)) | board.BitMask(board.MakeSquare(1, 0)) | board.BitMask(board.MakeSquare(1, 1))
		fill := board.EmptyBitboard.Floodfill4(board.MakeSquare(0, 0), path)
		assert.Equal(t, path, fill)

		disjoint := board.BitMask(board.MakeSquare(0, 0)) | board.BitMask(board.MakeSquare(1, 1)) // diagonal only, not 4-connected
		fill = board.EmptyBitboard.Floodfill4(board.MakeSquare(0, 0), disjoint)
		assert.Equal(t, board.BitMask(board.MakeSquare(0, 0)), fill)
	})

	t.Run("floodfill8 crosses diagonals", func(t *testing.T) {
		path := board.BitMask(board.MakeSquare(0, 0)) | board.BitMask(board.MakeSquare(1, 1))
		fill := board.EmptyBitboard.Floodfill8(board.MakeSquare(0, 0), path)
		assert.Equal(t, path, fill)
	})

	t.Run("hasOppositeConnection detects N-S and E-W spans, not a partial fill", func(t *testing.T) {
		var column board.Bitboard
		for y := 0; y < 8; y++ {
			column |= board.BitMask(board.MakeSquare(3, y))
		}
		assert.True(t, board.EmptyBitboard.HasOppositeConnection(board.MakeSquare(3, 0), column))

		var row board.Bitboard
		for x := 0; x < 8; x++ {
			row |= board.BitMask(board.MakeSquare(x, 3))
		}
		assert.True(t, board.EmptyBitboard.HasOppositeConnection(board.MakeSquare(0, 3), row))

		short := board.BitMask(board.MakeSquare(3, 0)) | board.BitMask(board.MakeSquare(3, 1))
		assert.False(t, board.EmptyBitboard.HasOppositeConnection(board.MakeSquare(3, 0), short))
	})

	t.Run("rotations round-trip to identity", func(t *testing.T) {
		bb := board.BitMask(board.MakeSquare(2, 5)) | board.BitMask(board.MakeSquare(6, 1))
		assert.Equal(t, bb, bb.Rot90().Rot90().Rot90().Rot90())
		assert.Equal(t, bb, bb.Rot270().Rot270().Rot270().Rot270())
		assert.Equal(t, bb, bb.Rot180().Rot180())
		assert.Equal(t, bb.Rot90().Rot90(), bb.Rot180())
	})

	t.Run("flipVertical is its own inverse", func(t *testing.T) {
		bb := board.BitMask(board.MakeSquare(2, 5)) | board.BitMask(board.MakeSquare(6, 1))
		assert.Equal(t, bb, bb.FlipVertical().FlipVertical())
	})
}
