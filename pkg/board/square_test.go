package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/morlock/pkg/board"
)

func TestMakeSquareRoundTripsXY(t *testing.T) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq := board.MakeSquare(x, y)
			assert.Equal(t, x, sq.X())
			assert.Equal(t, y, sq.Y())
		}
	}
}

func TestSquareEdges(t *testing.T) {
	assert.True(t, board.MakeSquare(0, 3).IsWestEdge())
	assert.True(t, board.MakeSquare(7, 3).IsEastEdge())
	assert.True(t, board.MakeSquare(3, 0).IsSouthEdge())
	assert.True(t, board.MakeSquare(3, 7).IsNorthEdge())
	assert.False(t, board.MakeSquare(3, 3).IsWestEdge())
}

func TestSquareNeighbors(t *testing.T) {
	c := board.MakeSquare(3, 3)

	left, ok := c.Left()
	require.True(t, ok)
	assert.Equal(t, board.MakeSquare(2, 3), left)

	right, ok := c.Right()
	require.True(t, ok)
	assert.Equal(t, board.MakeSquare(4, 3), right)

	up, ok := c.Up()
	require.True(t, ok)
	assert.Equal(t, board.MakeSquare(3, 4), up)

	down, ok := c.Down()
	require.True(t, ok)
	assert.Equal(t, board.MakeSquare(3, 2), down)

	_, ok = board.MakeSquare(0, 3).Left()
	assert.False(t, ok)
	_, ok = board.MakeSquare(7, 3).Right()
	assert.False(t, ok)
	_, ok = board.MakeSquare(3, 0).Down()
	assert.False(t, ok)
	_, ok = board.MakeSquare(3, 7).Up()
	assert.False(t, ok)
}

func TestSquareStringAndParse(t *testing.T) {
	sq := board.MakeSquare(2, 2) // c3
	assert.Equal(t, "c3", sq.String())

	parsed, err := board.ParseSquare("c3")
	require.NoError(t, err)
	assert.Equal(t, sq, parsed)

	_, err = board.ParseSquare("c")
	assert.Error(t, err)
	_, err = board.ParseSquare("i3")
	assert.Error(t, err)
	_, err = board.ParseSquare("c9")
	assert.Error(t, err)
}

func TestAllSquaresIsOrderedAndComplete(t *testing.T) {
	require.Len(t, board.AllSquares, 64)
	for i, sq := range board.AllSquares {
		assert.Equal(t, board.Square(i), sq)
	}
}
