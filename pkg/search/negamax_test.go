package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
	"github.com/herohde/morlock/pkg/search"
)

func freshContext(ctx context.Context) *search.Context {
	return &search.Context{
		Alpha: eval.NegInfScore,
		Beta:  eval.InfScore,
		TT:    search.NewTranspositionTable(ctx, 1<<16),
	}
}

func TestNegamaxOpeningIsForcedBoss(t *testing.T) {
	ctx := context.Background()
	s := board.NewGameState()

	n := search.Negamax{Eval: eval.Material{}}
	nodes, score, pv, err := n.Search(ctx, freshContext(ctx), &s, 1)
	require.NoError(t, err)
	assert.Greater(t, nodes, uint64(0))
	require.NotEmpty(t, pv)
	assert.Equal(t, board.Boss, pv[0].Type())
	assert.False(t, score.IsInvalid())
}

func TestNegamaxDeterministic(t *testing.T) {
	ctx := context.Background()
	s := board.NewGameState()

	n := search.Negamax{Eval: eval.Material{}}

	_, score1, pv1, err := n.Search(ctx, freshContext(ctx), &s, 3)
	require.NoError(t, err)
	_, score2, pv2, err := n.Search(ctx, freshContext(ctx), &s, 3)
	require.NoError(t, err)

	assert.Equal(t, score1, score2)
	assert.Equal(t, pv1, pv2)
}

func TestNegamaxHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := board.NewGameState()
	n := search.Negamax{Eval: eval.Material{}}

	_, score, pv, err := n.Search(ctx, freshContext(context.Background()), &s, 3)
	assert.ErrorIs(t, err, search.ErrHalted)
	assert.True(t, score.IsInvalid())
	assert.Nil(t, pv)
}

func TestWinnerOnEmptyBoardIsWhiteByKomi(t *testing.T) {
	s := board.NewGameState()
	winner, ok := s.Winner()
	assert.True(t, ok) // Winner counts komi, so an empty board is no tie
	assert.Equal(t, board.White, winner)
}

func TestParallelAgreesWithNegamaxOnShallowSearch(t *testing.T) {
	ctx := context.Background()
	s := board.NewGameState()

	serial := search.Negamax{Eval: eval.Material{}}
	_, serialScore, _, err := serial.Search(ctx, freshContext(ctx), &s, 2)
	require.NoError(t, err)

	par := search.Parallel{Eval: eval.Material{}, Workers: 4}
	_, parScore, parPV, err := par.Search(ctx, freshContext(ctx), &s, 2)
	require.NoError(t, err)

	assert.Equal(t, serialScore, parScore)
	require.NotEmpty(t, parPV)
	assert.Equal(t, board.Boss, parPV[0].Type())
}

func TestParallelDepthZeroFallsBackToStaticEval(t *testing.T) {
	ctx := context.Background()
	s := board.NewGameState()

	par := search.Parallel{Eval: eval.Material{}}
	nodes, _, pv, err := par.Search(ctx, freshContext(ctx), &s, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nodes)
	assert.Nil(t, pv)
}
