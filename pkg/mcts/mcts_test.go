package mcts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/mcts"
)

func TestSearchChoosesForcedBossOpening(t *testing.T) {
	s := board.NewGameState()
	mv, ok := mcts.Search(context.Background(), &s, 100*time.Millisecond, mcts.Options{Seed: 1})
	require.True(t, ok)
	assert.Equal(t, board.Boss, mv.Type())
}

func TestSearchReturnsFalseWhenAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := board.NewGameState()
	_, ok := mcts.Search(ctx, &s, time.Millisecond, mcts.Options{Seed: 1})
	assert.False(t, ok) // no rollout runs, so no root child was ever created
}

func TestSearchWithAmafBlendStillChoosesLegalMove(t *testing.T) {
	s := board.NewGameState()
	mv, ok := mcts.Search(context.Background(), &s, 50*time.Millisecond, mcts.Options{Seed: 7, AMAF: 0.5, ExpandThreshold: 2})
	require.True(t, ok)
	assert.Equal(t, board.Boss, mv.Type())
}
