package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/morlock/pkg/agent"
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/engine"
)

func TestEngineResetIsFreshBoard(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "cats", "tester")

	s := e.State()
	assert.Equal(t, board.Black, s.Current)
	assert.Equal(t, board.ZobristHash(0), s.Hash)
	assert.False(t, e.Terminal())
}

func TestEngineMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "cats", "tester")

	s := e.State()
	acc := board.NewMoveAccumulator()
	s.GenerateMoves(acc)
	require.NotEmpty(t, acc.Moves)

	var illegal board.Move
	for _, m := range acc.Moves {
		if m != acc.Moves[0] {
			illegal = m
			break
		}
	}
	if illegal == 0 {
		t.Skip("only one legal move available to construct an illegal one from")
	}

	err := e.Move(ctx, acc.Moves[0])
	require.NoError(t, err)

	err = e.Move(ctx, acc.Moves[0]) // the same move is no longer legal: Boss is already placed
	assert.Error(t, err)
}

func TestEngineStepWithRandomAgentAlwaysTerminatesQuickly(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "cats", "tester")

	for i := 0; i < 8 && !e.Terminal(); i++ {
		_, ok, err := e.Step(ctx, agent.Random(int64(i)))
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestEngineStepWithIterativeAgentRespectsTimeout(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "cats", "tester", engine.WithOptions(engine.Options{Hash: 1}))

	start := time.Now()
	mv, ok, err := e.Step(ctx, agent.Iterative(50*time.Millisecond))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, board.Boss, mv.Type())
	assert.Less(t, time.Since(start), time.Second)
}

func TestEngineStepWithHumanAgentReturnsNoMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "cats", "tester")

	mv, ok, err := e.Step(ctx, agent.Human())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, board.Move(0), mv)
}
