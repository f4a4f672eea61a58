package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seekerror/logw"

	"github.com/herohde/morlock/pkg/agent"
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/engine"
	"github.com/herohde/morlock/pkg/eval"
)

var (
	black   = flag.String("black", "iterative", "Agent for black: parallel, iterative, mcts, random")
	white   = flag.String("white", "iterative", "Agent for white: parallel, iterative, mcts, random")
	timeout = flag.Duration("timeout", time.Second, "Per-move timeout for the timed agents")
	hash    = flag.Uint("hash", 16, "Transposition table size in MB (zero disables it)")
	seed    = flag.Int64("seed", time.Now().UnixNano(), "Seed for the random agent and evaluation noise")
	noise   = flag.Int("noise", 0, "Evaluation noise in score units (zero if deterministic)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: morlock [options]

morlock plays a single self-play game on the 8x8 cat-placement board and
prints every move until the position is terminal.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "morlock", "herohde", engine.WithOptions(engine.Options{Hash: *hash}))

	agents := map[board.Color]agent.Agent{
		board.Black: parseAgent(ctx, *black),
		board.White: parseAgent(ctx, *white),
	}

	for !e.Terminal() {
		turn := e.State().Current

		mv, ok, err := e.Step(ctx, agents[turn])
		if err != nil {
			logw.Exitf(ctx, "Step failed: %v", err)
		}
		if !ok {
			logw.Exitf(ctx, "Agent for %v declined to move on a non-terminal position", turn)
		}

		fmt.Printf("%v: %v\n", turn, mv)
	}

	final := e.State()
	fmt.Println(final.Board.Dump())
	fmt.Printf("Result: %v\n", e.Result())
}

func parseAgent(ctx context.Context, kind string) agent.Agent {
	ev := eval.Evaluator(eval.Material{})
	if *noise > 0 {
		ev = eval.NewRandom(ev, *noise, *seed)
	}

	switch kind {
	case "parallel":
		return agent.Agent{Kind: agent.ParallelKind, Timeout: *timeout, Eval: ev}
	case "iterative":
		return agent.Agent{Kind: agent.IterativeKind, Timeout: *timeout, Eval: ev}
	case "mcts":
		return agent.Agent{Kind: agent.MctsKind, Timeout: *timeout}
	case "random":
		return agent.Random(*seed)
	default:
		logw.Exitf(ctx, "Unknown agent kind %q", kind)
		panic("unreachable")
	}
}
