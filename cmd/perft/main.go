// perft is a movegen debugging tool: it counts the full move tree from
// the starting position to a given depth, same idea as the chess-engine
// perft but over the cat-placement board's legal placements.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/herohde/morlock/pkg/board"
)

var (
	depth  = flag.Int("depth", 3, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	flag.Parse()

	s := board.NewGameState()

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(s, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}
}

func search(s board.GameState, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range s.Moves() {
		next := s.Apply(m)
		count := search(next, depth-1, false)
		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
