// Package mcts implements Monte Carlo tree search (§4.9): UCT selection
// with an optional AMAF bonus, random-rollout evaluation, and a
// wall-clock search budget, operating on the same board.GameState the
// search package's negamax core consumes.
package mcts

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/herohde/morlock/pkg/board"
)

// Options configures one Search call.
type Options struct {
	// ExpandThreshold is the visit count at which a leaf is expanded
	// into its untried children. Zero defaults to 1 (expand on first
	// re-visit).
	ExpandThreshold int
	// Exploration is the UCB1 exploration constant C; zero defaults to
	// sqrt(2).
	Exploration float64
	// AMAF, if non-zero, blends the all-moves-as-first estimate into
	// selection with this weight in [0;1].
	AMAF float64
	// PreferVisits selects the root child with the most visits when
	// true (the standard, most-robust choice); when false, selects the
	// child with the highest average score instead.
	PreferVisits bool
	// Seed seeds the rollout policy's random source. Zero uses an
	// arbitrary but fixed seed, for deterministic tests.
	Seed int64
}

func (o Options) expandThreshold() int {
	if o.ExpandThreshold <= 0 {
		return 1
	}
	return o.ExpandThreshold
}

func (o Options) exploration() float64 {
	if o.Exploration <= 0 {
		return math.Sqrt2
	}
	return o.Exploration
}

// node is one tree node, rooted at the state passed to Search. Children
// are keyed by the move that produced them.
type node struct {
	move     board.Move // move that produced this node, zero at the root
	mover    board.Color // side that moved to produce this node
	parent   *node
	children []*node
	untried  []board.Move

	visits    int
	wins      float64 // wins from mover's point of view
	amafVisit map[board.Move]int
	amafWins  map[board.Move]float64
}

func newNode(parent *node, mover board.Color, mv board.Move, s *board.GameState) *node {
	return &node{
		move:      mv,
		mover:     mover,
		parent:    parent,
		untried:   append([]board.Move(nil), s.Moves()...),
		amafVisit: map[board.Move]int{},
		amafWins:  map[board.Move]float64{},
	}
}

func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0 && len(n.untried) == 0
}

// ucb1 scores a child from the parent's selection step, optionally
// blended with its AMAF estimate.
func (n *node) ucb1(child *node, c float64, amaf float64) float64 {
	exploit := child.wins / float64(child.visits)
	explore := c * math.Sqrt(math.Log(float64(n.visits))/float64(child.visits))

	if amaf > 0 {
		if av, ok := n.amafVisit[child.move]; ok && av > 0 {
			amafEstimate := n.amafWins[child.move] / float64(av)
			beta := amaf * float64(av) / (float64(child.visits) + float64(av) + amaf*float64(child.visits)*float64(av))
			exploit = (1-beta)*exploit + beta*amafEstimate
		}
	}
	return exploit + explore
}

// Search runs UCT rollouts from s until ctx is done or budget elapses,
// and returns the chosen move, or false if s has no legal moves or no
// root child was expanded before the search stopped.
func Search(ctx context.Context, s *board.GameState, budget time.Duration, opt Options) (board.Move, bool) {
	root := newNode(nil, s.Current.Opponent(), 0, s)
	if len(root.untried) == 0 {
		return 0, false
	}

	rng := rand.New(rand.NewSource(opt.Seed))
	deadline := time.Now().Add(budget)

	rollouts := 0
	for time.Now().Before(deadline) && !contextx.IsCancelled(ctx) {
		cur := s
		n := root

		// Selection: descend while fully expanded.
		for n.fullyExpanded() && !n.isLeaf() {
			best := selectChild(n, opt.exploration(), opt.AMAF)
			next := cur.Apply(best.move)
			cur = &next
			n = best
		}

		// Expansion: add one untried child once the threshold is met.
		if len(n.untried) > 0 && n.visits >= opt.expandThreshold() {
			idx := rng.Intn(len(n.untried))
			mv := n.untried[idx]
			n.untried[idx] = n.untried[len(n.untried)-1]
			n.untried = n.untried[:len(n.untried)-1]

			next := cur.Apply(mv)
			child := newNode(n, cur.Current, mv, &next)
			n.children = append(n.children, child)

			cur = &next
			n = child
		}

		// Simulation: uniform random rollout to a terminal state.
		played := rollout(cur, rng)
		rollouts++

		// Backpropagation: credit every ancestor from its mover's POV,
		// plus AMAF credit for every move played during the rollout
		// that is also an expanded child of that ancestor.
		backpropagate(n, played)
	}

	logw.Debugf(ctx, "MCTS: %v rollouts in %v", rollouts, budget)

	if len(root.children) == 0 {
		return 0, false
	}
	return bestChild(root, opt.PreferVisits).move, true
}

func selectChild(n *node, c float64, amaf float64) *node {
	var best *node
	var bestScore float64
	for _, child := range n.children {
		score := n.ucb1(child, c, amaf)
		if best == nil || score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

func bestChild(root *node, preferVisits bool) *node {
	best := root.children[0]
	for _, child := range root.children[1:] {
		if preferVisits {
			if child.visits > best.visits {
				best = child
			}
		} else if best.visits > 0 && child.visits > 0 && child.wins/float64(child.visits) > best.wins/float64(best.visits) {
			best = child
		}
	}
	return best
}

// rollout plays uniformly random legal moves from s to a terminal state
// and returns the winner (or false for a tie), along with every move
// played, for AMAF credit.
func rollout(s *board.GameState, rng *rand.Rand) playout {
	cur := *s
	var moves []board.Move

	for {
		candidates := cur.Moves()
		if len(candidates) == 0 {
			winner, ok := cur.Winner()
			return playout{moves: moves, winner: winner, decided: ok}
		}
		mv := candidates[rng.Intn(len(candidates))]
		moves = append(moves, mv)
		cur = cur.Apply(mv)
	}
}

type playout struct {
	moves   []board.Move
	winner  board.Color
	decided bool
}

func backpropagate(leaf *node, p playout) {
	played := make(map[board.Move]bool, len(p.moves))
	for _, mv := range p.moves {
		played[mv] = true
	}

	for n := leaf; n != nil; n = n.parent {
		n.visits++
		if p.decided && p.winner == n.mover {
			n.wins++
		} else if !p.decided {
			n.wins += 0.5
		}

		if n.parent != nil {
			for _, sibling := range n.parent.children {
				if played[sibling.move] {
					n.parent.amafVisit[sibling.move]++
					if p.decided && p.winner == n.mover {
						n.parent.amafWins[sibling.move]++
					} else if !p.decided {
						n.parent.amafWins[sibling.move] += 0.5
					}
				}
			}
		}
	}
}
