package engine

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/ongamse/juliette/internal/board"
	"github.com/ongamse/juliette/internal/config"
	"github.com/ongamse/juliette/internal/game"
)

// max is the one generic helper this package needs: alpha and bestScore
// are both plain ints today, but keeping the bound update generic means a
// future mate-distance or fixed-point score type needs no rewrite here.
func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Search score constants. MateScore is deliberately below Infinity so a
// mate found deeper in the tree (and therefore adjusted by more plies)
// never overflows past Infinity, and mate-in-N scores stay ordered by N.
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128
)

// Result is what a fixed-depth search returns: the best move found and
// its negamax score from the side-to-move's perspective.
type Result struct {
	BestMove board.Move
	Score    int
	Nodes    uint64
}

// Searcher runs a fixed-depth negamax search with alpha-beta pruning over
// a Game. It carries no transposition table, quiescence search, or
// iterative deepening — spec's optional extensions this module does not
// implement — only the structural minimum: move generation, ordering,
// make/unmake, and a pluggable evaluation.
type Searcher struct {
	Eval     EvalFunc
	Ordering config.MoveOrderingConfig
	game     *game.Game
	nodes    uint64
}

// NewSearcher returns a Searcher using eval for leaf scoring and the
// default move-ordering weights. A nil eval falls back to MaterialEval. A
// host loading a config.Config can override Ordering directly afterward.
func NewSearcher(eval EvalFunc) *Searcher {
	if eval == nil {
		eval = MaterialEval
	}
	return &Searcher{Eval: eval, Ordering: config.Default().MoveOrdering}
}

// Search runs a fixed-depth negamax search from g's current position.
// Cancellation is cooperative: ctx is polled between recursive calls at
// the same cadence a bespoke atomic stop-flag would be, and on
// cancellation the search unwinds returning whatever best move it had
// found so far at the shallowest completed ply.
func (s *Searcher) Search(ctx context.Context, g *game.Game, depth int) Result {
	s.game = g
	s.nodes = 0

	var best board.Move
	bestScore := -Infinity

	moves := g.GenerateLegal()
	orderMoves(g.Position, moves, s.Ordering)

	alpha, beta := -Infinity, Infinity
	for i := 0; i < moves.Len(); i++ {
		if ctx.Err() != nil {
			break
		}
		m := moves.Get(i)
		g.Push(m)
		score := -s.negamax(ctx, depth-1, 1, -beta, -alpha)
		g.Pop()

		if i == 0 || score > bestScore {
			bestScore = score
			best = m
		}
		alpha = max(alpha, score)
	}

	return Result{BestMove: best, Score: bestScore, Nodes: s.nodes}
}

// negamax implements spec's negamax-with-alpha-beta-pruning: a draw by
// repetition or the fifty-move rule scores 0, a position with no legal
// move scores checkmate (adjusted so shallower mates score higher) or
// stalemate (0), and the recursion bottoms out at depth 0 by calling the
// evaluation function directly.
func (s *Searcher) negamax(ctx context.Context, depth, ply int, alpha, beta int) int {
	s.nodes++
	if s.nodes&4095 == 0 && ctx.Err() != nil {
		return 0
	}

	if ply > 0 && s.game.IsDraw() {
		return 0
	}

	moves := s.game.GenerateLegal()
	if moves.Len() == 0 {
		if s.game.IsInCheck() {
			return -MateScore + ply
		}
		return 0
	}

	if depth <= 0 {
		return s.evaluate()
	}

	orderMoves(s.game.Position, moves, s.Ordering)

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		s.game.Push(m)
		score := -s.negamax(ctx, depth-1, ply+1, -beta, -alpha)
		s.game.Pop()

		if score >= beta {
			return beta
		}
		alpha = max(alpha, score)
	}

	return alpha
}

// evaluate scores the current position from the side-to-move's
// perspective, negamax convention: Eval itself returns a white-relative
// score, so black to move sees its own position negated.
func (s *Searcher) evaluate() int {
	score := int(s.Eval(s.game.Position))
	if s.game.Position.SideToMove == board.Black {
		return -score
	}
	return score
}
