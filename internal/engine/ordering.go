package engine

import (
	"github.com/ongamse/juliette/internal/board"
	"github.com/ongamse/juliette/internal/config"
)

// mvvLva scores a capture by [victim][attacker]: more valuable victims and
// less valuable attackers sort first, the standard Most-Valuable-Victim /
// Least-Valuable-Attacker heuristic.
var mvvLva = [6][6]int{
	/*       P   N   B   R   Q   K  (attacker) */
	/* P */ {15, 14, 14, 13, 12, 11},
	/* N */ {25, 24, 24, 23, 22, 21},
	/* B */ {35, 34, 34, 33, 32, 31},
	/* R */ {45, 44, 44, 43, 42, 41},
	/* Q */ {55, 54, 54, 53, 52, 51},
	/* K */ {0, 0, 0, 0, 0, 0},
}

// flagRank places every move flag into one of six tiers, highest first:
// capturing promotion, quiet promotion, capture, castling, en passant,
// quiet — the ordering spec.md §4.4 names. It is evaluated for every move,
// capturing or not; moveScore only layers MVV-LVA on top within the plain
// capture tier, it never substitutes for flagRank.
func flagRank(f board.MoveFlag) int {
	switch f {
	case board.FlagPCQueen, board.FlagPCRook, board.FlagPCBishop, board.FlagPCKnight:
		return 5
	case board.FlagPRQueen, board.FlagPRRook, board.FlagPRBishop, board.FlagPRKnight:
		return 4
	case board.FlagCapture:
		return 3
	case board.FlagCastling:
		return 2
	case board.FlagEnPassant:
		return 1
	default:
		return 0
	}
}

// moveScore ranks m for ordering ahead of a fixed-depth alpha-beta search.
// The flag-rank tier dominates the score so no amount of MVV-LVA or
// promotion sub-ordering can cross a tier boundary; only within the plain
// capture tier does attacker/victim (via mvvLva) break ties, and within
// either promotion tier the promoted piece's value breaks ties.
// weights.CaptureBaseScore and weights.PromotionBaseScore come from config.Config so
// a host can retune the sub-ordering spread without recompiling.
func moveScore(pos *board.Position, m board.Move, weights config.MoveOrderingConfig) int {
	rank := flagRank(m.Flag())
	tier := rank * weights.CaptureBaseScore

	switch rank {
	case 5, 4:
		return tier + board.PieceValue[m.PromotionPiece()]*weights.PromotionBaseScore
	case 3:
		attacker := pos.Mailbox[m.From()].Type()
		victim := pos.Mailbox[m.To()].Type()
		return tier + mvvLva[victim][attacker]*1000
	default:
		return tier
	}
}

// orderMoves sorts ml in place, highest-scoring move first, by a single
// insertion sort pass — fine at the branching factors a fixed-depth
// negamax without quiescence actually explores.
func orderMoves(pos *board.Position, ml *board.MoveList, weights config.MoveOrderingConfig) {
	n := ml.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = moveScore(pos, ml.Get(i), weights)
	}
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && scores[j-1] < scores[j] {
			scores[j-1], scores[j] = scores[j], scores[j-1]
			ml.Swap(j-1, j)
			j--
		}
	}
}
