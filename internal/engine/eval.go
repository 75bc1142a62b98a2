package engine

import "github.com/ongamse/juliette/internal/board"

// EvalFunc scores a position from the side-to-move-agnostic perspective
// of white (positive favors white), as a black box the search depends on
// through a field rather than an import — any static evaluation, tuned or
// not, can be substituted without the search package changing. int16 is
// wide enough for any centipawn evaluation this module or a replacement
// plugs in (Searcher.evaluate widens it back to int before it meets
// Infinity/MateScore in the alpha-beta bounds).
type EvalFunc func(*board.Position) int16

// MaterialEval is the minimal structural evaluation the search requires:
// piece-value material count only, no positional terms. It exists so the
// search package has a working default; tuned evaluation weights are
// explicitly out of scope for this module.
func MaterialEval(pos *board.Position) int16 {
	return int16(pos.Material())
}
