package game

import (
	"fmt"

	"github.com/ongamse/juliette/internal/board"
)

// historyEntry pairs an applied move with the undo record needed to
// reverse it, so Pop never has to recompute anything from scratch.
type historyEntry struct {
	undo board.UndoInfo
}

// Game is a single chess session: the live position, the stack of moves
// played so far, and the repetition table derived from it. It is the unit
// a search or a host interacts with, not a bare *board.Position — search
// needs draw-by-repetition and the fifty-move rule, both of which require
// history a lone position doesn't carry.
type Game struct {
	Position *board.Position
	history  []historyEntry
	reps     repetitionMap
}

// NewGame starts a game from the standard opening position.
func NewGame() *Game {
	return newGameFrom(board.NewPosition())
}

// NewGameFromFEN starts a game from an arbitrary FEN record.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return newGameFrom(pos), nil
}

func newGameFrom(pos *board.Position) *Game {
	g := &Game{
		Position: pos,
		history:  make([]historyEntry, 0, 64),
		reps:     make(repetitionMap),
	}
	g.reps.add(pos.Hash)
	return g
}

// Push applies m to the position and records it on the history stack.
// The caller is responsible for only pushing moves GenerateLegal produced
// for the current position — Push does not re-validate legality.
func (g *Game) Push(m board.Move) {
	undo := g.Position.MakeMove(m)
	g.history = append(g.history, historyEntry{undo: undo})
	g.reps.add(g.Position.Hash)
}

// Pop reverses the most recently pushed move. Popping an empty history is
// a programmer error, not a recoverable one: it means the caller has lost
// track of how many moves it has actually played.
func (g *Game) Pop() {
	n := len(g.history)
	if n == 0 {
		panic("game: Pop called with empty history")
	}
	g.reps.remove(g.Position.Hash)
	entry := g.history[n-1]
	g.history = g.history[:n-1]
	g.Position.UnmakeMove(entry.undo)
}

// Len returns the number of moves currently on the history stack.
func (g *Game) Len() int { return len(g.history) }

// GenerateLegal returns the legal moves for the side to move.
func (g *Game) GenerateLegal() *board.MoveList {
	return g.Position.GenerateLegal()
}

// IsInCheck reports whether the side to move is in check.
func (g *Game) IsInCheck() bool {
	return g.Position.InCheck()
}

// RepetitionCount returns how many times the current position (including
// the occurrence on the board right now) has occurred in this game.
func (g *Game) RepetitionCount() int {
	return g.reps.count(g.Position.Hash)
}

// IsThreefoldRepetition reports whether the current position has now
// occurred three or more times.
func (g *Game) IsThreefoldRepetition() bool {
	return g.RepetitionCount() >= 3
}

// IsDraw reports whether the game is drawn by any rule: repetition, the
// fifty-move clock, insufficient material, or stalemate.
func (g *Game) IsDraw() bool {
	return g.IsThreefoldRepetition() || g.Position.IsDraw()
}

// IsGameOver reports whether the side to move has no legal move or the
// game is drawn under any of the rules IsDraw checks.
func (g *Game) IsGameOver() bool {
	return g.Position.GameOver() || g.IsDraw()
}
