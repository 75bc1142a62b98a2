package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ongamse/juliette/internal/board"
)

// TestPushPopRestoresPosition walks a sequence of pushes then pops them all
// back off, and checks the position is byte-for-byte identical to a fresh
// copy taken before any move was played.
func TestPushPopRestoresPosition(t *testing.T) {
	g := NewGame()
	before := *g.Position

	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	for _, uci := range moves {
		m, err := board.ParseMove(uci, g.Position)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", uci, err)
		}
		g.Push(m)
	}

	for g.Len() > 0 {
		g.Pop()
	}

	if diff := cmp.Diff(before, *g.Position); diff != "" {
		t.Fatalf("position after full push/pop round trip differs (-want +got):\n%s", diff)
	}
}

func TestPopOnEmptyHistoryPanics(t *testing.T) {
	g := NewGame()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Pop on empty history to panic")
		}
	}()
	g.Pop()
}

// TestThreefoldRepetition replays a shuffle of knights back and forth until
// the same position has occurred three times.
func TestThreefoldRepetition(t *testing.T) {
	g := NewGame()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, uci := range shuffle {
		m, err := board.ParseMove(uci, g.Position)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", uci, err)
		}
		g.Push(m)
	}
	if !g.IsThreefoldRepetition() {
		t.Fatalf("expected threefold repetition after shuffle, count=%d", g.RepetitionCount())
	}
	if !g.IsDraw() {
		t.Fatal("a threefold-repeated position must report as a draw")
	}
}

func TestRepetitionCountResetsOnPop(t *testing.T) {
	g := NewGame()
	m, err := board.ParseMove("g1f3", g.Position)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	g.Push(m)
	g.Pop()
	if g.RepetitionCount() != 1 {
		t.Fatalf("RepetitionCount() after pop = %d, want 1", g.RepetitionCount())
	}
}

func TestNewGameFromFENRejectsInvalidPosition(t *testing.T) {
	if _, err := NewGameFromFEN("8/8/8/8/8/8/8/8 w - - 0 1"); err == nil {
		t.Fatal("expected error for a position with no kings")
	}
}

func TestIsGameOverOnCheckmate(t *testing.T) {
	g := NewGame()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	for _, uci := range moves {
		m, err := board.ParseMove(uci, g.Position)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", uci, err)
		}
		g.Push(m)
	}
	if !g.IsGameOver() {
		t.Fatal("expected game to be over after fool's mate")
	}
}
