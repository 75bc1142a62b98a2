package board

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("ToFEN() = %q, want %q", got, fen)
		}
	}
}

func TestParseFENDefaultsClocks(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", pos.HalfmoveClock)
	}
	if pos.FullmoveNumber != 1 {
		t.Errorf("FullmoveNumber = %d, want 1", pos.FullmoveNumber)
	}
}

func TestParseFENRejectsMissingFields(t *testing.T) {
	if _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"); err == nil {
		t.Fatal("expected error for FEN missing fields, got nil")
	}
}

func TestMailboxMatchesBitboards(t *testing.T) {
	pos := NewPosition()
	for sq := A1; sq <= H8; sq++ {
		want := NoPiece
		for c := White; c <= Black; c++ {
			for pt := Pawn; pt <= King; pt++ {
				if pos.Pieces[c][pt].IsSet(sq) {
					want = NewPiece(pt, c)
				}
			}
		}
		if got := pos.Mailbox[sq]; got != want {
			t.Errorf("Mailbox[%s] = %v, want %v", sq, got, want)
		}
	}
}
