package board

import (
	"fmt"
	"strings"
)

// ToSAN renders m in Standard Algebraic Notation relative to pos. SAN is
// not required by the move/position interfaces a host needs (those are
// specified in long algebraic form) but is a reasonable supplemental
// feature for a complete repo — display and PGN interop are the obvious
// consumers — so it is implemented here in the teacher's own style.
func (m Move) ToSAN(pos *Position) string {
	if m.IsPass() {
		return "--"
	}
	if m.IsCastling() {
		if m.To() > m.From() {
			return "O-O"
		}
		return "O-O-O"
	}

	from, to := m.From(), m.To()
	piece := pos.Mailbox[from]
	if piece == NoPiece {
		return m.String()
	}
	pt := piece.Type()

	var sb strings.Builder
	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguation(pos, m, pt))
	}

	if m.IsCapture() {
		if pt == Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.PromotionPiece()])
	}

	newPos := pos.Copy()
	newPos.MakeMove(m)
	if newPos.IsCheckmate() {
		sb.WriteByte('#')
	} else if newPos.InCheck() {
		sb.WriteByte('+')
	}

	return sb.String()
}

// disambiguation returns the minimal file/rank/square prefix needed to
// distinguish m from other legal moves of the same piece type to the same
// destination.
func disambiguation(pos *Position, m Move, pt PieceType) string {
	from, to := m.From(), m.To()
	pieces := pos.Pieces[pos.SideToMove][pt]

	var candidates Bitboard
	legal := pos.GenerateLegal()
	for i := 0; i < legal.Len(); i++ {
		mv := legal.Get(i)
		if mv.To() != to || mv.From() == from {
			continue
		}
		if pieces.IsSet(mv.From()) {
			candidates |= SquareBB(mv.From())
		}
	}
	if candidates == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates.Squares() {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + from.File()))
	}
	if !sameRank {
		return string(rune('1' + from.Rank()))
	}
	return from.String()
}

// ParseSAN parses a SAN move string against pos.
func ParseSAN(s string, pos *Position) (Move, error) {
	s = strings.TrimSpace(s)

	if s == "O-O" || s == "0-0" {
		if pos.SideToMove == White {
			return NewMove(E1, G1, FlagCastling), nil
		}
		return NewMove(E8, G8, FlagCastling), nil
	}
	if s == "O-O-O" || s == "0-0-0" {
		if pos.SideToMove == White {
			return NewMove(E1, C1, FlagCastling), nil
		}
		return NewMove(E8, C8, FlagCastling), nil
	}

	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	promoPiece := NoPieceType
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		switch s[idx+1] {
		case 'N':
			promoPiece = Knight
		case 'B':
			promoPiece = Bishop
		case 'R':
			promoPiece = Rook
		case 'Q':
			promoPiece = Queen
		}
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pt := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		switch s[0] {
		case 'N':
			pt = Knight
		case 'B':
			pt = Bishop
		case 'R':
			pt = Rook
		case 'Q':
			pt = Queen
		case 'K':
			pt = King
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, fmt.Errorf("board: invalid SAN %q", s)
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, err
	}
	s = s[:len(s)-2]

	disambigFile, disambigRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = int(c - '1')
		}
	}

	legal := pos.GenerateLegal()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.To() != dest {
			continue
		}
		from := m.From()
		piece := pos.Mailbox[from]
		if piece.Type() != pt {
			continue
		}
		if disambigFile >= 0 && from.File() != disambigFile {
			continue
		}
		if disambigRank >= 0 && from.Rank() != disambigRank {
			continue
		}
		if isCapture && !m.IsCapture() {
			continue
		}
		if promoPiece != NoPieceType && (!m.IsPromotion() || m.PromotionPiece() != promoPiece) {
			continue
		}
		return m, nil
	}

	return NoMove, fmt.Errorf("board: no legal move matches SAN %q", s)
}
