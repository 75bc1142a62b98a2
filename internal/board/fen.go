package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN record into a Position. Halfmove clock and
// fullmove number are lenient: if either trailing field is missing they
// default to 0 and 1 respectively, matching common FEN producers that
// omit them for a fresh position.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("board: invalid FEN %q: need at least 4 fields, got %d", fen, len(parts))
	}

	pos := &Position{
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
	for sq := range pos.Mailbox {
		pos.Mailbox[sq] = NoPiece
	}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: invalid side to move %q", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("board: invalid en passant square %q", parts[3])
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("board: invalid halfmove clock %q", parts[4])
		}
		pos.HalfmoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("board: invalid fullmove number %q", parts[5])
		}
		pos.FullmoveNumber = fmn
	}

	pos.Hash = pos.ComputeHash()
	pos.UpdateCheckers()

	return pos, nil
}

func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: invalid piece placement %q: need 8 ranks, got %d", placement, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("board: too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("board: invalid piece character %q", c)
			}
			pos.setPiece(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("board: invalid square count in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		pos.CastlingRights = NoCastling
		return nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			pos.CastlingRights |= CastleWhiteKingside
		case 'Q':
			pos.CastlingRights |= CastleWhiteQueenside
		case 'k':
			pos.CastlingRights |= CastleBlackKingside
		case 'q':
			pos.CastlingRights |= CastleBlackQueenside
		default:
			return fmt.Errorf("board: invalid castling character %q", c)
		}
	}
	return nil
}

// ToFEN renders the position as a FEN record.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Mailbox[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullmoveNumber))

	return sb.String()
}

// ComputeHash recomputes the Zobrist hash for the position from scratch,
// independent of the incrementally maintained Hash field. Used to seed a
// freshly parsed position and to cross-check incremental updates in tests.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= ZobristPiece(NewPiece(pt, c), sq)
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= ZobristSideToMove()
	}

	for _, right := range [4]CastlingRights{CastleWhiteKingside, CastleWhiteQueenside, CastleBlackKingside, CastleBlackQueenside} {
		if p.CastlingRights&right != 0 {
			hash ^= ZobristCastlingRight(right)
		}
	}

	if p.EnPassant != NoSquare {
		hash ^= ZobristEnPassantFile(p.EnPassant.File())
	}

	return hash
}
