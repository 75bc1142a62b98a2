package board

import "fmt"

// Move packs a move into 16 bits: bits 0-5 are the origin square, bits 6-11
// the destination square, bits 12-15 a flag naming one of the taxonomy
// values below. Capture and promotion-piece are both carried directly in
// the flag, decided once at generation time rather than reconstructed by
// re-examining the position later.
type Move uint16

// MoveFlag values. PR_* are quiet promotions, PC_* are capturing promotions.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagPass
	FlagCastling
	FlagEnPassant
	FlagCapture
	FlagPRKnight
	FlagPRBishop
	FlagPRRook
	FlagPRQueen
	FlagPCKnight
	FlagPCBishop
	FlagPCRook
	FlagPCQueen
)

// NoMove is the zero value, never produced by the move generator.
const NoMove Move = 0

const (
	moveFromMask = 0x003F
	moveToShift  = 6
	moveToMask   = 0x0FC0
	moveFlagShift = 12
)

// NewMove builds a move from origin, destination and flag.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(from)&moveFromMask | (Move(to)<<moveToShift)&moveToMask | Move(flag)<<moveFlagShift
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & moveFromMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m & moveToMask) >> moveToShift) }

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag { return MoveFlag(m >> moveFlagShift) }

// IsPromotion reports whether the move promotes a pawn, capturing or not.
func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f >= FlagPRKnight && f <= FlagPCQueen
}

// PromotionPiece returns the promoted-to piece type. Only valid when
// IsPromotion reports true.
func (m Move) PromotionPiece() PieceType {
	switch m.Flag() {
	case FlagPRKnight, FlagPCKnight:
		return Knight
	case FlagPRBishop, FlagPCBishop:
		return Bishop
	case FlagPRRook, FlagPCRook:
		return Rook
	case FlagPRQueen, FlagPCQueen:
		return Queen
	default:
		return NoPieceType
	}
}

// IsCapture reports whether the move removes an enemy piece, including
// en-passant and capturing promotions.
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case FlagCapture, FlagEnPassant, FlagPCKnight, FlagPCBishop, FlagPCRook, FlagPCQueen:
		return true
	default:
		return false
	}
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsCastling reports whether the move is a king castling move.
func (m Move) IsCastling() bool { return m.Flag() == FlagCastling }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsPass reports whether the move is a null (side-swap only) move.
func (m Move) IsPass() bool { return m.Flag() == FlagPass }

var promotionChar = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// String renders the move in long algebraic form, e.g. "e2e4" or "e7e8q".
// A pass renders as "0000", matching the UCI null-move convention.
func (m Move) String() string {
	if m.IsPass() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promotionChar[m.PromotionPiece()])
	}
	return s
}

// ParseMove parses long algebraic notation against pos to recover the flag
// bits that the text alone doesn't carry (capture, en-passant, castling).
func ParseMove(s string, pos *Position) (Move, error) {
	if s == "0000" {
		return NewMove(NoSquare, NoSquare, FlagPass), nil
	}
	if len(s) < 4 {
		return NoMove, fmt.Errorf("board: invalid move %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.Mailbox[from]
	if piece == NoPiece {
		return NoMove, fmt.Errorf("board: no piece at %s", from)
	}
	capture := pos.Mailbox[to] != NoPiece

	if len(s) == 5 {
		var pt PieceType
		switch s[4] {
		case 'n':
			pt = Knight
		case 'b':
			pt = Bishop
		case 'r':
			pt = Rook
		case 'q':
			pt = Queen
		default:
			return NoMove, fmt.Errorf("board: invalid promotion piece %q", s[4:])
		}
		flag := promoFlag(pt, capture)
		return NewMove(from, to, flag), nil
	}

	if piece.Type() == King && abs(int(to)-int(from)) == 2 {
		return NewMove(from, to, FlagCastling), nil
	}
	if piece.Type() == Pawn && to == pos.EnPassant && to.File() != from.File() {
		return NewMove(from, to, FlagEnPassant), nil
	}
	if capture {
		return NewMove(from, to, FlagCapture), nil
	}
	return NewMove(from, to, FlagNone), nil
}

func promoFlag(pt PieceType, capture bool) MoveFlag {
	if capture {
		switch pt {
		case Knight:
			return FlagPCKnight
		case Bishop:
			return FlagPCBishop
		case Rook:
			return FlagPCRook
		default:
			return FlagPCQueen
		}
	}
	switch pt {
	case Knight:
		return FlagPRKnight
	case Bishop:
		return FlagPRBishop
	case Rook:
		return FlagPRRook
	default:
		return FlagPRQueen
	}
}

// MoveList is a fixed-capacity move buffer, sized for the worst-case legal
// move count in any reachable chess position, to keep move generation
// allocation-free.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends a move.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves currently held.
func (ml *MoveList) Len() int { return ml.count }

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move { return ml.moves[i] }

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) { ml.moves[i] = m }

// Swap exchanges the moves at i and j, used by in-place move ordering.
func (ml *MoveList) Swap(i, j int) { ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i] }

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() { ml.count = 0 }

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the held moves as a slice sharing the list's backing array.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.count] }

// UndoInfo is the differential record pushed alongside each applied move,
// holding exactly what MakeMove destroys and UnmakeMove must restore.
type UndoInfo struct {
	Move           Move
	CapturedPiece  Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfmoveClock  int
	Hash           uint64
	Checkers       Bitboard
}
