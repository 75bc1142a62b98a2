package board

// GenerateLegal returns every legal move for the side to move.
func (p *Position) GenerateLegal() *MoveList {
	ml := &MoveList{}
	p.generatePseudoLegal(ml)
	return p.filterLegal(ml)
}

// GeneratePseudoLegal returns every pseudo-legal move: may leave the
// moving side's own king in check, callers needing legality must filter
// with IsLegal or call GenerateLegal instead.
func (p *Position) GeneratePseudoLegal() *MoveList {
	ml := &MoveList{}
	p.generatePseudoLegal(ml)
	return ml
}

// GenerateCaptures returns every legal capturing move (en passant and
// capturing promotions included) plus every legal non-capturing
// promotion.
func (p *Position) GenerateCaptures() *MoveList {
	ml := &MoveList{}
	p.generateCaptures(ml)
	return p.filterLegal(ml)
}

func (p *Position) generatePseudoLegal(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	occupied := p.AllOccupied
	enemies := p.Occupied[them]

	p.generatePawnMoves(ml, us, enemies, occupied)
	p.generatePieceMoves(ml, Knight, us, occupied, func(from Square) Bitboard {
		return KnightAttacks(from)
	})
	p.generatePieceMoves(ml, Bishop, us, occupied, func(from Square) Bitboard {
		return BishopAttacks(from, occupied)
	})
	p.generatePieceMoves(ml, Rook, us, occupied, func(from Square) Bitboard {
		return RookAttacks(from, occupied)
	})
	p.generatePieceMoves(ml, Queen, us, occupied, func(from Square) Bitboard {
		return QueenAttacks(from, occupied)
	})
	p.generateKingMoves(ml, us)
	p.generateCastlingMoves(ml, us)
}

// generatePieceMoves handles every non-pawn, non-king piece type with a
// single shared loop: compute the attack set, split it against own/enemy
// occupancy, and tag each destination's capture flag accordingly.
func (p *Position) generatePieceMoves(ml *MoveList, pt PieceType, us Color, occupied Bitboard, attacksFrom func(Square) Bitboard) {
	pieces := p.Pieces[us][pt]
	own := p.Occupied[us]
	enemies := p.Occupied[us.Other()]

	for pieces != 0 {
		from := pieces.PopLSB()
		targets := attacksFrom(from) &^ own
		for targets != 0 {
			to := targets.PopLSB()
			flag := FlagNone
			if enemies.IsSet(to) {
				flag = FlagCapture
			}
			ml.Add(NewMove(from, to, flag))
		}
	}
}

func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromo := push1 &^ promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir), to, FlagNone))
	}

	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*pushDir), to, FlagNone))
	}

	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir+1), to, FlagCapture))
	}

	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir-1), to, FlagCapture))
	}

	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to, false)
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to, true)
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to, true)
	}

	if p.EnPassant != NoSquare {
		epBB := SquareBB(p.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(NewMove(from, p.EnPassant, FlagEnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square, capture bool) {
	ml.Add(NewMove(from, to, promoFlag(Queen, capture)))
	ml.Add(NewMove(from, to, promoFlag(Rook, capture)))
	ml.Add(NewMove(from, to, promoFlag(Bishop, capture)))
	ml.Add(NewMove(from, to, promoFlag(Knight, capture)))
}

func (p *Position) generateKingMoves(ml *MoveList, us Color) {
	from := p.KingSquare[us]
	own := p.Occupied[us]
	enemies := p.Occupied[us.Other()]
	attacks := KingAttacks(from) &^ own

	for attacks != 0 {
		to := attacks.PopLSB()
		flag := FlagNone
		if enemies.IsSet(to) {
			flag = FlagCapture
		}
		ml.Add(NewMove(from, to, flag))
	}
}

func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	if us == White {
		if p.CastlingRights&CastleWhiteKingside != 0 &&
			p.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			ml.Add(NewMove(E1, G1, FlagCastling))
		}
		if p.CastlingRights&CastleWhiteQueenside != 0 &&
			p.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			ml.Add(NewMove(E1, C1, FlagCastling))
		}
		return
	}

	if p.CastlingRights&CastleBlackKingside != 0 &&
		p.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
		!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
		ml.Add(NewMove(E8, G8, FlagCastling))
	}
	if p.CastlingRights&CastleBlackQueenside != 0 &&
		p.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
		!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
		ml.Add(NewMove(E8, C8, FlagCastling))
	}
}

func (p *Position) generateCaptures(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	enemies := p.Occupied[them]
	occupied := p.AllOccupied

	pawns := p.Pieces[us][Pawn]
	var attackL, attackR, pushPromo Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		pushPromo = pawns.North() & ^occupied & Rank8
		promotionRank = Rank8
		pushDir = 8
	} else {
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		pushPromo = pawns.South() & ^occupied & Rank1
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir+1), to, FlagCapture))
	}
	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir-1), to, FlagCapture))
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to, true)
	}
	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to, true)
	}
	for pushPromo != 0 {
		to := pushPromo.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to, false)
	}

	if p.EnPassant != NoSquare {
		epBB := SquareBB(p.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(NewMove(from, p.EnPassant, FlagEnPassant))
		}
	}

	p.generateCapturesFor(ml, Knight, us, enemies, func(from Square) Bitboard { return KnightAttacks(from) })
	p.generateCapturesFor(ml, Bishop, us, enemies, func(from Square) Bitboard { return BishopAttacks(from, occupied) })
	p.generateCapturesFor(ml, Rook, us, enemies, func(from Square) Bitboard { return RookAttacks(from, occupied) })
	p.generateCapturesFor(ml, Queen, us, enemies, func(from Square) Bitboard { return QueenAttacks(from, occupied) })

	from := p.KingSquare[us]
	attacks := KingAttacks(from) & enemies
	for attacks != 0 {
		to := attacks.PopLSB()
		ml.Add(NewMove(from, to, FlagCapture))
	}
}

func (p *Position) generateCapturesFor(ml *MoveList, pt PieceType, us Color, enemies Bitboard, attacksFrom func(Square) Bitboard) {
	pieces := p.Pieces[us][pt]
	for pieces != 0 {
		from := pieces.PopLSB()
		targets := attacksFrom(from) & enemies
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(NewMove(from, to, FlagCapture))
		}
	}
}

// filterLegal keeps only the moves of ml that do not leave the moving
// side's own king in check. Pinned is computed once for the whole batch
// rather than once per move, since isLegal's fast path needs it for every
// candidate.
func (p *Position) filterLegal(ml *MoveList) *MoveList {
	result := &MoveList{}
	pinned := p.ComputePinned()
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if p.isLegal(m, pinned) {
			result.Add(m)
		}
	}
	return result
}

// IsLegal reports whether applying m would leave the moving side's own
// king in check. Exported for callers checking a single move in isolation
// (tests, a host validating a proposed move); batch callers generating an
// entire move list use isLegal directly so they compute pinned once.
func (p *Position) IsLegal(m Move) bool {
	return p.isLegal(m, p.ComputePinned())
}

// isLegal is IsLegal's implementation, taking the side to move's pinned
// bitboard as a parameter. King moves (other than castling, already
// validated at generation time) check the destination directly. A move by
// a piece that is not pinned, while its side is not already in check,
// cannot expose its own king — that is what "pinned" means — so it skips
// the make/unmake check entirely. En passant always falls through to the
// full check regardless of pin status: removing the captured pawn can
// unmask a check along the rank behind it, a discovery a per-square pin
// table does not model. Everything else is verified by making and
// unmaking the move, simpler to get right than extending the pin table to
// cover every discovered-check shape.
func (p *Position) isLegal(m Move, pinned Bitboard) bool {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	ksq := p.KingSquare[us]

	if from == ksq && !m.IsCastling() {
		occ := p.AllOccupied &^ SquareBB(from)
		return p.AttackersByColor(m.To(), them, occ) == 0
	}
	if m.IsCastling() {
		return true
	}
	if !m.IsEnPassant() && !p.InCheck() && pinned&SquareBB(from) == 0 {
		return true
	}

	undo := p.MakeMove(m)
	attacked := p.IsSquareAttacked(ksq, them)
	p.UnmakeMove(undo)

	return !attacked
}

// IsDraw reports whether the position itself (independent of history) is
// a draw: stalemate, the fifty-move rule, or insufficient material. Draw
// by repetition is tracked one layer up by the game package, which owns
// the position history this function has no access to.
func (p *Position) IsDraw() bool {
	if p.IsStalemate() {
		return true
	}
	if p.HalfmoveClock >= 100 {
		return true
	}
	return p.IsInsufficientMaterial()
}
