package chess

// Rook columns and king destination columns used by castling.
const (
	KingCol          = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0

	KingsideKingTo  = 6
	KingsideRookTo  = 5
	QueensideKingTo = 2
	QueensideRookTo = 3
)

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the rights of a fresh game.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Kingside reports the kingside right of the side.
func (c CastlingRights) Kingside(side Side) bool {
	if side == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside right of the side.
func (c CastlingRights) Queenside(side Side) bool {
	if side == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// WithoutSide returns a copy with both of the side's rights removed.
func (c CastlingRights) WithoutSide(side Side) CastlingRights {
	if side == White {
		c.WhiteKingside = false
		c.WhiteQueenside = false
	} else {
		c.BlackKingside = false
		c.BlackQueenside = false
	}
	return c
}

// WithoutRookCorner returns a copy with the side's right tied to the rook
// corner at sq removed. Squares that are not one of the side's original rook
// corners change nothing.
func (c CastlingRights) WithoutRookCorner(side Side, sq Square) CastlingRights {
	if sq.Row != side.BackRow() {
		return c
	}
	switch {
	case sq.Col == KingsideRookCol && side == White:
		c.WhiteKingside = false
	case sq.Col == QueensideRookCol && side == White:
		c.WhiteQueenside = false
	case sq.Col == KingsideRookCol:
		c.BlackKingside = false
	case sq.Col == QueensideRookCol:
		c.BlackQueenside = false
	}
	return c
}

// Mask packs the rights into four bits (K=1, Q=2, k=4, q=8).
func (c CastlingRights) Mask() int {
	mask := 0
	if c.WhiteKingside {
		mask |= 1
	}
	if c.WhiteQueenside {
		mask |= 2
	}
	if c.BlackKingside {
		mask |= 4
	}
	if c.BlackQueenside {
		mask |= 8
	}
	return mask
}

// String returns the FEN castling field, "-" when no rights remain.
func (c CastlingRights) String() string {
	s := ""
	if c.WhiteKingside {
		s += "K"
	}
	if c.WhiteQueenside {
		s += "Q"
	}
	if c.BlackKingside {
		s += "k"
	}
	if c.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
