package chess

// Move describes one ply. Moves are values; the engine never mutates one
// after generation.
type Move struct {
	From Square
	To   Square

	// The piece being moved, as it stood on From.
	Piece Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// enemy pawn, which does not stand on To.
	Captured Piece

	EnPassant bool
	Castle    bool

	// Promotion is always to a Queen of the mover's side.
	Promotion bool
}

// NewMove builds a move between two on-board squares, reading the moved and
// captured pieces from the board. Special-move flags are left unset except
// promotion, which is implied by a pawn reaching its far row.
func NewMove(b *Board, from, to Square) Move {
	m := Move{
		From:     from,
		To:       to,
		Piece:    b.At(from),
		Captured: b.At(to),
	}
	if m.Piece.Kind() == Pawn && to.Row == m.Piece.Side().PromotionRow() {
		m.Promotion = true
	}
	return m
}

// Key returns the canonical comparison key of the from/to pair.
func (m Move) Key() int {
	return m.From.Row*1000 + m.From.Col*100 + m.To.Row*10 + m.To.Col
}

// Equal reports whether two moves share endpoints and moved/captured pieces.
// It is used to match a proposed move against the legal-move list.
func (m Move) Equal(other Move) bool {
	return m.Key() == other.Key() && m.Piece == other.Piece && m.Captured == other.Captured
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// Side returns the side making the move.
func (m Move) Side() Side {
	return m.Piece.Side()
}

// IsDoublePawnPush reports a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool {
	d := m.To.Row - m.From.Row
	return m.Piece.Kind() == Pawn && (d == 2 || d == -2)
}

// IsKingside reports whether a castling move goes towards the h-file.
func (m Move) IsKingside() bool {
	return m.Castle && m.To.Col > m.From.Col
}

// EnPassantVictim returns the square of the pawn removed by an en passant
// capture: beside the start square, on the file of the destination.
func (m Move) EnPassantVictim() Square {
	return Square{Row: m.From.Row, Col: m.To.Col}
}

// Algebraic returns the move in coordinate notation, e.g. "e2e4".
func (m Move) Algebraic() string {
	return m.From.String() + m.To.String()
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return m.Algebraic()
}
