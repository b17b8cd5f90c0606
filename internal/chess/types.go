// Package chess provides core chess types and operations.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance: -1 for White, +1 for Black.
func (s Side) Forward() int {
	if s == White {
		return -1
	}
	return 1
}

// BackRow returns the row holding the side's king and rooks at the start.
func (s Side) BackRow() int {
	if s == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row the side's pawns start on.
func (s Side) PawnRow() int {
	return s.BackRow() + s.Forward()
}

// PromotionRow returns the far row on which the side's pawns promote.
func (s Side) PromotionRow() int {
	return s.Opposite().BackRow()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the content of one board cell: Empty, or a side and a kind.
// The kind lives in the upper bits and the side in the lowest bit.
type Piece uint8

// Empty is the cell value of an unoccupied square.
const Empty Piece = 0

// kindShift is used for encoding coloured pieces.
const kindShift = 1

// MakePiece creates a piece of the given side and kind.
func MakePiece(side Side, kind PieceKind) Piece {
	return Piece(int(kind)<<kindShift | int(side))
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// Side extracts the side from a piece. The result is meaningless for Empty.
func (p Piece) Side() Side {
	return Side(p & 0x01)
}

// Kind extracts the piece kind, NoKind for Empty.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> kindShift)
}

// IsEmpty reports whether the cell is unoccupied.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether the cell holds a piece of the given side and kind.
func (p Piece) Is(side Side, kind PieceKind) bool {
	return p == MakePiece(side, kind)
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	c := p.Kind().Letter()
	if p.Side() == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Side().String() + " " + p.Kind().String()
}

// PieceFromLetter converts a FEN letter into a piece. ok is false for
// anything that is not one of "PRNBQKprnbqk".
func PieceFromLetter(c byte) (Piece, bool) {
	side := White
	if c >= 'a' && c <= 'z' {
		side = Black
		c -= 'a' - 'A'
	}
	var kind PieceKind
	switch c {
	case 'P':
		kind = Pawn
	case 'R':
		kind = Rook
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Empty, false
	}
	return MakePiece(side, kind), true
}
