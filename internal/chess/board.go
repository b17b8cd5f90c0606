package chess

import "strings"

// BoardSize is the number of rows and columns of the board.
const BoardSize = 8

// Square identifies a cell by row and column, 0-7 each.
// Row 0 is Black's back rank (rank 8), row 7 is White's (rank 1).
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether both coordinates are within 0-7.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte('1' + (BoardSize - 1 - s.Row))
}

// String returns the square in coordinate notation, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts coordinate notation ("e4") into a Square.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return Square{}, false
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: BoardSize - 1 - int(rank-'1'), Col: int(file - 'a')}, true
}

// Board is the 8x8 grid of cells, indexed [row][col].
type Board [BoardSize][BoardSize]Piece

// backRank is the piece order on both back ranks, from the a-file.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard chess starting position.
func InitialBoard() Board {
	var b Board
	for col := 0; col < BoardSize; col++ {
		b[Black.BackRow()][col] = B(backRank[col])
		b[Black.PawnRow()][col] = B(Pawn)
		b[White.PawnRow()][col] = W(Pawn)
		b[White.BackRow()][col] = W(backRank[col])
	}
	return b
}

// At returns the piece on the square. The square must be on the board.
func (b *Board) At(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

// Set places a piece on the square. The square must be on the board.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// Find returns the first square, in row-major order, holding the piece.
func (b *Board) Find(p Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == p {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many cells hold the piece.
func (b *Board) Count(p Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == p {
				n++
			}
		}
	}
	return n
}

// String draws the board with rank 8 at the top, one line per row,
// using FEN letters and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(Square{Row: row}.Rank())
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b[row][col].Letter())
			if col < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
