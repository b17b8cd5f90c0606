package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InCheck returns true if the side to move has its king attacked.
func (g *GameState) InCheck() bool {
	return g.SquareAttacked(g.kingSquare(g.toMove), g.toMove.Opposite())
}

// SquareAttacked returns true if any piece of bySide could move onto sq.
// It regenerates the reach of every bySide piece on each call; no attack
// maps are maintained. Pawns count the two squares they capture on rather
// than the squares they push to, so empty squares are seen as attacked too.
// Pushes are left out on purpose: a push can never capture.
func (g *GameState) SquareAttacked(sq chess.Square, bySide chess.Side) bool {
	var buf [32]chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board[row][col]
			if piece.IsEmpty() || piece.Side() != bySide {
				continue
			}
			from := chess.Sq(row, col)

			if piece.Kind() == chess.Pawn {
				if pawnAttacks(from, bySide, sq) {
					return true
				}
				continue
			}

			for _, m := range appendPieceMoves(buf[:0], g, from, piece) {
				if m.To == sq {
					return true
				}
			}
		}
	}
	return false
}

// pawnAttacks reports whether a pawn of side on from captures onto target.
func pawnAttacks(from chess.Square, side chess.Side, target chess.Square) bool {
	if target.Row != from.Row+side.Forward() {
		return false
	}
	return target.Col == from.Col-1 || target.Col == from.Col+1
}
