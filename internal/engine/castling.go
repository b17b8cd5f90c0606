package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CastlingMoves returns the castling candidates of the side, kingside first.
//
// The king must not be in check and the matching right must still be held.
// Kingside needs the f- and g-files empty and unattacked. Queenside needs the
// b-, c- and d-files empty and the c- and d-files unattacked; the b-file is
// only passed by the rook.
func CastlingMoves(g *GameState, side chess.Side) []chess.Move {
	rights := g.castling
	if !rights.Kingside(side) && !rights.Queenside(side) {
		return nil
	}

	row := side.BackRow()
	king := chess.Sq(row, chess.KingCol)
	if g.KingSquare(side) != king {
		return nil
	}
	enemy := side.Opposite()
	if g.SquareAttacked(king, enemy) {
		return nil // Can't castle out of check
	}

	var moves []chess.Move
	if rights.Kingside(side) &&
		g.pathClear(row, []int{5, 6}, []int{5, 6}, enemy) {
		m := chess.NewMove(&g.board, king, chess.Sq(row, chess.KingsideKingTo))
		m.Castle = true
		moves = append(moves, m)
	}
	if rights.Queenside(side) &&
		g.pathClear(row, []int{1, 2, 3}, []int{2, 3}, enemy) {
		m := chess.NewMove(&g.board, king, chess.Sq(row, chess.QueensideKingTo))
		m.Castle = true
		moves = append(moves, m)
	}
	return moves
}

// pathClear checks that every column in empty is unoccupied on the row and
// that no column in safe is attacked by the enemy.
func (g *GameState) pathClear(row int, empty, safe []int, enemy chess.Side) bool {
	for _, col := range empty {
		if !g.board[row][col].IsEmpty() {
			return false
		}
	}
	for _, col := range safe {
		if g.SquareAttacked(chess.Sq(row, col), enemy) {
			return false
		}
	}
	return true
}
