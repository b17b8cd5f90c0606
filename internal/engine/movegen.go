package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables. Their order fixes the order of generated moves.
var (
	rookDirections   = [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopDirections = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections  = append(append([][2]int{}, rookDirections...), bishopDirections...)
	knightOffsets    = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets      = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PseudoLegalMoves returns every move the side's pieces could make by their
// movement and occupancy rules alone, ignoring the safety of the side's king.
// Castling is not included. Moves are ordered by a row-major board scan and
// then by each piece's fixed direction order.
func PseudoLegalMoves(g *GameState, side chess.Side) []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board[row][col]
			if piece.IsEmpty() || piece.Side() != side {
				continue
			}
			moves = appendPieceMoves(moves, g, chess.Sq(row, col), piece)
		}
	}
	return moves
}

// PieceMoves returns the pseudo-legal moves of the piece on from.
func PieceMoves(g *GameState, from chess.Square) []chess.Move {
	piece := g.board.At(from)
	if piece.IsEmpty() {
		return nil
	}
	return appendPieceMoves(nil, g, from, piece)
}

func appendPieceMoves(moves []chess.Move, g *GameState, from chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Kind() {
	case chess.Pawn:
		return appendPawnMoves(moves, g, from, piece.Side())
	case chess.Rook:
		return appendSlidingMoves(moves, &g.board, from, piece.Side(), rookDirections)
	case chess.Bishop:
		return appendSlidingMoves(moves, &g.board, from, piece.Side(), bishopDirections)
	case chess.Queen:
		return appendSlidingMoves(moves, &g.board, from, piece.Side(), queenDirections)
	case chess.Knight:
		return appendStepMoves(moves, &g.board, from, piece.Side(), knightOffsets)
	case chess.King:
		return appendStepMoves(moves, &g.board, from, piece.Side(), kingOffsets)
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes from the start row, diagonal
// captures and en passant captures. NewMove flags promotions.
func appendPawnMoves(moves []chess.Move, g *GameState, from chess.Square, side chess.Side) []chess.Move {
	dir := side.Forward()

	one := from.Offset(dir, 0)
	if one.OnBoard() && g.board.At(one).IsEmpty() {
		moves = append(moves, chess.NewMove(&g.board, from, one))
		two := from.Offset(2*dir, 0)
		if from.Row == side.PawnRow() && g.board.At(two).IsEmpty() {
			moves = append(moves, chess.NewMove(&g.board, from, two))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		target := g.board.At(to)
		switch {
		case !target.IsEmpty() && target.Side() != side:
			moves = append(moves, chess.NewMove(&g.board, from, to))
		case g.hasEnPassant && to == g.enPassant:
			m := chess.NewMove(&g.board, from, to)
			m.EnPassant = true
			m.Captured = chess.MakePiece(side.Opposite(), chess.Pawn)
			moves = append(moves, m)
		}
	}
	return moves
}

// appendSlidingMoves walks each direction until the edge, an enemy piece
// (included) or a friendly piece (excluded).
func appendSlidingMoves(moves []chess.Move, b *chess.Board, from chess.Square, side chess.Side, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := b.At(to)
			if !target.IsEmpty() {
				if target.Side() != side {
					moves = append(moves, chess.NewMove(b, from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(b, from, to))
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// appendStepMoves adds each on-board offset not occupied by a friendly piece.
func appendStepMoves(moves []chess.Move, b *chess.Board, from chess.Square, side chess.Side, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.OnBoard() {
			continue
		}
		if target := b.At(to); target.IsEmpty() || target.Side() != side {
			moves = append(moves, chess.NewMove(b, from, to))
		}
	}
	return moves
}
