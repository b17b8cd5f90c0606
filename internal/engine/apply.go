package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove plays m if it matches a move of the current legal-move list.
// The matching generated move is applied, so the special-move flags of m
// itself are not trusted. Otherwise the state is left unchanged and an
// error wrapping ErrIllegalMove is returned.
func (g *GameState) ApplyMove(m chess.Move) error {
	for _, legal := range g.LegalMoves() {
		if legal.Equal(m) {
			g.applyMove(legal)
			return nil
		}
	}
	return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: len(g.moveHistory) + 1, Move: m.Algebraic()}
}

// MakeMove plays the legal move from one square to another and returns it.
// Both squares must be on the board. Moves are matched by their squares
// alone, so an en passant capture is found although its destination is empty.
func (g *GameState) MakeMove(from, to chess.Square) (chess.Move, error) {
	if !from.OnBoard() || !to.OnBoard() {
		return chess.Move{}, &errors.MoveError{
			Err:  errors.ErrInvalidSquare,
			Ply:  len(g.moveHistory) + 1,
			Move: from.String() + to.String(),
		}
	}
	proposed := chess.NewMove(&g.board, from, to)
	for _, legal := range g.LegalMoves() {
		if legal.Key() == proposed.Key() {
			g.applyMove(legal)
			return legal, nil
		}
	}
	return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: len(g.moveHistory) + 1, Move: proposed.Algebraic()}
}

// Push applies m without checking it against the legal-move list.
// m must come from LegalMoves of the current position.
func (g *GameState) Push(m chess.Move) {
	g.applyMove(m)
}

// UndoMove takes back the most recent move. With an empty history it returns
// an error wrapping ErrIllegalState and leaves the state unchanged.
func (g *GameState) UndoMove() error {
	if len(g.moveHistory) == 0 {
		return errors.Wrap(errors.ErrIllegalState, "undo with empty move history")
	}
	g.undoMove()
	return nil
}

// applyMove makes the move on the board and pushes one entry onto every
// history stack.
func (g *GameState) applyMove(m chess.Move) {
	side := m.Piece.Side()

	g.enPassantHistory = append(g.enPassantHistory, epTarget{square: g.enPassant, valid: g.hasEnPassant})
	g.moveHistory = append(g.moveHistory, m)

	// Move the piece
	landing := m.Piece
	if m.Promotion {
		landing = chess.MakePiece(side, chess.Queen)
	}
	g.board.Set(m.From, chess.Empty)
	g.board.Set(m.To, landing)

	if m.Piece.Kind() == chess.King {
		g.setKingSquare(side, m.To)
	}

	// The captured pawn is beside the start square, not on the destination
	if m.EnPassant {
		g.board.Set(m.EnPassantVictim(), chess.Empty)
	}

	// Set en passant square if double pawn push
	if m.IsDoublePawnPush() {
		g.enPassant = chess.Sq((m.From.Row+m.To.Row)/2, m.From.Col)
		g.hasEnPassant = true
	} else {
		g.enPassant = chess.Square{}
		g.hasEnPassant = false
	}

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m)
		g.board.Set(rookTo, g.board.At(rookFrom))
		g.board.Set(rookFrom, chess.Empty)
	}

	g.castling = updateCastlingRights(g.castling, m)
	g.castlingHistory = append(g.castlingHistory, g.castling)

	g.toMove = g.toMove.Opposite()
}

// undoMove pops one entry from every history stack and restores the position
// before the last move. The history must not be empty.
func (g *GameState) undoMove() {
	last := len(g.moveHistory) - 1
	m := g.moveHistory[last]
	g.moveHistory = g.moveHistory[:last]

	g.board.Set(m.From, m.Piece)
	g.board.Set(m.To, m.Captured)

	if m.EnPassant {
		g.board.Set(m.To, chess.Empty)
		g.board.Set(m.EnPassantVictim(), m.Captured)
	}

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m)
		g.board.Set(rookFrom, g.board.At(rookTo))
		g.board.Set(rookTo, chess.Empty)
	}

	if m.Piece.Kind() == chess.King {
		g.setKingSquare(m.Piece.Side(), m.From)
	}

	g.toMove = g.toMove.Opposite()

	g.castlingHistory = g.castlingHistory[:len(g.castlingHistory)-1]
	g.castling = g.castlingHistory[len(g.castlingHistory)-1]

	ep := g.enPassantHistory[len(g.enPassantHistory)-1]
	g.enPassantHistory = g.enPassantHistory[:len(g.enPassantHistory)-1]
	g.enPassant, g.hasEnPassant = ep.square, ep.valid

	g.checkmate = false
	g.stalemate = false
}

// castleRookSquares returns where the rook starts and ends for a castling move.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	row := m.To.Row
	if m.IsKingside() {
		return chess.Sq(row, chess.KingsideRookCol), chess.Sq(row, chess.KingsideRookTo)
	}
	return chess.Sq(row, chess.QueensideRookCol), chess.Sq(row, chess.QueensideRookTo)
}

// updateCastlingRights removes the rights lost by m. Rights are never added.
func updateCastlingRights(rights chess.CastlingRights, m chess.Move) chess.CastlingRights {
	side := m.Piece.Side()
	switch m.Piece.Kind() {
	case chess.King:
		rights = rights.WithoutSide(side)
	case chess.Rook:
		rights = rights.WithoutRookCorner(side, m.From)
	}
	// A rook captured on its corner takes the opponent's right with it
	if m.Captured.Kind() == chess.Rook {
		rights = rights.WithoutRookCorner(m.Captured.Side(), m.To)
	}
	return rights
}
