package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the moves the side to move may play, in generation order.
//
// Every pseudo-legal move and castling candidate is applied, the mover's king
// is tested against the opponent's reach, and the move is undone. The en
// passant target and castling rights are restored afterwards, so the call
// leaves the position as it found it. It also recomputes IsCheckmate and
// IsStalemate. Moves from an earlier call are stale once the position changes.
func (g *GameState) LegalMoves() []chess.Move {
	savedEnPassant, savedHasEnPassant := g.enPassant, g.hasEnPassant
	savedRights := g.castling

	side := g.toMove
	candidates := PseudoLegalMoves(g, side)
	candidates = append(candidates, CastlingMoves(g, side)...)

	legal := make([]chess.Move, 0, len(candidates))
	for _, m := range candidates {
		g.applyMove(m)
		if !g.SquareAttacked(g.kingSquare(side), side.Opposite()) {
			legal = append(legal, m)
		}
		g.undoMove()
	}

	g.enPassant, g.hasEnPassant = savedEnPassant, savedHasEnPassant
	g.castling = savedRights

	g.checkmate = false
	g.stalemate = false
	if len(legal) == 0 {
		if g.InCheck() {
			g.checkmate = true
		} else {
			g.stalemate = true
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *GameState) HasLegalMoves() bool {
	return len(g.LegalMoves()) > 0
}

// LegalMovesFrom returns the legal moves of the piece on from, for
// highlighting a selected square.
func (g *GameState) LegalMovesFrom(from chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range g.LegalMoves() {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}
