// Package engine provides chess move generation, legality checking and
// reversible move application.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// GameState is one game in progress: the board plus everything needed to
// generate legal moves and to undo them.
//
// A GameState is not safe for concurrent use. LegalMoves probes candidates
// by applying and undoing them, so generation and application must not be
// interleaved. Separate GameStates share nothing.
type GameState struct {
	board  chess.Board
	toMove chess.Side

	// Keep track of where the two kings are for check detection.
	whiteKing chess.Square
	blackKing chess.Square

	// Is en passant capture possible? If so enPassant is the square
	// a capturing pawn lands on.
	enPassant    chess.Square
	hasEnPassant bool

	castling chess.CastlingRights

	moveHistory []chess.Move
	// One entry per ply plus the rights the game started with.
	castlingHistory []chess.CastlingRights
	// En passant target before each ply.
	enPassantHistory []epTarget

	// The full move number the game started at (1 unless loaded from FEN).
	startFullmove int
	startSide     chess.Side

	// Derived by LegalMoves, cleared by UndoMove.
	checkmate bool
	stalemate bool
}

type epTarget struct {
	square chess.Square
	valid  bool
}

// NewGameState creates a game in the standard starting position with full
// castling rights and White to move.
func NewGameState() *GameState {
	g := &GameState{}
	g.Reset()
	return g
}

// Reset returns the game to the standard starting position and drops the history.
func (g *GameState) Reset() {
	rights := chess.AllCastlingRights()
	*g = GameState{
		board:           chess.InitialBoard(),
		toMove:          chess.White,
		whiteKing:       chess.Sq(chess.White.BackRow(), chess.KingCol),
		blackKing:       chess.Sq(chess.Black.BackRow(), chess.KingCol),
		castling:        rights,
		castlingHistory: []chess.CastlingRights{rights},
		startFullmove:   1,
		startSide:       chess.White,
	}
}

// Board returns a copy of the grid for rendering.
func (g *GameState) Board() chess.Board {
	return g.board
}

// At returns the piece on an on-board square.
func (g *GameState) At(sq chess.Square) chess.Piece {
	return g.board.At(sq)
}

// SideToMove returns the side whose turn it is.
func (g *GameState) SideToMove() chess.Side {
	return g.toMove
}

// KingSquare returns the cached location of the side's king.
func (g *GameState) KingSquare(side chess.Side) chess.Square {
	if side == chess.White {
		return g.whiteKing
	}
	return g.blackKing
}

// kingSquare is KingSquare for internal callers that rely on the cache.
// A cache that disagrees with the board is a programming error.
func (g *GameState) kingSquare(side chess.Side) chess.Square {
	sq := g.KingSquare(side)
	if !g.board.At(sq).Is(side, chess.King) {
		panic(fmt.Sprintf("engine: %s king is not on %s", side, sq))
	}
	return sq
}

func (g *GameState) setKingSquare(side chess.Side, sq chess.Square) {
	if side == chess.White {
		g.whiteKing = sq
	} else {
		g.blackKing = sq
	}
}

// EnPassant returns the en passant target square, if any.
func (g *GameState) EnPassant() (chess.Square, bool) {
	return g.enPassant, g.hasEnPassant
}

// CastlingRights returns the current castling rights.
func (g *GameState) CastlingRights() chess.CastlingRights {
	return g.castling
}

// History returns a copy of the moves played so far, oldest first.
func (g *GameState) History() []chess.Move {
	return append([]chess.Move(nil), g.moveHistory...)
}

// Plies returns the number of moves played so far.
func (g *GameState) Plies() int {
	return len(g.moveHistory)
}

// LastMove returns the most recent move, if any.
func (g *GameState) LastMove() (chess.Move, bool) {
	if len(g.moveHistory) == 0 {
		return chess.Move{}, false
	}
	return g.moveHistory[len(g.moveHistory)-1], true
}

// Notation returns the move history in coordinate notation.
func (g *GameState) Notation() []string {
	out := make([]string, len(g.moveHistory))
	for i, m := range g.moveHistory {
		out[i] = m.Algebraic()
	}
	return out
}

// FullmoveNumber returns the FEN full move number of the current position.
func (g *GameState) FullmoveNumber() int {
	plies := len(g.moveHistory)
	if g.startSide == chess.Black {
		plies++
	}
	return g.startFullmove + plies/2
}

// IsCheckmate reports the result of the most recent LegalMoves call.
func (g *GameState) IsCheckmate() bool {
	return g.checkmate
}

// IsStalemate reports the result of the most recent LegalMoves call.
func (g *GameState) IsStalemate() bool {
	return g.stalemate
}

// Clone returns a deep copy that can be used independently, e.g. on
// another goroutine.
func (g *GameState) Clone() *GameState {
	c := *g
	c.moveHistory = append([]chess.Move(nil), g.moveHistory...)
	c.castlingHistory = append([]chess.CastlingRights(nil), g.castlingHistory...)
	c.enPassantHistory = append([]epTarget(nil), g.enPassantHistory...)
	return &c
}

// Snapshot captures the position-defining state for comparison.
// History is deliberately not part of it.
type Snapshot struct {
	Board        chess.Board
	SideToMove   chess.Side
	Castling     chess.CastlingRights
	EnPassant    chess.Square
	HasEnPassant bool
	WhiteKing    chess.Square
	BlackKing    chess.Square
}

// Snapshot captures the current position.
func (g *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Board:        g.board,
		SideToMove:   g.toMove,
		Castling:     g.castling,
		HasEnPassant: g.hasEnPassant,
		WhiteKing:    g.whiteKing,
		BlackKing:    g.blackKing,
	}
	if g.hasEnPassant {
		s.EnPassant = g.enPassant
	}
	return s
}
