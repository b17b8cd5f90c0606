package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameStateFromFEN creates a game from a FEN string. The piece placement
// field is required; missing trailing fields default to White to move, no
// castling, no en passant and move 1. The halfmove clock is accepted but not
// tracked.
func NewGameStateFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := &GameState{toMove: chess.White, startFullmove: 1}

	if err := parsePiecePositions(g, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseFullmove(g, parts); err != nil {
		return nil, err
	}
	if g.SquareAttacked(g.kingSquare(g.toMove.Opposite()), g.toMove) {
		return nil, fmt.Errorf("%s king can be captured: %w", g.toMove.Opposite(), errors.ErrInvalidFEN)
	}

	g.startSide = g.toMove
	g.castlingHistory = []chess.CastlingRights{g.castling}
	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(g *GameState, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
			if piece.Kind() == chess.Pawn && (row == 0 || row == chess.BoardSize-1) {
				return fmt.Errorf("pawn on back rank: %w", errors.ErrInvalidFEN)
			}
			g.board[row][col] = piece
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}

	for _, side := range []chess.Side{chess.White, chess.Black} {
		king := chess.MakePiece(side, chess.King)
		if n := g.board.Count(king); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", side, n, errors.ErrInvalidFEN)
		}
		sq, _ := g.board.Find(king)
		g.setKingSquare(side, sq)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right is only
// kept when the king and the rook still stand on their original squares.
func parseCastlingRights(g *GameState, parts []string) error {
	g.castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			g.castling.WhiteKingside = g.castlingPiecesHome(chess.White, chess.KingsideRookCol)
		case 'Q':
			g.castling.WhiteQueenside = g.castlingPiecesHome(chess.White, chess.QueensideRookCol)
		case 'k':
			g.castling.BlackKingside = g.castlingPiecesHome(chess.Black, chess.KingsideRookCol)
		case 'q':
			g.castling.BlackQueenside = g.castlingPiecesHome(chess.Black, chess.QueensideRookCol)
		default:
			return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

func (g *GameState) castlingPiecesHome(side chess.Side, rookCol int) bool {
	row := side.BackRow()
	return g.board[row][chess.KingCol].Is(side, chess.King) &&
		g.board[row][rookCol].Is(side, chess.Rook)
}

// parseEnPassant parses the en passant target square field. The target must
// lie directly behind a pawn of the side that just moved.
func parseEnPassant(g *GameState, parts []string) error {
	g.enPassant, g.hasEnPassant = chess.Square{}, false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	mover := g.toMove.Opposite()
	pawnAt := sq.Offset(mover.Forward(), 0)
	if sq.Row != mover.PawnRow()+mover.Forward() || !g.board.At(pawnAt).Is(mover, chess.Pawn) {
		return fmt.Errorf("en passant square %s without a pawn to capture: %w", parts[3], errors.ErrInvalidFEN)
	}
	g.enPassant, g.hasEnPassant = sq, true
	return nil
}

// parseFullmove parses the full move number; the halfmove clock is skipped.
func parseFullmove(g *GameState, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid full move number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	g.startFullmove = n
	return nil
}

// FEN converts the current position to a FEN string. The halfmove clock is
// always written as 0.
func (g *GameState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())
	sb.WriteByte(' ')
	if g.hasEnPassant {
		sb.WriteString(g.enPassant.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " 0 %d", g.FullmoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, b *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := b[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
