package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Status describes the state of play. It calls LegalMoves, so the
// checkmate and stalemate flags are current afterwards.
func Status(g *engine.GameState) string {
	g.LegalMoves()
	switch {
	case g.IsCheckmate():
		return fmt.Sprintf("checkmate, %s wins", g.SideToMove().Opposite())
	case g.IsStalemate():
		return "stalemate"
	case g.InCheck():
		return fmt.Sprintf("%s to move, in check", g.SideToMove())
	}
	return fmt.Sprintf("%s to move", g.SideToMove())
}

// SortedNotation returns the moves in coordinate notation, sorted.
func SortedNotation(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Algebraic()
	}
	slices.Sort(out)
	return out
}

// SquareNames returns the squares in coordinate notation, keeping order.
func SquareNames(squares []chess.Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}

// TextOptions selects the parts of WriteText.
type TextOptions struct {
	Board      bool
	FEN        bool
	LegalMoves bool
}

// WriteText writes the position as a board diagram, a FEN line and a
// line of legal moves, as selected by opts.
func WriteText(w io.Writer, g *engine.GameState, opts TextOptions) {
	if opts.Board {
		b := g.Board()
		fmt.Fprint(w, b.String())
	}
	if opts.FEN {
		fmt.Fprintln(w, g.FEN())
	}
	if opts.LegalMoves {
		fmt.Fprintln(w, strings.Join(SortedNotation(g.LegalMoves()), " "))
	}
}
