// Package testutil provides shared test utilities for the chess rules core.
// These utilities reduce code duplication across test files and provide
// consistent position setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Well-known perft positions.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

// MustLoadFEN builds a game from a FEN string.
// It calls t.Fatal if the FEN is rejected.
func MustLoadFEN(t testing.TB, fen string) *engine.GameState {
	t.Helper()
	g, err := engine.NewGameStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameStateFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustSquare parses coordinate notation such as "e4".
// It calls t.Fatal on malformed input.
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(text)
	if !ok {
		t.Fatalf("invalid square %q", text)
	}
	return sq
}

// MustPlay plays moves given in coordinate notation ("e2e4") on g.
// It calls t.Fatal at the first move that is malformed or illegal.
func MustPlay(t testing.TB, g *engine.GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if len(text) != 4 {
			t.Fatalf("malformed move %q", text)
		}
		if _, err := g.MakeMove(MustSquare(t, text[:2]), MustSquare(t, text[2:])); err != nil {
			t.Fatalf("MakeMove(%s) error: %v\n%s", text, err, g.FEN())
		}
	}
}

// FindMove returns the legal move with the given coordinate notation.
func FindMove(g *engine.GameState, text string) (chess.Move, bool) {
	for _, m := range g.LegalMoves() {
		if m.Algebraic() == text {
			return m, true
		}
	}
	return chess.Move{}, false
}

// Notations converts moves to coordinate notation, keeping order.
func Notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Algebraic()
	}
	return out
}
