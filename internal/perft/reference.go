package perft

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Reference computes the divide of fen with the dragontoothmg generator.
// Under-promotions are skipped at every level, since the engine always
// promotes to a queen; the counts are therefore directly comparable to
// Divide.
func Reference(fen string, depth int) (Result, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "reference depth %d", depth)
	}
	// dragontoothmg does not validate its input.
	g, err := engine.NewGameStateFromFEN(fen)
	if err != nil {
		return nil, err
	}

	board := dragontoothmg.ParseFen(g.FEN())
	out := make(Result)
	for _, m := range board.GenerateLegalMoves() {
		if !queenOrNoPromotion(m) {
			continue
		}
		unapply := board.Apply(m)
		out[strings.TrimSuffix(m.String(), "q")] = referenceCount(&board, depth-1)
		unapply()
	}
	return out, nil
}

func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		if !queenOrNoPromotion(m) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		unapply := b.Apply(m)
		nodes += referenceCount(b, depth-1)
		unapply()
	}
	return nodes
}

func queenOrNoPromotion(m dragontoothmg.Move) bool {
	p := m.Promote()
	return p == 0 || p == dragontoothmg.Queen
}

// Mismatch is one root move whose counts differ.
type Mismatch struct {
	Move      string
	Got, Want uint64 // 0 when the move is missing on that side
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d, want %d", m.Move, m.Got, m.Want)
}

// Compare lists the root moves where got and want disagree, in sorted
// order. It returns an error wrapping ErrPerftMismatch if there are any.
func Compare(got, want Result) ([]Mismatch, error) {
	keys := make(Result, len(got)+len(want))
	for m := range got {
		keys[m] = 0
	}
	for m := range want {
		keys[m] = 0
	}

	var diffs []Mismatch
	for _, m := range keys.Moves() {
		g, okGot := got[m]
		w, okWant := want[m]
		if g != w || okGot != okWant {
			diffs = append(diffs, Mismatch{Move: m, Got: g, Want: w})
		}
	}
	if len(diffs) > 0 {
		return diffs, errors.Wrapf(errors.ErrPerftMismatch, "%d root moves differ", len(diffs))
	}
	return nil, nil
}
