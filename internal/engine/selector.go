package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Selector turns "select square" events from a presentation layer into
// moves. The first selection picks the origin, the second the destination.
type Selector struct {
	state    *GameState
	selected chess.Square
	active   bool
}

// SelectResult describes what a selection did.
type SelectResult struct {
	// Move is the move played, valid when Moved is true.
	Move  chess.Move
	Moved bool

	// Selected is the square now held as origin, valid when Pending is true.
	Selected chess.Square
	Pending  bool
}

// NewSelector creates a selector that plays moves on state.
func NewSelector(state *GameState) *Selector {
	return &Selector{state: state}
}

// Select handles one selection event.
//
// Selecting the held square again clears it. Selecting a second square tries
// the move between the two; on success the selection is cleared, otherwise
// the error wraps ErrIllegalMove and the second square becomes the new origin.
// Off-board squares are rejected with ErrInvalidSquare and change nothing.
func (s *Selector) Select(sq chess.Square) (SelectResult, error) {
	if !sq.OnBoard() {
		return s.result(), errors.Wrapf(errors.ErrInvalidSquare, "select (%d, %d)", sq.Row, sq.Col)
	}

	if !s.active {
		s.selected, s.active = sq, true
		return s.result(), nil
	}
	if s.selected == sq {
		s.Reset()
		return s.result(), nil
	}

	move, err := s.state.MakeMove(s.selected, sq)
	if err != nil {
		s.selected = sq
		return s.result(), err
	}
	s.Reset()
	return SelectResult{Move: move, Moved: true}, nil
}

// Selected returns the held origin square, if any.
func (s *Selector) Selected() (chess.Square, bool) {
	return s.selected, s.active
}

// Targets returns the legal destinations from the held square.
func (s *Selector) Targets() []chess.Square {
	if !s.active {
		return nil
	}
	var out []chess.Square
	for _, m := range s.state.LegalMovesFrom(s.selected) {
		out = append(out, m.To)
	}
	return out
}

// Reset clears the selection.
func (s *Selector) Reset() {
	s.selected, s.active = chess.Square{}, false
}

func (s *Selector) result() SelectResult {
	return SelectResult{Selected: s.selected, Pending: s.active}
}
