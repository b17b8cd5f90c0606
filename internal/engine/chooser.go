package engine

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveChooser picks one move from a legal-move list. ok is false when the
// list is empty.
type MoveChooser interface {
	ChooseMove(moves []chess.Move) (move chess.Move, ok bool)
}

// FirstChooser always takes the first move in generation order.
type FirstChooser struct{}

// ChooseMove implements MoveChooser.
func (FirstChooser) ChooseMove(moves []chess.Move) (chess.Move, bool) {
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[0], true
}

// RandomChooser picks uniformly at random. Because generation order is
// deterministic, the same seed replays the same game.
type RandomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser creates a chooser seeded with seed.
func NewRandomChooser(seed int64) *RandomChooser {
	return &RandomChooser{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // G404: move choice is not security sensitive
}

// ChooseMove implements MoveChooser.
func (c *RandomChooser) ChooseMove(moves []chess.Move) (chess.Move, bool) {
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[c.rng.Intn(len(moves))], true
}

// PlayOut lets chooser play up to maxPlies moves on g, stopping early at
// checkmate or stalemate. It returns the moves played.
func PlayOut(g *GameState, chooser MoveChooser, maxPlies int) []chess.Move {
	var played []chess.Move
	for len(played) < maxPlies {
		move, ok := chooser.ChooseMove(g.LegalMoves())
		if !ok {
			break
		}
		g.Push(move)
		played = append(played, move)
	}
	return played
}
