// Package hashing provides Zobrist position keys and a node-count table
// keyed on them.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist keys, generated once from a fixed seed so keys are stable
// between runs.
var (
	zobristPiece      [2][7][chess.BoardSize * chess.BoardSize]uint64
	zobristEnPassant  [chess.BoardSize]uint64 // one per file
	zobristCastling   [16]uint64              // indexed by CastlingRights.Mask
	zobristSideToMove uint64                  // XOR when Black to move
)

func init() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for side := chess.White; side <= chess.Black; side++ {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for i := range zobristPiece[side][kind] {
				zobristPiece[side][kind][i] = rng.next()
			}
		}
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is xorshift64*.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Key returns the Zobrist key of the game's current position.
func Key(g *engine.GameState) uint64 {
	return SnapshotKey(g.Snapshot())
}

// SnapshotKey hashes a position. Positions that differ only in history get
// the same key.
func SnapshotKey(s engine.Snapshot) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := s.Board[row][col]
			if p.IsEmpty() {
				continue
			}
			key ^= zobristPiece[p.Side()][p.Kind()][row*chess.BoardSize+col]
		}
	}
	if s.HasEnPassant {
		key ^= zobristEnPassant[s.EnPassant.Col]
	}
	key ^= zobristCastling[s.Castling.Mask()]
	if s.SideToMove == chess.Black {
		key ^= zobristSideToMove
	}
	return key
}
