// Package perft counts move paths to a fixed depth. The counts pin down
// move generation: any generator bug shows up as a wrong number.
package perft

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Cache stores subtree counts by position key and remaining depth.
// Both hashing.Table and hashing.ThreadSafeTable satisfy it; only the
// latter may be shared between goroutines.
type Cache interface {
	Probe(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64) bool
}

// Count returns the number of leaf nodes depth plies below g.
// g is restored before returning.
func Count(g *engine.GameState, depth int) uint64 {
	return count(g, depth, nil)
}

// CountCached is Count with subtree counts looked up in and stored to cache.
func CountCached(g *engine.GameState, depth int, cache Cache) uint64 {
	return count(g, depth, cache)
}

func count(g *engine.GameState, depth int, cache Cache) uint64 {
	if depth <= 0 {
		return 1
	}

	var key uint64
	if cache != nil && depth > 1 {
		key = hashing.Key(g)
		if nodes, ok := cache.Probe(key, depth); ok {
			return nodes
		}
	}

	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		g.Push(m)
		nodes += count(g, depth-1, cache)
		// History is never empty here.
		_ = g.UndoMove()
	}

	if cache != nil {
		cache.Store(key, depth, nodes)
	}
	return nodes
}
