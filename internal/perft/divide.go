package perft

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Result maps each root move, in coordinate notation, to the number of
// leaf nodes below it.
type Result map[string]uint64

// Total returns the sum over all root moves.
func (r Result) Total() uint64 {
	var total uint64
	for _, n := range r {
		total += n
	}
	return total
}

// Moves returns the root moves in sorted order.
func (r Result) Moves() []string {
	moves := maps.Keys(r)
	slices.Sort(moves)
	return moves
}

// Write prints one "move: count" line per root move in sorted order,
// followed by the total.
func (r Result) Write(w io.Writer) {
	for _, m := range r.Moves() {
		fmt.Fprintf(w, "%s: %d\n", m, r[m])
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", r.Total())
}

// Options configures Divide.
type Options struct {
	// Workers is the number of goroutines (values below 1 mean 1).
	Workers int

	// Cache, if set, is shared by all workers and must be safe for
	// concurrent use.
	Cache Cache
}

// Divide counts the leaf nodes depth plies below g separately for each
// root move. Every root move is expanded on its own clone of g through a
// worker pool, so g itself is left untouched. depth must be at least 1.
func Divide(ctx context.Context, g *engine.GameState, depth int, opts Options) (Result, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "divide depth %d", depth)
	}

	moves := g.LegalMoves()
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{State: g.Clone(), Move: m, Depth: depth - 1, Index: i}
	}

	pool := worker.NewPool(expand(opts.Cache),
		worker.WithWorkers(opts.Workers),
		worker.WithBufferSize(len(items)),
	)
	results, err := pool.Run(ctx, items)
	if err != nil {
		return nil, err
	}

	out := make(Result, len(results))
	for _, res := range results {
		out[res.Move.Algebraic()] = res.Nodes
	}
	return out, nil
}

// expand returns the pool function counting below one root move.
func expand(cache Cache) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		item.State.Push(item.Move)
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: count(item.State, item.Depth, cache),
		}
	}
}
