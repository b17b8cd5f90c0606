package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// run executes everything cfg asks for, in order: load the position, play
// the given moves, self-play, interactive play, print, perft.
func run(ctx context.Context, cfg *config.Config) error {
	g, err := engine.NewGameStateFromFEN(cfg.FEN)
	if err != nil {
		return err
	}

	if err := playMoveList(g, cfg.Moves); err != nil {
		return err
	}

	if cfg.Play.Enabled() {
		selfPlay(cfg, g)
	}

	if cfg.Interactive {
		if err := runInteractive(cfg, g); err != nil {
			return err
		}
	}

	if cfg.Output.JSONFormat {
		var counts *perftCounts
		if cfg.Perft.Enabled() {
			if counts, err = countPerft(ctx, cfg, g); err != nil {
				return err
			}
		}
		return printJSON(cfg, g, counts)
	}

	printPosition(cfg, g)

	if cfg.Perft.Enabled() {
		return runPerft(ctx, cfg, g)
	}
	return nil
}

// playMoveList plays moves in coordinate notation ("e2e4").
func playMoveList(g *engine.GameState, moves []string) error {
	for _, text := range moves {
		from, to, err := parseMoveText(text)
		if err != nil {
			return err
		}
		if _, err := g.MakeMove(from, to); err != nil {
			return err
		}
	}
	return nil
}

// parseMoveText splits "e2e4" into its two squares.
func parseMoveText(text string) (from, to chess.Square, err error) {
	if len(text) != 4 {
		return from, to, errors.Wrapf(errors.ErrInvalidSquare, "move %q", text)
	}
	from, okFrom := chess.ParseSquare(text[:2])
	to, okTo := chess.ParseSquare(text[2:])
	if !okFrom || !okTo {
		return from, to, errors.Wrapf(errors.ErrInvalidSquare, "move %q", text)
	}
	return from, to, nil
}

// newChooser builds the move chooser named in the play configuration.
func newChooser(p *config.PlayConfig) engine.MoveChooser {
	if p.Chooser == config.ChooserFirst {
		return engine.FirstChooser{}
	}
	return engine.NewRandomChooser(p.Seed)
}

// selfPlay lets the configured chooser play.
func selfPlay(cfg *config.Config, g *engine.GameState) {
	start := g.Plies()
	played := engine.PlayOut(g, newChooser(cfg.Play), cfg.Play.Plies)

	if cfg.Verbosity > 1 {
		for i, m := range played {
			fmt.Fprintf(cfg.LogFile, "ply %d: %s\n", start+i+1, m)
		}
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d move(s) played, %s\n", len(played), output.Status(g))
	}
}

// printPosition writes the parts of the position the output config asks for.
func printPosition(cfg *config.Config, g *engine.GameState) {
	output.WriteText(cfg.OutputFile, g, output.TextOptions{
		Board:      cfg.Output.ShowBoard,
		FEN:        cfg.Output.ShowFEN,
		LegalMoves: cfg.Output.ListMoves,
	})
}

// printJSON writes the game, and the perft counts when present, as JSON.
func printJSON(cfg *config.Config, g *engine.GameState, counts *perftCounts) error {
	jg, err := output.GameToJSON(g, cfg.FEN)
	if err != nil {
		return err
	}
	if counts != nil {
		jg.AddPerft(cfg.Perft.Depth, counts.got, counts.want)
	}
	return output.OutputGameJSON(jg, cfg.OutputFile)
}

// perftCounts holds a divide and, when verification was asked for, the
// reference divide it was checked against.
type perftCounts struct {
	got  perft.Result
	want perft.Result
}

// countPerft runs the configured perft and logs timing and hash table stats.
func countPerft(ctx context.Context, cfg *config.Config, g *engine.GameState) (*perftCounts, error) {
	opts := perft.Options{Workers: cfg.Perft.Workers}
	var table *hashing.ThreadSafeTable
	if cfg.Perft.UseHashTable {
		table = hashing.NewThreadSafeTable(cfg.Perft.HashCapacity)
		opts.Cache = table
	}

	started := time.Now()
	res, err := perft.Divide(ctx, g, cfg.Perft.Depth, opts)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(started)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d nodes in %v with %d worker(s)\n", res.Total(), elapsed.Round(time.Millisecond), cfg.Perft.Workers)
		if table != nil {
			hits, misses := table.Stats()
			fmt.Fprintf(cfg.LogFile, "hash table: %d entries, %d hits, %d misses\n", table.Len(), hits, misses)
		}
	}

	counts := &perftCounts{got: res}
	if cfg.Perft.Verify {
		if counts.want, err = perft.Reference(g.FEN(), cfg.Perft.Depth); err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// runPerft counts move paths, prints them and optionally checks them.
func runPerft(ctx context.Context, cfg *config.Config, g *engine.GameState) error {
	counts, err := countPerft(ctx, cfg, g)
	if err != nil {
		return err
	}

	if cfg.Perft.Divide {
		counts.got.Write(cfg.OutputFile)
	} else {
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", cfg.Perft.Depth, counts.got.Total())
	}

	if counts.want == nil {
		return nil
	}
	diffs, err := perft.Compare(counts.got, counts.want)
	for _, d := range diffs {
		fmt.Fprintf(cfg.OutputFile, "mismatch %s\n", d)
	}
	if err == nil {
		fmt.Fprintln(cfg.OutputFile, "verified")
	}
	return err
}
