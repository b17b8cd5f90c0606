package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// runInteractive reads one command per whitespace-separated token from
// cfg.Input and feeds square selections to a Selector, the way a board UI
// would forward clicks.
func runInteractive(cfg *config.Config, g *engine.GameState) error {
	sel := engine.NewSelector(g)
	out := cfg.OutputFile

	scanner := bufio.NewScanner(cfg.Input)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := strings.ToLower(scanner.Text())
		switch token {
		case "quit", "q":
			return nil
		case "moves":
			fmt.Fprintln(out, strings.Join(output.SortedNotation(g.LegalMoves()), " "))
			continue
		case "undo":
			sel.Reset()
			if err := g.UndoMove(); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			} else {
				fmt.Fprintf(out, "undone, %s\n", output.Status(g))
			}
			continue
		case "reset":
			sel.Reset()
			g.Reset()
			fmt.Fprintln(out, "new game")
			continue
		}

		sq, ok := chess.ParseSquare(token)
		if !ok {
			fmt.Fprintf(out, "unknown input %q\n", token)
			continue
		}
		res, err := sel.Select(sq)
		switch {
		case err != nil:
			fmt.Fprintf(out, "%v; selected %s\n", err, res.Selected)
		case res.Moved:
			fmt.Fprintf(out, "%s, %s\n", res.Move, output.Status(g))
		case res.Pending:
			fmt.Fprintf(out, "selected %s: %s\n", res.Selected, strings.Join(output.SquareNames(sel.Targets()), " "))
		default:
			fmt.Fprintln(out, "selection cleared")
		}
	}
	return scanner.Err()
}
