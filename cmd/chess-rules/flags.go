// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	moveList  = flag.String("moves", "", "Moves to play first, e.g. \"e2e4 e7e5\"")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	noBoard    = flag.Bool("noboard", false, "Don't print the board diagram")
	noFEN      = flag.Bool("nofen", false, "Don't print the FEN")
	listMoves  = flag.Bool("list", false, "List the legal moves of the side to move")
	jsonOutput = flag.Bool("json", false, "Output the position and perft counts as JSON")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Count move paths to this depth")
	divide       = flag.Bool("divide", false, "Print perft counts per root move")
	workers      = flag.Int("workers", 1, "Number of perft worker goroutines")
	hashTable    = flag.Bool("hash", false, "Cache perft subtree counts by position")
	hashCapacity = flag.Int("hash-capacity", 0, "Maximum hash table entries (0 = unlimited)")
	verify       = flag.Bool("verify", false, "Check perft counts against the reference generator")

	// Self-play
	playPlies = flag.Int("play", 0, "Play up to N moves automatically")
	chooser   = flag.String("chooser", config.ChooserRandom, "Move chooser for -play: first, random")
	seed      = flag.Int64("seed", 1, "Seed for the random chooser")

	// Interactive
	interactive = flag.Bool("i", false, "Read square selections from stdin")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Running commentary on the log")

	// Misc
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)
	applyPlayFlags(cfg)

	cfg.Interactive = *interactive
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPositionFlags sets the starting position and opening moves.
func applyPositionFlags(cfg *config.Config) {
	if *fenString != "" {
		cfg.FEN = *fenString
	}
	cfg.Moves = parseMoveList(*moveList)
}

// applyOutputFlags configures what gets printed.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.ListMoves = *listMoves
	cfg.Output.JSONFormat = *jsonOutput
}

// applyPerftFlags configures perft.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.UseHashTable = *hashTable
	cfg.Perft.HashCapacity = *hashCapacity
	cfg.Perft.Verify = *verify
}

// applyPlayFlags configures self-play.
func applyPlayFlags(cfg *config.Config) {
	cfg.Play.Plies = *playPlies
	cfg.Play.Chooser = *chooser
	cfg.Play.Seed = *seed
}

// parseMoveList splits a move list on spaces and commas.
func parseMoveList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
