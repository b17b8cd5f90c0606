package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate (0 = perft disabled)
	Depth int

	// Divide prints the count below every root move
	Divide bool

	// Workers is the number of goroutines used by divide
	Workers int

	// UseHashTable caches subtree counts by position key
	UseHashTable bool

	// HashCapacity limits the table size (0 = unlimited)
	HashCapacity int

	// Verify compares counts against the reference generator
	Verify bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: 1,
	}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashCapacity < 0 {
		return fmt.Errorf("hash capacity (%d) must not be negative: %w", p.HashCapacity, errors.ErrInvalidConfig)
	}
	if p.Verify && !p.Enabled() {
		return fmt.Errorf("verify needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
