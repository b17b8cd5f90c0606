package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Chooser names accepted by PlayConfig.
const (
	ChooserFirst  = "first"
	ChooserRandom = "random"
)

// PlayConfig holds settings for automatic self-play.
type PlayConfig struct {
	// Plies is the maximum number of moves to play (0 = self-play disabled)
	Plies int

	// Chooser selects moves: ChooserFirst or ChooserRandom
	Chooser string

	// Seed seeds the random chooser
	Seed int64
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Chooser: ChooserRandom,
		Seed:    1,
	}
}

// Enabled reports whether self-play was requested.
func (p *PlayConfig) Enabled() bool {
	return p.Plies > 0
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if p.Plies < 0 {
		return fmt.Errorf("plies (%d) must not be negative: %w", p.Plies, errors.ErrInvalidConfig)
	}
	switch p.Chooser {
	case ChooserFirst, ChooserRandom:
	default:
		return fmt.Errorf("unknown chooser %q: %w", p.Chooser, errors.ErrInvalidConfig)
	}
	return nil
}
