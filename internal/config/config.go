// Package config provides run configuration for the chess-rules CLI.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Starting position and moves played on it before anything else.
	FEN   string
	Moves []string

	// Interactive reads square selections from Input.
	Interactive bool

	Perft  *PerftConfig
	Play   *PlayConfig
	Output *OutputConfig

	// Streams
	Input      io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		FEN:        engine.InitialFEN,
		Perft:      NewPerftConfig(),
		Play:       NewPlayConfig(),
		Output:     NewOutputConfig(),
		Input:      os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Play.Validate()
}
