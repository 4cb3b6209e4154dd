// Package config provides configuration for games and the chess console.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Default rule values.
const (
	// DefaultFiftyMoveThreshold is the half-move clock value at which a game
	// is drawn by the fifty-move rule.
	DefaultFiftyMoveThreshold = 50

	// DefaultRepetitionThreshold is the number of occurrences of a position
	// that draws the game.
	DefaultRepetitionThreshold = 3

	// DefaultMaxLineLength is the PGN movetext wrap column.
	DefaultMaxLineLength = 80
)

// Config holds all game and console configuration.
type Config struct {
	Rules    *RulesConfig
	Output   *OutputConfig
	Metadata *MetadataConfig

	// Workers is the number of concurrent games replayed by batch
	// validation. Zero means one per CPU.
	Workers int

	// Verbosity: 0=results only, 1=per-game summary, 2=board after each game.
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// RulesConfig holds the thresholds of the automatic draw rules.
type RulesConfig struct {
	// FiftyMoveThreshold is compared against the half-move clock.
	FiftyMoveThreshold int

	// RepetitionThreshold is the occurrence count that draws by repetition.
	RepetitionThreshold int
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		FiftyMoveThreshold:  DefaultFiftyMoveThreshold,
		RepetitionThreshold: DefaultRepetitionThreshold,
	}
}

// Validate checks that both thresholds are positive.
func (r *RulesConfig) Validate() error {
	if r.FiftyMoveThreshold <= 0 {
		return fmt.Errorf("fifty-move threshold %d: %w", r.FiftyMoveThreshold, errors.ErrInvalidConfig)
	}
	if r.RepetitionThreshold <= 0 {
		return fmt.Errorf("repetition threshold %d: %w", r.RepetitionThreshold, errors.ErrInvalidConfig)
	}
	return nil
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		Metadata:   NewMetadataConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return c.Metadata.Validate()
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
