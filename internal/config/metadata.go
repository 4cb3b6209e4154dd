package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MetadataConfig holds the default tag values of new games.
type MetadataConfig struct {
	Event string
	Site  string
	Round int
	White string
	Black string
}

// NewMetadataConfig creates a MetadataConfig with default values.
func NewMetadataConfig() *MetadataConfig {
	return &MetadataConfig{
		Event: "Cavetale Chess",
		Site:  "cavetale.com",
		Round: 1,
		White: "Unknown",
		Black: "Unknown",
	}
}

// Validate rejects a negative round number.
func (m *MetadataConfig) Validate() error {
	if m.Round < 0 {
		return fmt.Errorf("round %d: %w", m.Round, errors.ErrInvalidConfig)
	}
	return nil
}
