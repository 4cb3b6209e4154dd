package config

// OutputConfig holds settings related to PGN output formatting.
type OutputConfig struct {
	// MaxLineLength is the maximum movetext line length; 0 disables wrapping.
	MaxLineLength uint

	// KeepMoveNumbers controls whether move numbers are written
	KeepMoveNumbers bool

	// KeepChecks controls whether check symbols (+, #) are written
	KeepChecks bool

	// KeepResults controls whether the result token ends the movetext
	KeepResults bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:   DefaultMaxLineLength,
		KeepMoveNumbers: true,
		KeepChecks:      true,
		KeepResults:     true,
	}
}
