package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFiftyMoveThreshold sets the half-move clock value of the fifty-move draw.
func (b *ConfigBuilder) WithFiftyMoveThreshold(halfMoves int) *ConfigBuilder {
	b.cfg.Rules.FiftyMoveThreshold = halfMoves
	return b
}

// WithRepetitionThreshold sets the occurrence count of the repetition draw.
func (b *ConfigBuilder) WithRepetitionThreshold(count int) *ConfigBuilder {
	b.cfg.Rules.RepetitionThreshold = count
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithEvent sets the default Event tag.
func (b *ConfigBuilder) WithEvent(event string) *ConfigBuilder {
	b.cfg.Metadata.Event = event
	return b
}

// WithSite sets the default Site tag.
func (b *ConfigBuilder) WithSite(site string) *ConfigBuilder {
	b.cfg.Metadata.Site = site
	return b
}

// WithRound sets the default Round tag.
func (b *ConfigBuilder) WithRound(round int) *ConfigBuilder {
	b.cfg.Metadata.Round = round
	return b
}

// WithPlayers sets the default White and Black names.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Metadata.White = white
	b.cfg.Metadata.Black = black
	return b
}

// WithWorkers sets the batch validation worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// KeepMoveNumbers controls whether move numbers are written.
func (b *ConfigBuilder) KeepMoveNumbers(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepMoveNumbers = keep
	return b
}

// KeepChecks controls whether check symbols are written.
func (b *ConfigBuilder) KeepChecks(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepChecks = keep
	return b
}
