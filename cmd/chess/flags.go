// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game setup
	startFEN = flag.String("fen", "", "Start the console game from this FEN position")
	whiteCPU = flag.Bool("white-cpu", false, "Computer plays White with random legal moves")
	blackCPU = flag.Bool("black-cpu", false, "Computer plays Black with random legal moves")
	seed     = flag.Int64("seed", 0, "Seed for computer moves (0 = time based)")

	// Rules
	fiftyMove  = flag.Int("fifty", config.DefaultFiftyMoveThreshold, "Half-move clock value that draws by the fifty-move rule")
	repetition = flag.Int("repetition", config.DefaultRepetitionThreshold, "Occurrences of a position that draw by repetition")

	// Metadata for exported games
	event = flag.String("event", "", "Event tag of new games")
	site  = flag.String("site", "", "Site tag of new games")
	round = flag.Int("round", 0, "Round tag of new games (0 = default)")
	white = flag.String("white", "", "White player name")
	black = flag.String("black", "", "Black player name")

	// Batch validation
	validateMode = flag.Bool("validate", false, "Replay every game of the input files and report the result")
	jsonOutput   = flag.Bool("J", false, "With -validate, write the games as JSON")
	pgnOutput    = flag.Bool("P", false, "With -validate, write the games as PGN")
	dupsOnly     = flag.Bool("U", false, "With -validate, report only games whose final position was seen before")
	workers      = flag.Int("workers", 0, "Number of worker goroutines (0 = one per CPU)")
	ecoFile      = flag.String("e", "", "With -validate, ECO classification file (PGN format)")

	// Move generator verification
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to depth N from the start position and exit")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	lineLength = flag.Int("w", config.DefaultMaxLineLength, "Maximum PGN line length (0 = no wrapping)")
	noChecks   = flag.Bool("nochecks", false, "Strip check and mate marks from PGN output")

	// Logging
	logLevel = flag.String("loglevel", "warn", "Log level: trace, debug, info, warn, error, disabled")
	quiet    = flag.Bool("s", false, "Silent mode (no summary)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyRuleFlags(cfg)
	applyMetadataFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Workers = *workers
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyRuleFlags configures the automatic draw thresholds.
func applyRuleFlags(cfg *config.Config) {
	cfg.Rules.FiftyMoveThreshold = *fiftyMove
	cfg.Rules.RepetitionThreshold = *repetition
}

// applyMetadataFlags overrides the default tags of new games.
func applyMetadataFlags(cfg *config.Config) {
	if *event != "" {
		cfg.Metadata.Event = *event
	}
	if *site != "" {
		cfg.Metadata.Site = *site
	}
	if *round > 0 {
		cfg.Metadata.Round = *round
	}
	if *white != "" {
		cfg.Metadata.White = *white
	}
	if *black != "" {
		cfg.Metadata.Black = *black
	}
}

// applyOutputFlags configures PGN formatting.
func applyOutputFlags(cfg *config.Config) {
	if *lineLength < 0 {
		*lineLength = 0
	}
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.KeepChecks = !*noChecks
}
