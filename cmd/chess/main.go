// chess is a console front-end to the rules engine: interactive play, batch
// PGN validation and move generator verification.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	log, err := newLogger(*logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupOutputFile(cfg)

	switch {
	case *perftDepth > 0:
		os.Exit(runPerftMode(cfg))
	case *validateMode:
		os.Exit(runValidateMode(cfg, log))
	default:
		os.Exit(runConsoleMode(cfg, log))
	}
}

// newLogger builds a human-readable zerolog logger at the named level.
func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// startPosition returns the -fen position, or the standard start.
func startPosition() (chess.Position, error) {
	if *startFEN == "" {
		return chess.NewInitialPosition(), nil
	}
	return engine.NewPositionFromFEN(*startFEN)
}

func runPerftMode(cfg *config.Config) int {
	pos, err := startPosition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	runPerft(cfg.OutputFile, &pos, *perftDepth)
	return 0
}

func runValidateMode(cfg *config.Config, log zerolog.Logger) int {
	stats, err := runValidate(cfg, log, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d game(s) replayed, %d failed, %d duplicate(s).\n",
			stats.games, stats.failed, stats.duplicates)
	}
	if stats.failed > 0 {
		return 1
	}
	return 0
}

func runConsoleMode(cfg *config.Config, log zerolog.Logger) int {
	g := game.New(game.WithConfig(cfg), game.WithLogger(log))
	if *startFEN != "" {
		if err := g.LoadFEN(*startFEN); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	c := NewConsole(g, os.Stdin, cfg.OutputFile, rngSeed)
	c.SetComputer(chess.White, *whiteCPU)
	c.SetComputer(chess.Black, *blackCPU)
	if err := c.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess on the console, or validate PGN files with -validate.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nConsole commands:\n")
	for _, cmd := range consoleCommands {
		fmt.Fprintf(os.Stderr, "  %-16s %s\n", cmd.usage, cmd.help)
	}
}
