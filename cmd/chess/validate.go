// validate.go - Batch replay of PGN files
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/eco"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/parser"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// validateStats counts the games of a batch.
type validateStats struct {
	games      int
	failed     int
	duplicates int
}

// gameSource locates a game in the input.
type gameSource struct {
	file  string
	index int // 1-based position within the file
}

// runValidate replays every game of files (stdin when empty) and reports
// each one on cfg.OutputFile. Replay failures go to cfg.LogFile.
func runValidate(cfg *config.Config, log zerolog.Logger, files []string) (validateStats, error) {
	var stats validateStats

	classifier, err := loadClassifier(log)
	if err != nil {
		return stats, err
	}

	texts, sources, err := collectGames(files)
	if err != nil {
		return stats, err
	}

	numWorkers := cfg.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	log.Debug().Int("games", len(texts)).Int("workers", numWorkers).Msg("validating")

	seen := hashing.NewThreadSafeRepetitionTable()
	validate := worker.NewValidator(cfg, seen, game.WithLogger(log))
	outcomes := worker.ValidateAll(texts, validate,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(2*numWorkers),
	)

	writer := newGameWriter(cfg)
	for i, out := range outcomes {
		src := sources[i]
		stats.games++
		if out.Err != nil {
			stats.failed++
			log.Info().Err(out.Err).Str("file", src.file).Int("game", src.index).Msg("replay failed")
			fmt.Fprintf(cfg.LogFile, "%s: game %d: %v\n", src.file, src.index, out.Err)
			continue
		}

		pos := out.Game.CurrentBoard()
		shared := seen.Count(&pos) > 1
		if *dupsOnly && !shared {
			continue
		}
		if classifier != nil {
			classifier.AddTags(out.Record, out.Game)
		}

		if writer != nil {
			if err := writer.WriteGame(out.Record); err != nil {
				return stats, err
			}
			continue
		}
		reportGame(cfg, src, out.Game, out.Record.GetTag("ECO"), shared)
	}
	stats.duplicates = seen.DuplicateCount()

	if writer != nil {
		return stats, writer.Close()
	}
	return stats, nil
}

// loadClassifier loads the -e ECO file, if any.
func loadClassifier(log zerolog.Logger) (*eco.Classifier, error) {
	if *ecoFile == "" {
		return nil, nil
	}
	classifier := eco.NewClassifier()
	if err := classifier.LoadFromFile(*ecoFile); err != nil {
		return nil, err
	}
	log.Debug().Int("entries", classifier.EntriesLoaded()).Str("file", *ecoFile).Msg("ECO lines loaded")
	return classifier, nil
}

// collectGames reads and splits every input file.
func collectGames(files []string) ([]string, []gameSource, error) {
	var (
		texts   []string
		sources []gameSource
	)
	add := func(name string, r io.Reader) error {
		games, err := parser.SplitGames(r)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		for i, text := range games {
			texts = append(texts, text)
			sources = append(sources, gameSource{file: name, index: i + 1})
		}
		return nil
	}

	if len(files) == 0 {
		return texts, sources, add("stdin", os.Stdin)
	}
	for _, name := range files {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, nil, err
		}
		err = add(name, file)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return nil, nil, err
		}
	}
	return texts, sources, nil
}

// newGameWriter returns the writer selected by -J or -P, or nil for the
// one-line summary.
func newGameWriter(cfg *config.Config) output.GameWriter {
	switch {
	case *jsonOutput:
		return output.NewJSONWriter(cfg.OutputFile)
	case *pgnOutput:
		return output.NewPGNWriter(cfg.OutputFile, cfg)
	}
	return nil
}

// reportGame prints the summary line of a replayed game.
func reportGame(cfg *config.Config, src gameSource, g *game.Game, ecoCode string, shared bool) {
	if cfg.Verbosity == 0 {
		return
	}
	turn := g.CurrentTurn()
	line := fmt.Sprintf("%s: game %d: %s %s %s", src.file, src.index, turn.State(), g.Result(), g.FEN())
	if ecoCode != "" {
		line += " " + ecoCode
	}
	if shared {
		line += " (duplicate position)"
	}
	fmt.Fprintln(cfg.OutputFile, line)

	if cfg.Verbosity > 1 {
		pos := turn.Position()
		fmt.Fprintln(cfg.OutputFile, pos.ASCII())
	}
}
