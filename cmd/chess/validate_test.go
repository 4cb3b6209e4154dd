package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const batchPGN = `[Event "One"]
[White "A"]
[Black "B"]

1. f3 e5 2. g4 Qh4# 0-1

[Event "Two"]

1. e4 {a comment
spanning lines} e5 2. Ke3 *

[Event "Three"]

1. d4 d5 *

[Event "Four"]

1. d4 d5 1/2-1/2
`

// writeBatch writes the batch to a temporary file and returns its path.
func writeBatch(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.pgn")
	if err := os.WriteFile(path, []byte(batchPGN), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newBatchConfig returns a config writing to buffers.
func newBatchConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfig()
	cfg.Workers = 2
	cfg.OutputFile = &out
	cfg.LogFile = &log
	return cfg, &out, &log
}

func TestRunValidateSummary(t *testing.T) {
	path := writeBatch(t)
	cfg, out, log := newBatchConfig()

	stats, err := runValidate(cfg, zerolog.Nop(), []string{path})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.games, 4)
	testutil.AssertEqual(t, stats.failed, 1)
	testutil.AssertEqual(t, stats.duplicates, 1)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 3)
	testutil.AssertEqual(t, lines[0], path+": game 1: CHECKMATE 0-1 rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	testutil.AssertContains(t, lines[1], path+": game 3: PLAY *")
	testutil.AssertContains(t, lines[1], "(duplicate position)")
	testutil.AssertContains(t, lines[2], path+": game 4: DRAW_BY_AGREEMENT 1/2-1/2")

	testutil.AssertContains(t, log.String(), path+": game 2: ")
	testutil.AssertContains(t, log.String(), `"Ke3"`)
}

func TestRunValidateDuplicatesOnly(t *testing.T) {
	setFlag(t, dupsOnly, true)
	path := writeBatch(t)
	cfg, out, _ := newBatchConfig()

	_, err := runValidate(cfg, zerolog.Nop(), []string{path})
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	testutil.AssertContains(t, lines[0], "game 3")
	testutil.AssertContains(t, lines[1], "game 4")
}

func TestRunValidateJSON(t *testing.T) {
	setFlag(t, jsonOutput, true)
	path := writeBatch(t)
	cfg, out, _ := newBatchConfig()

	_, err := runValidate(cfg, zerolog.Nop(), []string{path})
	testutil.AssertNoError(t, err)

	var decoded output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	testutil.AssertEqual(t, len(decoded.Games), 3)
	testutil.AssertEqual(t, decoded.Games[0].Tags["Event"], "One")
	testutil.AssertEqual(t, decoded.Games[0].State, "CHECKMATE")
}

func TestRunValidatePGN(t *testing.T) {
	setFlag(t, pgnOutput, true)
	path := writeBatch(t)
	cfg, out, _ := newBatchConfig()

	_, err := runValidate(cfg, zerolog.Nop(), []string{path})
	testutil.AssertNoError(t, err)

	testutil.AssertContains(t, out.String(), "[Event \"One\"]\n[Site \"cavetale.com\"]")
	testutil.AssertContains(t, out.String(), "1. f3 e5 2. g4 Qh4# 0-1\n")
	testutil.AssertContains(t, out.String(), "1. d4 d5 1/2-1/2\n")
}

func TestRunValidateMissingFile(t *testing.T) {
	cfg, _, _ := newBatchConfig()
	_, err := runValidate(cfg, zerolog.Nop(), []string{filepath.Join(t.TempDir(), "missing.pgn")})
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunValidateECO(t *testing.T) {
	ecoPath := filepath.Join(t.TempDir(), "eco.pgn")
	eco := "[ECO \"A00\"]\n[Opening \"Barnes Opening\"]\n\n1. f3 *\n\n[ECO \"D00\"]\n[Opening \"Queen's Pawn Game\"]\n\n1. d4 d5 *\n"
	if err := os.WriteFile(ecoPath, []byte(eco), 0644); err != nil {
		t.Fatal(err)
	}
	setFlag(t, ecoFile, ecoPath)
	path := writeBatch(t)
	cfg, out, _ := newBatchConfig()

	_, err := runValidate(cfg, zerolog.Nop(), []string{path})
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 3)
	testutil.AssertContains(t, lines[0], " A00")
	testutil.AssertContains(t, lines[1], " D00 (duplicate position)")
}
