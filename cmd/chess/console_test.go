package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// newTestConsole returns a console over a fresh game reading input.
func newTestConsole(input string) (*Console, *game.Game, *bytes.Buffer) {
	var out bytes.Buffer
	g := game.New()
	return NewConsole(g, strings.NewReader(input), &out, 1), g, &out
}

func TestSuggest(t *testing.T) {
	texts := []string{"Na3", "Nc3", "Nf3", "Nh3", "a3", "a4", "b3", "b4", "e3", "e4"}

	tests := []struct {
		name            string
		input           string
		wantMatch       string
		wantSuggestions []string
	}{
		{"unique prefix", "Nf", "Nf3", nil},
		{"ambiguous prefix", "N", "", []string{"Na3", "Nc3", "Nf3", "Nh3"}},
		{"substring only", "h3", "", []string{"Nh3"}},
		{"substring several", "3", "", []string{"Na3", "Nc3", "Nf3", "Nh3", "a3", "b3", "e3"}},
		{"no match", "Qd4", "", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			match, suggestions := suggest(texts, tt.input)
			testutil.AssertEqual(t, match, tt.wantMatch)
			testutil.AssertEqual(t, suggestions, tt.wantSuggestions)
		})
	}
}

func TestConsolePlayText(t *testing.T) {
	t.Parallel()

	c, g, out := newTestConsole("")
	for _, line := range []string{"e4", "e7e5", "Nf", "Nc6"} {
		quit, err := c.Execute(line)
		testutil.AssertNoError(t, err, line)
		testutil.AssertFalse(t, quit)
	}

	testutil.AssertEqual(t, g.MoveTexts(), []string{"e4", "e5", "Nf3", "Nc6"})
	testutil.AssertContains(t, out.String(), "White plays Nf3\n")
	testutil.AssertContains(t, out.String(), "Black plays Nc6\n")
}

func TestConsoleRejectsMoves(t *testing.T) {
	t.Parallel()

	c, g, _ := newTestConsole("")

	_, err := c.Execute("Ke2")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	_, err = c.Execute("N")
	testutil.AssertContains(t, err.Error(), "did you mean: Na3 Nc3 Nf3 Nh3")

	testutil.AssertEqual(t, g.PlyCount(), 0)
}

func TestConsoleCommands(t *testing.T) {
	t.Parallel()

	c, g, out := newTestConsole("")

	_, err := c.Execute("fen")
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), engine.InitialFEN+"\n")

	out.Reset()
	_, err = c.Execute("moves")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(strings.Fields(out.String())), 20)

	_, err = c.Execute("loadfen k7/8/8/1Q6/8/8/8/7K w - - 0 1")
	testutil.AssertNoError(t, err)
	out.Reset()
	_, err = c.Execute("Qb6")
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "Game over: Stalemate (1/2-1/2)")
	testutil.AssertEqual(t, g.CurrentTurn().State(), game.Stalemate)

	_, err = c.Execute("a7")
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)

	_, err = c.Execute("new")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)

	_, err = c.Execute("loadfen")
	testutil.AssertContains(t, err.Error(), "usage")
	_, err = c.Execute("loadfen nonsense")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestConsoleResignAndDraw(t *testing.T) {
	t.Parallel()

	c, g, out := newTestConsole("")
	_, err := c.Execute("resign")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.CurrentTurn().State(), game.Resignation)
	testutil.AssertContains(t, out.String(), "Game over: Resignation (0-1)")

	_, err = c.Execute("draw")
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)

	c2, g2, _ := newTestConsole("")
	_, err = c2.Execute("draw")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g2.Result(), "1/2-1/2")
}

func TestConsolePGN(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "game.pgn")
	if err := os.WriteFile(path, []byte("1. f3 e5 2. g4 Qh4# 0-1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, g, out := newTestConsole("")
	_, err := c.Execute("loadpgn " + path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.CurrentTurn().State(), game.Checkmate)

	out.Reset()
	_, err = c.Execute("pgn")
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "1. f3 e5 2. g4 Qh4# 0-1\n")

	out.Reset()
	_, err = c.Execute("url")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), "https://lichess.org/analysis/pgn/f3_e5_g4_Qh4\n")

	_, err = c.Execute("loadpgn " + filepath.Join(dir, "missing.pgn"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConsoleRun(t *testing.T) {
	t.Parallel()

	c, g, out := newTestConsole("e4\n\nboard\nhelp\nquit\nd4\n")
	testutil.AssertNoError(t, c.Run())

	testutil.AssertEqual(t, g.PlyCount(), 1, "input after quit is not read")
	testutil.AssertContains(t, out.String(), "White> ")
	testutil.AssertContains(t, out.String(), "Black> ")
	testutil.AssertContains(t, out.String(), "loadfen <fen>")
}

func TestConsoleRunEndOfInput(t *testing.T) {
	t.Parallel()

	c, _, out := newTestConsole("Zz9\n")
	testutil.AssertNoError(t, c.Run())
	testutil.AssertContains(t, out.String(), `unknown move "Zz9"`)
}

func TestConsoleComputerPlaysBothSides(t *testing.T) {
	t.Parallel()

	c, g, out := newTestConsole("")
	c.SetComputer(chess.White, true)
	c.SetComputer(chess.Black, true)
	testutil.AssertNoError(t, c.Run())

	testutil.AssertTrue(t, g.CurrentTurn().State().IsGameOver())
	testutil.AssertContains(t, out.String(), "Game over: ")
}

func TestConsoleComputerPlaysBlack(t *testing.T) {
	t.Parallel()

	c, g, _ := newTestConsole("e4\nquit\n")
	c.SetComputer(chess.Black, true)
	testutil.AssertNoError(t, c.Run())

	testutil.AssertEqual(t, g.PlyCount(), 2)
	testutil.AssertEqual(t, g.MoveTexts()[0], "e4")
}
