package parser

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestSplitGames(t *testing.T) {
	input := `[Event "One"]
[Site "?"]

1. e4 e5 {a comment
[not a tag] still the comment} 1-0

[Event "Two"]

1. d4 d5 *
[Event "Three"]
1. c4
`
	games, err := SplitGames(strings.NewReader(input))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(games), 3)

	testutil.AssertContains(t, games[0], "[not a tag] still the comment} 1-0")
	testutil.AssertTrue(t, strings.HasPrefix(games[1], `[Event "Two"]`))
	testutil.AssertEqual(t, games[2], "[Event \"Three\"]\n1. c4")
}

func TestSplitGamesMovetextOnly(t *testing.T) {
	games, err := SplitGames(strings.NewReader("\n1. e4 e5 *\n\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, games, []string{"1. e4 e5 *"})
}

func TestSplitGamesEmpty(t *testing.T) {
	games, err := SplitGames(strings.NewReader(""))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(games), 0)
}

func TestBraceDepth(t *testing.T) {
	tests := []struct {
		line  string
		start int
		want  int
	}{
		{"1. e4 {open", 0, 1},
		{"close} e5", 1, 0},
		{"{a {b} c}", 0, 0},
		{"e4 ; {ignored", 0, 0},
		{"{ ; inside", 0, 1},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, braceDepth(tt.line, tt.start), tt.want, tt.line)
	}
}
